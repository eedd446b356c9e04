package main

import (
	"fmt"

	_ "github.com/franciscosanchezn/pizza-place-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-place-api/internal/config"
	"github.com/franciscosanchezn/pizza-place-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-place-api/internal/database"
	"github.com/franciscosanchezn/pizza-place-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-place-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config
)

// @title Pizza Place API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants sell them at
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration = loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db = setupDatabase(configuration)

	// Initialize Gin router
	var router *gin.Engine = setupRouter(db)

	// Start the server
	address := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	log.Infof("Starting server on %s", address)
	checkPanicErr(router.Run(address))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and the configured level
func setUpLogger(conf *config.Config) {
	level := conf.ParseLogLevel()
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(level)
	database.SetLogLevel(level)
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase opens the configured database, migrates the schema and seeds it when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	conn, err := database.InitDatabase(conf.Database())
	checkPanicErr(err)
	checkPanicErr(database.Migrate(conn))

	if conf.SeedDatabase {
		checkPanicErr(database.SeedIfEmpty(conn))
	}
	return conn
}

// setupRouter initializes the Gin router with middleware and routes
func setupRouter(conn *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log.StandardLogger()),
		middleware.Recovery(log.StandardLogger()),
		cors.Default(),
	)
	if configuration.MetricsEnabled {
		router.Use(middleware.Metrics())
		router.GET("/metrics", middleware.MetricsHandler())
	}

	controllers.RegisterRoutes(router,
		controllers.NewRestaurantController(services.NewRestaurantService(conn)),
		controllers.NewPizzaController(services.NewPizzaService(conn)),
		controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(conn)),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
