package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-place-api/internal/config"
	"github.com/franciscosanchezn/pizza-place-api/internal/database"
	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Remove all rows before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	dbConfig := conf.Database()
	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
		fmt.Println("✓ Database cleared")
	} else if count := countRestaurants(db); count > 0 {
		fmt.Printf("Database already holds %d restaurants, run with -reset to rebuild it\n", count)
		return
	}

	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fmt.Printf("✓ Database seeded (%s)\n", dbConfig.String())
	fmt.Println("\nTry it out:")
	fmt.Printf("curl http://%s:%d/restaurants\n", conf.Host, conf.Port)
	fmt.Printf("curl -X POST http://%s:%d/restaurant_pizzas \\\n", conf.Host, conf.Port)
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"price\":10,\"pizza_id\":1,\"restaurant_id\":1}'\n")
}

// countRestaurants returns how many restaurants exist, exiting on query failure
func countRestaurants(db *gorm.DB) int64 {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count restaurants:", err)
	}
	return count
}
