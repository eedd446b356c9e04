package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/pizza-place-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(levelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`

	// SeedDatabase fills an empty database with sample restaurants and pizzas at startup
	SeedDatabase bool `json:"seed_database"`

	// LogLevel overrides the level implied by Environment when set
	LogLevel string `json:"log_level"`

	// MetricsEnabled exposes Prometheus metrics on /metrics
	MetricsEnabled bool `json:"metrics_enabled"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBSSLMode: %s, SeedDatabase: %t, LogLevel: %s, MetricsEnabled: %t}",
		c.Environment, c.Port, c.Host, c.DBDriver, c.DBPath, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBSSLMode, c.SeedDatabase, c.LogLevel, c.MetricsEnabled)
}

// Database returns the connection settings for the database package
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}

// ParseLogLevel resolves the logrus level from LogLevel, falling back to the
// level implied by Environment when LogLevel is empty or unknown
func (c *Config) ParseLogLevel() logrus.Level {
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		return level
	}
	return levelForEnvironment(c.Environment)
}

// levelForEnvironment picks the default log level for an APP_ENV value
func levelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if APP_PORT is not a number or DB_DRIVER is not supported
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		Port:           port,
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:       driver,
		DBPath:         GetEnvWithDefault("DB_PATH", "app.db"),
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         GetEnvWithDefault("DB_PORT", "5432"),
		DBName:         GetEnvWithDefault("DB_NAME", "pizza_place"),
		DBUser:         GetEnvWithDefault("DB_USER", "user"),
		DBPassword:     GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
		SeedDatabase:   GetEnvAsType("SEED_DATABASE", true),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		MetricsEnabled: GetEnvAsType("METRICS_ENABLED", true),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
