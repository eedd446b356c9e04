package database

import (
	"fmt"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver.
// SQLite connections always enable foreign keys so cascades are enforced.
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		path := c.Path
		if path == "" {
			path = ":memory:"
		}
		if strings.Contains(path, "_foreign_keys") {
			return path
		}
		if strings.Contains(path, "?") {
			return path + "&_foreign_keys=on"
		}
		return path + "?_foreign_keys=on"
	default:
		return ""
	}
}

// IsInMemory reports whether the config points at an in-memory SQLite database
func (c *DatabaseConfig) IsInMemory() bool {
	driver := strings.ToLower(c.Driver)
	if driver != "sqlite" && driver != "" {
		return false
	}
	return c.Path == "" || strings.HasPrefix(c.Path, ":memory:") || strings.Contains(c.Path, "mode=memory")
}
