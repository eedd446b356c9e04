package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfigDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite file enables foreign keys",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite with existing query appends parameter",
			config:   DatabaseConfig{Driver: "sqlite", Path: "file:app.db?cache=shared"},
			expected: "file:app.db?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite keeps explicit foreign key setting",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.db?_foreign_keys=off"},
			expected: "app.db?_foreign_keys=off",
		},
		{
			name:     "empty driver and path default to in-memory sqlite",
			config:   DatabaseConfig{},
			expected: ":memory:?_foreign_keys=on",
		},
		{
			name: "postgres",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "pizza",
				Password: "secret", Name: "pizzas", SSLMode: "disable",
			},
			expected: "host=db user=pizza password=secret dbname=pizzas port=5432 sslmode=disable",
		},
		{
			name:     "unsupported driver",
			config:   DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfigStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "super-secret"}
	assert.NotContains(t, cfg.String(), "super-secret")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

func TestDatabaseConfigIsInMemory(t *testing.T) {
	assert.True(t, (&DatabaseConfig{Driver: "sqlite", Path: ":memory:"}).IsInMemory())
	assert.True(t, (&DatabaseConfig{Driver: "sqlite", Path: "file:test?mode=memory&cache=shared"}).IsInMemory())
	assert.True(t, (&DatabaseConfig{}).IsInMemory())
	assert.False(t, (&DatabaseConfig{Driver: "sqlite", Path: "app.db"}).IsInMemory())
	assert.False(t, (&DatabaseConfig{Driver: "postgres"}).IsInMemory())
}
