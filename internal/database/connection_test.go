package database

import (
	"testing"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestInitDatabaseRejectsUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitDatabaseEnablesForeignKeys(t *testing.T) {
	db := setupTestDB(t)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestSeedIfEmpty(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedIfEmpty(db))
	// A second call must not duplicate rows
	require.NoError(t, SeedIfEmpty(db))

	var restaurants, pizzas, menu int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&menu)
	assert.Equal(t, int64(3), restaurants)
	assert.Equal(t, int64(3), pizzas)
	assert.Equal(t, int64(3), menu)
}

func TestCascadeDeleteAtDatabaseLevel(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db))

	var restaurant models.Restaurant
	require.NoError(t, db.First(&restaurant).Error)
	require.NoError(t, db.Delete(&models.Restaurant{}, restaurant.ID).Error)

	var remaining int64
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&remaining)
	assert.Zero(t, remaining)
}

func TestReset(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Reset(db))

	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	assert.Zero(t, count)
}
