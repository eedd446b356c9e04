package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-place-api/internal/database"
	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createRestaurant(t *testing.T, db *gorm.DB, name string) models.Restaurant {
	restaurant := models.Restaurant{Name: name, Address: name + " street"}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func createPizza(t *testing.T, db *gorm.DB, name string) models.Pizza {
	pizza := models.Pizza{Name: name, Ingredients: "Dough, Tomato Sauce, Cheese"}
	require.NoError(t, db.Create(&pizza).Error)
	return pizza
}

func createRestaurantPizza(t *testing.T, db *gorm.DB, restaurantID, pizzaID uint, price int) models.RestaurantPizza {
	rp := models.RestaurantPizza{RestaurantID: restaurantID, PizzaID: pizzaID, Price: price}
	require.NoError(t, db.Create(&rp).Error)
	return rp
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }
