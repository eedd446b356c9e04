package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	log.Info("Running database migrations")
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
