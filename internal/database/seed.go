package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedIfEmpty seeds the database only when there are no restaurants yet
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}
	log.Info("Database is empty, seeding initial data")
	return Seed(db)
}

// Seed inserts the initial restaurants, pizzas and menu entries in one transaction
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("failed to seed restaurants: %w", err)
		}

		pizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("failed to seed pizzas: %w", err)
		}

		menu := []models.RestaurantPizza{
			{RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID, Price: 1},
			{RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID, Price: 4},
			{RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID, Price: 5},
		}
		if err := tx.Create(&menu).Error; err != nil {
			return fmt.Errorf("failed to seed restaurant pizzas: %w", err)
		}

		log.WithFields(logrus.Fields{
			"restaurants":       len(restaurants),
			"pizzas":            len(pizzas),
			"restaurant_pizzas": len(menu),
		}).Info("Database seeded successfully")
		return nil
	})
}

// Reset removes every row, dependents first
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}
		log.Info("Database cleared")
		return nil
	})
}
