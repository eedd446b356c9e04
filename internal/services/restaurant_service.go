package services

import (
	"context"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by ID, without their menu
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas and their pizza
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas atomically
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, notFoundOr(err, restaurantNotFound)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			return notFoundOr(err, restaurantNotFound)
		}
		// Dependents go first, inside the same transaction
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
}
