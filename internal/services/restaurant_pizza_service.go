package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the priced link between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the input and persists a new restaurant pizza
	CreateRestaurantPizza(ctx context.Context, input models.RestaurantPizzaInput) (models.RestaurantPizza, error)
	// GetRestaurantPizzaByID retrieves a restaurant pizza with its restaurant and pizza
	GetRestaurantPizzaByID(ctx context.Context, id uint) (models.RestaurantPizza, error)
	// DeleteRestaurantPizza deletes a restaurant pizza by its ID
	DeleteRestaurantPizza(ctx context.Context, id uint) error
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input models.RestaurantPizzaInput) (models.RestaurantPizza, error) {
	if err := input.Validate(); err != nil {
		return models.RestaurantPizza{}, err
	}

	var created models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, *input.RestaurantID).Error; err != nil {
			return notFoundOr(err, invalidPizzaOrRestaurant)
		}
		var pizza models.Pizza
		if err := tx.First(&pizza, *input.PizzaID).Error; err != nil {
			return notFoundOr(err, invalidPizzaOrRestaurant)
		}

		rp := models.RestaurantPizza{
			Price:        *input.Price,
			RestaurantID: restaurant.ID,
			PizzaID:      pizza.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return models.NewValidationError(invalidPizzaOrRestaurant)
			}
			return err
		}

		rp.Restaurant = &restaurant
		rp.Pizza = &pizza
		created = rp
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(ctx context.Context, id uint) (models.RestaurantPizza, error) {
	var rp models.RestaurantPizza
	err := s.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("Pizza").
		First(&rp, id).Error
	if err != nil {
		return models.RestaurantPizza{}, notFoundOr(err, restaurantPizzaNotFound)
	}
	return rp, nil
}

func (s *restaurantPizzaService) DeleteRestaurantPizza(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.RestaurantPizza{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError(restaurantPizzaNotFound)
	}
	return nil
}
