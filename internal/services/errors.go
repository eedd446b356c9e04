package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"gorm.io/gorm"
)

// Messages returned to clients when a lookup fails
const (
	restaurantNotFound       = "Restaurant not found"
	restaurantPizzaNotFound  = "Restaurant pizza not found"
	invalidPizzaOrRestaurant = "Invalid pizza or restaurant ID"
)

// notFoundOr maps gorm.ErrRecordNotFound to a NotFoundError with message
// and returns any other error unchanged
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(message)
	}
	return err
}
