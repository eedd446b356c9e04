package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Price bounds for a RestaurantPizza, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza links a Restaurant to a Pizza with the price it is sold at
type RestaurantPizza struct {
	ID           uint        `gorm:"primaryKey"`
	Price        int         `gorm:"not null"`
	RestaurantID uint        `gorm:"not null;index"`
	PizzaID      uint        `gorm:"not null;index"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID"`
	Pizza        *Pizza      `gorm:"foreignKey:PizzaID"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// BeforeCreate refuses to persist a price outside [MinPrice, MaxPrice]
func (rp *RestaurantPizza) BeforeCreate(tx *gorm.DB) error {
	if rp.Price < MinPrice || rp.Price > MaxPrice {
		return NewValidationError(priceRangeMessage)
	}
	return nil
}

// RestaurantPizzaInput is the payload accepted when creating a RestaurantPizza.
// Pointers distinguish an absent field from a zero value.
type RestaurantPizzaInput struct {
	Price        *int  `json:"price" validate:"required,min=1,max=30"`
	PizzaID      *uint `json:"pizza_id" validate:"required,min=1"`
	RestaurantID *uint `json:"restaurant_id" validate:"required,min=1"`
}

var priceRangeMessage = fmt.Sprintf("Price must be between %d and %d", MinPrice, MaxPrice)

var validate = newValidator()

// newValidator reports fields by their JSON name so messages match the payload
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the input and returns a *ValidationError listing every
// failing field, or nil when the input can be persisted
func (in RestaurantPizzaInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, inputErrorMessage(fe))
	}
	return NewValidationError(messages...)
}

func inputErrorMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fe.Field() + " is required"
	}
	if fe.Field() == "price" {
		return priceRangeMessage
	}
	return fe.Field() + " must be a positive integer"
}
