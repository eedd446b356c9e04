package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

func TestRestaurantPizzaInputValidate(t *testing.T) {
	testCases := []struct {
		name     string
		input    RestaurantPizzaInput
		expected []string
	}{
		{
			name:     "should accept lowest price",
			input:    RestaurantPizzaInput{Price: intPtr(1), PizzaID: uintPtr(1), RestaurantID: uintPtr(1)},
			expected: nil,
		},
		{
			name:     "should accept highest price",
			input:    RestaurantPizzaInput{Price: intPtr(30), PizzaID: uintPtr(2), RestaurantID: uintPtr(3)},
			expected: nil,
		},
		{
			name:     "should reject zero price",
			input:    RestaurantPizzaInput{Price: intPtr(0), PizzaID: uintPtr(1), RestaurantID: uintPtr(1)},
			expected: []string{"Price must be between 1 and 30"},
		},
		{
			name:     "should reject price above range",
			input:    RestaurantPizzaInput{Price: intPtr(31), PizzaID: uintPtr(1), RestaurantID: uintPtr(1)},
			expected: []string{"Price must be between 1 and 30"},
		},
		{
			name:     "should reject negative price",
			input:    RestaurantPizzaInput{Price: intPtr(-4), PizzaID: uintPtr(1), RestaurantID: uintPtr(1)},
			expected: []string{"Price must be between 1 and 30"},
		},
		{
			name:     "should require price",
			input:    RestaurantPizzaInput{PizzaID: uintPtr(1), RestaurantID: uintPtr(1)},
			expected: []string{"price is required"},
		},
		{
			name:     "should report every missing field in order",
			input:    RestaurantPizzaInput{},
			expected: []string{"price is required", "pizza_id is required", "restaurant_id is required"},
		},
		{
			name:     "should reject zero identifiers",
			input:    RestaurantPizzaInput{Price: intPtr(5), PizzaID: uintPtr(0), RestaurantID: uintPtr(0)},
			expected: []string{"pizza_id must be a positive integer", "restaurant_id must be a positive integer"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "expected *ValidationError, got %v", err)
			assert.Equal(t, tt.expected, validationErr.Messages)
		})
	}
}

func TestRestaurantPizzaBeforeCreate(t *testing.T) {
	for price := MinPrice; price <= MaxPrice; price++ {
		rp := &RestaurantPizza{Price: price}
		assert.NoError(t, rp.BeforeCreate(nil), "price %d", price)
	}

	for _, price := range []int{-1, 0, 31, 100} {
		rp := &RestaurantPizza{Price: price}
		err := rp.BeforeCreate(nil)
		var validationErr *ValidationError
		assert.True(t, errors.As(err, &validationErr), "price %d", price)
	}
}

func TestNewAPIError(t *testing.T) {
	apiErr := NewAPIError(ErrNotFound, "Restaurant not found")
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Restaurant not found", apiErr.Error)
	assert.Equal(t, []string{"Restaurant not found"}, apiErr.Errors)

	empty := NewAPIError(ErrInternalServer)
	assert.Empty(t, empty.Error)
	assert.NotNil(t, empty.Errors)
}
