package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)
	ctx := context.Background()

	restaurants, err := service.GetAllRestaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, restaurants)

	first := createRestaurant(t, db, "Karen's Pizza Shack")
	second := createRestaurant(t, db, "Sanjay's Pizza")
	pizza := createPizza(t, db, "Emma")
	createRestaurantPizza(t, db, first.ID, pizza.ID, 10)

	restaurants, err = service.GetAllRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, first.ID, restaurants[0].ID)
	assert.Equal(t, second.ID, restaurants[1].ID)
	assert.Nil(t, restaurants[0].RestaurantPizzas, "list must not load the menu")
}

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	restaurant := createRestaurant(t, db, "Kiki's Pizza")
	emma := createPizza(t, db, "Emma")
	geri := createPizza(t, db, "Geri")
	createRestaurantPizza(t, db, restaurant.ID, emma.ID, 5)
	createRestaurantPizza(t, db, restaurant.ID, geri.ID, 7)

	found, err := service.GetRestaurantByID(context.Background(), restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kiki's Pizza", found.Name)
	require.Len(t, found.RestaurantPizzas, 2)
	require.NotNil(t, found.RestaurantPizzas[0].Pizza)
	assert.Equal(t, "Emma", found.RestaurantPizzas[0].Pizza.Name)
	assert.Equal(t, "Geri", found.RestaurantPizzas[1].Pizza.Name)
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	_, err := service.GetRestaurantByID(context.Background(), 99999)
	var notFound *models.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Restaurant not found", notFound.Message)
}

func TestDeleteRestaurantCascades(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)
	rpService := NewRestaurantPizzaService(db)
	ctx := context.Background()

	doomed := createRestaurant(t, db, "Doomed")
	survivor := createRestaurant(t, db, "Survivor")
	pizza := createPizza(t, db, "Melanie")

	var ids []uint
	for price := 1; price <= 3; price++ {
		ids = append(ids, createRestaurantPizza(t, db, doomed.ID, pizza.ID, price).ID)
	}
	kept := createRestaurantPizza(t, db, survivor.ID, pizza.ID, 9)

	require.NoError(t, service.DeleteRestaurant(ctx, doomed.ID))

	_, err := service.GetRestaurantByID(ctx, doomed.ID)
	var notFound *models.NotFoundError
	assert.True(t, errors.As(err, &notFound))

	for _, id := range ids {
		_, err := rpService.GetRestaurantPizzaByID(ctx, id)
		assert.True(t, errors.As(err, &notFound), "restaurant pizza %d should be gone", id)
	}

	_, err = rpService.GetRestaurantPizzaByID(ctx, kept.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), countRestaurantPizzas(t, db))

	var pizzas int64
	db.Model(&models.Pizza{}).Count(&pizzas)
	assert.Equal(t, int64(1), pizzas, "pizzas are not owned by the restaurant")
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	err := service.DeleteRestaurant(context.Background(), 42)
	var notFound *models.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
