package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/franciscosanchezn/pizza-place-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants without their menu
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) *restaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants, without their restaurant pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.APIError
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantSummaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with its restaurant pizzas, each expanded with its pizza
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "restaurant")
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetail(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and all of its restaurant pizzas
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "restaurant")
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
