package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/franciscosanchezn/pizza-place-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant menu at a price
	CreateRestaurantPizza(c *gin.Context)
	// GetRestaurantPizzaByID retrieves a restaurant pizza by its ID
	GetRestaurantPizzaByID(c *gin.Context)
	// DeleteRestaurantPizza removes a restaurant pizza by its ID
	DeleteRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) *restaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Put an existing pizza on an existing restaurant's menu; price must be between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.RestaurantPizzaInput true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input models.RestaurantPizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithBadRequest(ctx, "Invalid request body")
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaDetail(created))
}

// GetRestaurantPizzaByID godoc
// @Summary Get restaurant pizza by ID
// @Description Get a restaurant pizza with its restaurant and pizza
// @Tags restaurant_pizzas
// @Produce json
// @Param id path int true "Restaurant pizza ID"
// @Success 200 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurant_pizzas/{id} [get]
func (c *restaurantPizzaController) GetRestaurantPizzaByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "restaurant pizza")
	if !ok {
		return
	}

	rp, err := c.service.GetRestaurantPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantPizzaDetail(rp))
}

// DeleteRestaurantPizza godoc
// @Summary Delete a restaurant pizza
// @Description Remove a pizza from a restaurant's menu
// @Tags restaurant_pizzas
// @Param id path int true "Restaurant pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurant_pizzas/{id} [delete]
func (c *restaurantPizzaController) DeleteRestaurantPizza(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "restaurant pizza")
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurantPizza(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
