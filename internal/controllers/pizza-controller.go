package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/franciscosanchezn/pizza-place-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) *pizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 500 {object} models.APIError
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaSummaries(pizzas))
}
