package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
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
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaView
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to retrieve pizzas")
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaViews(pizzas))
}
