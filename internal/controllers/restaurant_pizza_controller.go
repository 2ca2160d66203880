package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza links a pizza to a restaurant at a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer a pizza at a restaurant. The price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body services.CreateRestaurantPizzaInput true "Price, pizza and restaurant"
// @Success 201 {object} models.RestaurantPizzaCreatedView
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input services.CreateRestaurantPizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, models.NewValidationError(http.StatusBadRequest, err), "")
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, "Failed to create restaurant pizza")
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaCreatedView(created))
}
