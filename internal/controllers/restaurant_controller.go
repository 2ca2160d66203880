package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their pizzas
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns a restaurant with its restaurant pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description List every restaurant with its id, name and address
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantView
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to retrieve restaurants")
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantViews(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant and the pizzas it sells, with prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetailView
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgRestaurantNotFound})
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve restaurant")
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetailView(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant pizza that references it
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgRestaurantNotFound})
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Failed to delete restaurant")
		return
	}
	ctx.Status(http.StatusNoContent)
}
