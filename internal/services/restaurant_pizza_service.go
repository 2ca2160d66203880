package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrMissingFields is wrapped in the validation error returned when required fields are absent
var ErrMissingFields = errors.New("price, pizza_id and restaurant_id are required")

// CreateRestaurantPizzaInput carries the creation payload. Nil fields were absent from the request.
type CreateRestaurantPizzaInput struct {
	Price        *int `json:"price" binding:"required"`
	PizzaID      *int `json:"pizza_id" binding:"required"`
	RestaurantID *int `json:"restaurant_id" binding:"required"`
}

// RestaurantPizzaService creates associations between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and persists a new association.
	// The returned value has Pizza and Restaurant loaded.
	CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

// CreateRestaurantPizza checks, in order: required fields (400), referenced rows (404),
// then the price range (400). Nothing is persisted unless every check passes.
func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.RestaurantPizza, error) {
	if input.Price == nil || input.PizzaID == nil || input.RestaurantID == nil {
		return models.RestaurantPizza{}, models.NewValidationError(http.StatusBadRequest, ErrMissingFields)
	}

	var created models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, *input.RestaurantID).Error; err != nil {
			return referenceLookupError(err)
		}

		var pizza models.Pizza
		if err := tx.First(&pizza, *input.PizzaID).Error; err != nil {
			return referenceLookupError(err)
		}

		restaurantPizza := models.RestaurantPizza{
			Price:        *input.Price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		// BeforeSave validates the price, a failure aborts and rolls back the transaction
		if err := tx.Omit("Pizza", "Restaurant").Create(&restaurantPizza).Error; err != nil {
			if errors.Is(err, models.ErrInvalidPrice) {
				return models.NewValidationError(http.StatusBadRequest, err)
			}
			return err
		}

		restaurantPizza.Pizza = pizza
		restaurantPizza.Restaurant = restaurant
		created = restaurantPizza
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	log.WithFields(logrus.Fields{
		"restaurant_pizza_id": created.ID,
		"restaurant_id":       created.RestaurantID,
		"pizza_id":            created.PizzaID,
		"price":               created.Price,
	}).Info("Restaurant pizza created")
	return created, nil
}

// referenceLookupError reports an unresolved foreign key as a validation error with 404
func referenceLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewValidationError(http.StatusNotFound, err)
	}
	return err
}
