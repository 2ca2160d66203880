package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to read and delete restaurants
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their associations
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas and their pizzas loaded
	GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas in one transaction
	DeleteRestaurant(ctx context.Context, id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, restaurantLookupError(err)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return restaurantLookupError(err)
		}

		// Cascade explicitly so the outcome does not depend on FK enforcement in the driver
		removed := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantPizza{})
		if removed.Error != nil {
			return removed.Error
		}

		if err := tx.Delete(&restaurant).Error; err != nil {
			return err
		}

		log.WithField("restaurant_id", restaurant.ID).
			WithField("restaurant_pizzas_removed", removed.RowsAffected).
			Info("Restaurant deleted")
		return nil
	})
}

func restaurantLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(models.MsgRestaurantNotFound, err)
	}
	return err
}
