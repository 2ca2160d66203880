package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Inclusive bounds for RestaurantPizza.Price
const (
	MinPrice = 1
	MaxPrice = 30
)

// ErrInvalidPrice is returned when a RestaurantPizza price falls outside [MinPrice, MaxPrice]
var ErrInvalidPrice = fmt.Errorf("price must be between %d and %d", MinPrice, MaxPrice)

var validate = validator.New()

// RestaurantPizza links a restaurant to a pizza it sells at a given price
type RestaurantPizza struct {
	ID           int `json:"id" gorm:"primaryKey"`
	Price        int `json:"price" gorm:"not null" validate:"gte=1,lte=30"`
	PizzaID      int `json:"pizza_id" gorm:"not null;index" validate:"required"`
	RestaurantID int `json:"restaurant_id" gorm:"not null;index" validate:"required"`

	Pizza      Pizza      `json:"-" gorm:"foreignKey:PizzaID"`
	Restaurant Restaurant `json:"-" gorm:"foreignKey:RestaurantID"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// Validate checks the price range and the presence of both foreign keys
func (rp *RestaurantPizza) Validate() error {
	if err := validate.Struct(rp); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				if fe.Field() == "Price" {
					return ErrInvalidPrice
				}
			}
			return fmt.Errorf("invalid restaurant pizza: %w", validationErrors)
		}
		return err
	}
	return nil
}

// BeforeSave runs Validate so that no invalid association reaches the database
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return rp.Validate()
}
