package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema: pizzas, restaurants and restaurant_pizzas,
// plus the tables backing OAuth client credentials.
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Pizza{}, &models.Restaurant{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("migrating domain tables: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.OAuthClient{}, &models.OAuthToken{}); err != nil {
		return fmt.Errorf("migrating oauth tables: %w", err)
	}
	log.Info("Database schema up to date")
	return nil
}
