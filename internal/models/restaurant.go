package models

// Restaurant represents a restaurant and the pizzas it offers through RestaurantPizza records
type Restaurant struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Name    string `json:"name"`
	Address string `json:"address"`

	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
