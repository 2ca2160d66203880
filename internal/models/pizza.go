package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`

	// Removing associations never removes the pizza itself
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"foreignKey:PizzaID"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
