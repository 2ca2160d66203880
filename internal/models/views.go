package models

// RestaurantView is the default serialization of a Restaurant, without associations
type RestaurantView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaView is the default serialization of a Pizza, without associations
type PizzaView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaView is an association entry inside RestaurantDetailView
type RestaurantPizzaView struct {
	ID           int       `json:"id"`
	Price        int       `json:"price"`
	PizzaID      int       `json:"pizza_id"`
	RestaurantID int       `json:"restaurant_id"`
	Pizza        PizzaView `json:"pizza"`
}

// RestaurantDetailView expands a restaurant with its associations, one level deep
type RestaurantDetailView struct {
	RestaurantView
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreatedView is returned after creating an association
type RestaurantPizzaCreatedView struct {
	ID           int            `json:"id"`
	Price        int            `json:"price"`
	PizzaID      int            `json:"pizza_id"`
	RestaurantID int            `json:"restaurant_id"`
	Pizza        PizzaView      `json:"pizza"`
	Restaurant   RestaurantView `json:"restaurant"`
}

func NewRestaurantView(r Restaurant) RestaurantView {
	return RestaurantView{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewPizzaView(p Pizza) PizzaView {
	return PizzaView{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewRestaurantViews maps restaurants to their default views. The result is never nil.
func NewRestaurantViews(restaurants []Restaurant) []RestaurantView {
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, NewRestaurantView(r))
	}
	return views
}

// NewPizzaViews maps pizzas to their default views. The result is never nil.
func NewPizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, NewPizzaView(p))
	}
	return views
}

// NewRestaurantDetailView expects RestaurantPizzas and their Pizza to be loaded
func NewRestaurantDetailView(r Restaurant) RestaurantDetailView {
	entries := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		entries = append(entries, RestaurantPizzaView{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Pizza:        NewPizzaView(rp.Pizza),
		})
	}
	return RestaurantDetailView{
		RestaurantView:   NewRestaurantView(r),
		RestaurantPizzas: entries,
	}
}

// NewRestaurantPizzaCreatedView expects Pizza and Restaurant to be loaded
func NewRestaurantPizzaCreatedView(rp RestaurantPizza) RestaurantPizzaCreatedView {
	return RestaurantPizzaCreatedView{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        NewPizzaView(rp.Pizza),
		Restaurant:   NewRestaurantView(rp.Restaurant),
	}
}
