package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurantPizzaValidate(t *testing.T) {
	testCases := []struct {
		name    string
		price   int
		wantErr bool
	}{
		{name: "lower bound is accepted", price: MinPrice, wantErr: false},
		{name: "upper bound is accepted", price: MaxPrice, wantErr: false},
		{name: "middle of the range is accepted", price: 15, wantErr: false},
		{name: "zero is rejected", price: 0, wantErr: true},
		{name: "negative is rejected", price: -3, wantErr: true},
		{name: "just above the range is rejected", price: MaxPrice + 1, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rp := RestaurantPizza{Price: tt.price, PizzaID: 1, RestaurantID: 1}
			err := rp.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestaurantPizzaValidateMissingReferences(t *testing.T) {
	rp := RestaurantPizza{Price: 10}
	err := rp.Validate()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPrice)
}

func TestDomainErrorKinds(t *testing.T) {
	notFound := NewNotFoundError(MsgRestaurantNotFound, errors.New("record not found"))
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsValidation(notFound))
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Contains(t, notFound.Error(), MsgRestaurantNotFound)

	wrapped := NewValidationError(http.StatusBadRequest, ErrInvalidPrice)
	assert.True(t, IsValidation(wrapped))
	assert.ErrorIs(t, wrapped, ErrInvalidPrice)
	assert.Equal(t, http.StatusBadRequest, wrapped.Status)
}

func TestRestaurantDetailViewHasNoNilCollection(t *testing.T) {
	view := NewRestaurantDetailView(Restaurant{ID: 3, Name: "Karen's Pizza Shack", Address: "address1"})
	assert.NotNil(t, view.RestaurantPizzas)
	assert.Empty(t, view.RestaurantPizzas)
	assert.Equal(t, 3, view.ID)
}

func TestRestaurantDetailViewNestsPizza(t *testing.T) {
	r := Restaurant{
		ID:   1,
		Name: "Sanjay's Pizza",
		RestaurantPizzas: []RestaurantPizza{
			{ID: 7, Price: 12, PizzaID: 2, RestaurantID: 1, Pizza: Pizza{ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese"}},
		},
	}

	view := NewRestaurantDetailView(r)

	if assert.Len(t, view.RestaurantPizzas, 1) {
		entry := view.RestaurantPizzas[0]
		assert.Equal(t, 7, entry.ID)
		assert.Equal(t, 12, entry.Price)
		assert.Equal(t, "Geri", entry.Pizza.Name)
		assert.Equal(t, "Dough, Tomato Sauce, Cheese", entry.Pizza.Ingredients)
	}
}
