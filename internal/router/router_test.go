package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Open("sqlite://")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestRouter(db *gorm.DB, authEnabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		Port:        5555,
		Host:        "localhost",
		Environment: "test",
		AuthEnabled: authEnabled,
		JWTSecret:   "test-jwt-secret-key-32-characters",
	}
	return New(cfg, db, logger)
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestIndexAndHealth(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db, false)

	w := perform(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Code challenge</h1>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = perform(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w = perform(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
}

func TestRestaurantPizzaScenario(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db, false)

	w := perform(router, httptest.NewRequest(http.MethodGet, "/restaurants", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	require.NoError(t, db.Create(&models.Restaurant{Name: "Kiki's Pizza", Address: "address3"}).Error)
	require.NoError(t, db.Create(&models.Pizza{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"}).Error)

	w = perform(router, jsonRequest(http.MethodPost, "/restaurant_pizzas", `{"price":15,"pizza_id":1,"restaurant_id":1}`))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"id": 1, "price": 15, "pizza_id": 1, "restaurant_id": 1,
		"pizza": {"id": 1, "name": "Melanie", "ingredients": "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		"restaurant": {"id": 1, "name": "Kiki's Pizza", "address": "address3"}
	}`, w.Body.String())

	w = perform(router, httptest.NewRequest(http.MethodGet, "/restaurants/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 1, "name": "Kiki's Pizza", "address": "address3",
		"restaurant_pizzas": [{
			"id": 1, "price": 15, "pizza_id": 1, "restaurant_id": 1,
			"pizza": {"id": 1, "name": "Melanie", "ingredients": "Dough, Sauce, Ricotta, Red peppers, Mustard"}
		}]
	}`, w.Body.String())

	w = perform(router, httptest.NewRequest(http.MethodDelete, "/restaurants/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(router, httptest.NewRequest(http.MethodGet, "/restaurants/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())
}

func TestSeededDatabase(t *testing.T) {
	db := setupTestDB(t)
	seeded, err := database.SeedIfEmpty(db)
	require.NoError(t, err)
	require.True(t, seeded)
	router := newTestRouter(db, false)

	w := perform(router, httptest.NewRequest(http.MethodGet, "/restaurants", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var restaurants []models.RestaurantView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurants))
	assert.Len(t, restaurants, 3)

	w = perform(router, httptest.NewRequest(http.MethodGet, "/pizzas", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var pizzas []models.PizzaView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pizzas))
	assert.Len(t, pizzas, 3)
}

func issueToken(t *testing.T, router *gin.Engine, clientID, secret string) string {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {clientID},
		"client_secret": {secret},
	}
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := perform(router, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Bearer", body["token_type"])
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createOperatorClient(t *testing.T, db *gorm.DB, role string) (string, string) {
	ctx := context.Background()
	user, _, err := services.NewUserService(db).GetOrCreateUser(ctx, role+"@pizza.com", role, role)
	require.NoError(t, err)
	client, secret, err := services.NewClientService(db).CreateClient(ctx, user.ID, services.NewClientRequest{Name: role + " client"})
	require.NoError(t, err)
	return client.ID, secret
}

func TestWriteEndpointsWithAuthEnabled(t *testing.T) {
	db := setupTestDB(t)
	_, err := database.SeedIfEmpty(db)
	require.NoError(t, err)
	router := newTestRouter(db, true)

	adminID, adminSecret := createOperatorClient(t, db, models.RoleAdmin)
	userID, userSecret := createOperatorClient(t, db, models.RoleUser)
	adminToken := issueToken(t, router, adminID, adminSecret)
	userToken := issueToken(t, router, userID, userSecret)

	body := `{"price":20,"pizza_id":2,"restaurant_id":3}`

	t.Run("reads stay public", func(t *testing.T) {
		w := perform(router, httptest.NewRequest(http.MethodGet, "/restaurants/1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := perform(router, jsonRequest(http.MethodPost, "/restaurant_pizzas", body))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non admin token", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/restaurant_pizzas", body)
		req.Header.Set("Authorization", "Bearer "+userToken)
		w := perform(router, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin token", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/restaurant_pizzas", body)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := perform(router, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		req = httptest.NewRequest(http.MethodDelete, "/restaurants/3", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w = perform(router, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("admin manages clients", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := perform(router, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), adminID)
		assert.NotContains(t, w.Body.String(), userID)
	})
}

func TestAdminRoutesRequireAuthWhenWritesArePublic(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db, false)

	w := perform(router, httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	form := url.Values{"grant_type": {"password"}, "client_id": {"x"}, "client_secret": {"y"}}
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = perform(router, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported_grant_type")
}
