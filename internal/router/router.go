package router

import (
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/auth"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires services and controllers on top of db and returns the configured engine
func New(cfg *config.Config, db *gorm.DB, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))
	clientController := controllers.NewClientController(services.NewClientService(db), services.NewUserService(db))
	oauthService := auth.NewOAuthService(db, cfg.JWTSecret)

	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler(db))

	requireAdmin := []gin.HandlerFunc{
		middleware.BearerAuth([]byte(cfg.JWTSecret)),
		middleware.RequireRole(models.RoleAdmin),
	}

	// Write endpoints are public unless auth is switched on
	var writeGuards []gin.HandlerFunc
	if cfg.AuthEnabled {
		writeGuards = requireAdmin
	}

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", append(writeGuards, restaurantController.DeleteRestaurant)...)
	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.POST("/restaurant_pizzas", append(writeGuards, restaurantPizzaController.CreateRestaurantPizza)...)

	router.POST("/oauth/token", oauthService.HandleToken)

	v1 := router.Group("/api/v1")
	{
		adminApi := v1.Group("/admin")
		adminApi.Use(requireAdmin...)
		{
			adminApi.POST("/clients", clientController.CreateClient)
			adminApi.GET("/clients", clientController.ListClients)
			adminApi.DELETE("/clients/:id", clientController.DeleteClient)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
