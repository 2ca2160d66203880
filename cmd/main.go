package main

import (
	"context"
	"time"

	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/auth"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/router"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(configuration, db, log.StandardLogger())

	log.WithFields(log.Fields{
		"address":      configuration.Address(),
		"auth_enabled": configuration.AuthEnabled,
	}).Info("Starting server")
	if err := engine.Run(configuration.Address()); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger uses a JSON formatter and LOG_LEVEL, falling back to the environment's default level
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		level = config.LevelForEnvironment(conf.Environment)
		log.WithField("log_level", conf.LogLevel).Warn("Unknown log level, using environment default")
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
	services.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase connects, migrates and optionally seeds the database
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.Open(conf.DatabaseURL)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedDatabase {
		_, err := database.SeedIfEmpty(db)
		checkPanicErr(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	purged, err := auth.NewGormTokenStore(db).PurgeExpired(ctx, time.Now())
	if err != nil {
		log.WithError(err).Warn("Failed to purge expired tokens")
	} else if purged > 0 {
		log.WithField("purged", purged).Info("Expired access tokens removed")
	}

	return db
}
