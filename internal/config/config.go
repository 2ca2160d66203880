package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// DefaultDatabaseURL points at a local SQLite file when no connection string is supplied
const DefaultDatabaseURL = "sqlite:///app.db"

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DatabaseURL  string `json:"database_url"`
	SeedDatabase bool   `json:"seed_database"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	AuthEnabled bool   `json:"auth_enabled"`
	JWTSecret   string `json:"jwt_secret"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DatabaseURL: %s, SeedDatabase: %t, LogLevel: %s, AuthEnabled: %t, JWTSecret: [REDACTED]}",
		c.Port, c.Host, c.Environment, maskDatabaseURL(c.DatabaseURL), c.SeedDatabase, c.LogLevel, c.AuthEnabled)
}

// Address returns the host:port pair the HTTP server binds to
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// DB_URI takes precedence over DATABASE_URL; when both are missing a local SQLite file is used
// Returns an error if any environment variable is present but invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d is out of range", port)
	}

	dbURL := os.Getenv("DB_URI")
	if dbURL == "" {
		dbURL = GetEnvWithDefault("DATABASE_URL", DefaultDatabaseURL)
	}
	if err := validateDatabaseURL(dbURL); err != nil {
		return nil, err
	}

	config := &Config{
		Port:         port,
		Host:         GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:  GetEnvWithDefault("APP_ENV", "development"),
		DatabaseURL:  dbURL,
		SeedDatabase: GetEnvAsType("SEED_DATABASE", false),
		LogLevel:     GetEnvWithDefault("LOG_LEVEL", "info"),
		AuthEnabled:  GetEnvAsType("AUTH_ENABLED", false),
		JWTSecret:    GetEnvWithDefault("JWT_SECRET", "secret"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// validateDatabaseURL accepts postgres URLs, sqlite URLs and bare file paths
func validateDatabaseURL(dbURL string) error {
	if !strings.Contains(dbURL, "://") {
		return nil
	}
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return fmt.Errorf("invalid database URL format: %w", err)
	}
	switch parsed.Scheme {
	case "postgres", "postgresql", "sqlite":
		return nil
	default:
		return fmt.Errorf("unsupported database URL scheme %q (supported: postgres, sqlite)", parsed.Scheme)
	}
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
