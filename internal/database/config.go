package database

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// ParseURL builds a DatabaseConfig from a single connection string.
// postgres:// and postgresql:// URLs select PostgreSQL. sqlite:///relative.db,
// sqlite:////absolute.db, file: URIs and bare paths select SQLite.
func ParseURL(raw string) (DatabaseConfig, error) {
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return parsePostgresURL(raw)
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			path = ":memory:"
		}
		return DatabaseConfig{Driver: DriverSQLite, Path: path}, nil
	case strings.Contains(raw, "://"):
		return DatabaseConfig{}, fmt.Errorf("unsupported database URL: %s", redactURL(raw))
	case raw == "":
		return DatabaseConfig{}, fmt.Errorf("database URL is empty")
	default:
		return DatabaseConfig{Driver: DriverSQLite, Path: raw}, nil
	}
}

func parsePostgresURL(raw string) (DatabaseConfig, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid postgres URL: %w", err)
	}

	cfg := DatabaseConfig{
		Driver:  DriverPostgres,
		Host:    u.Hostname(),
		Port:    u.Port(),
		Name:    strings.TrimPrefix(u.Path, "/"),
		SSLMode: u.Query().Get("sslmode"),
	}
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg, nil
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}
	return u.Redacted()
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// InMemory reports whether the configuration points at a private SQLite memory database
func (c *DatabaseConfig) InMemory() bool {
	return c.Driver == DriverSQLite && strings.HasPrefix(c.Path, ":memory:")
}

// DSN builds a Data Source Name string based on the driver.
// SQLite DSNs always enable foreign key enforcement.
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case DriverPostgres, "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case DriverSQLite, "":
		if strings.Contains(c.Path, "_foreign_keys=") {
			return c.Path
		}
		if strings.Contains(c.Path, "?") {
			return c.Path + "&_foreign_keys=on"
		}
		return c.Path + "?_foreign_keys=on"
	default:
		return ""
	}
}
