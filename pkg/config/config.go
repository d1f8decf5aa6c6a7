package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Catalog     CatalogConfig
	Geolocation GeolocationConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Env string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CatalogConfig holds catalog source configuration. Source selects between
// the static JSON file and the Postgres-backed catalog.
type CatalogConfig struct {
	Source string
	Path   string
}

// GeolocationConfig holds position provider configuration. TimeoutMs bounds a
// single acquisition; MaxAgeMs of zero forces a fresh fix on every request.
type GeolocationConfig struct {
	Provider     string
	APIKey       string
	Endpoint     string
	TimeoutMs    int
	MaxAgeMs     int
	HighAccuracy bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "facility_discovery"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", "static"),
			Path:   getEnv("CATALOG_PATH", "facilities.json"),
		},
		Geolocation: GeolocationConfig{
			Provider:     getEnv("GEOLOCATION_PROVIDER", "mock"),
			APIKey:       getEnv("GEOLOCATION_API_KEY", ""),
			Endpoint:     getEnv("GEOLOCATION_ENDPOINT", ""),
			TimeoutMs:    getEnvAsInt("GEOLOCATION_TIMEOUT_MS", 5000),
			MaxAgeMs:     getEnvAsInt("GEOLOCATION_MAX_AGE_MS", 0),
			HighAccuracy: getEnvAsBool("GEOLOCATION_HIGH_ACCURACY", true),
		},
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
