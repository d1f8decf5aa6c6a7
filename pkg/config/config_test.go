package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_GeolocationConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("GEOLOCATION_PROVIDER", "http")
	os.Setenv("GEOLOCATION_TIMEOUT_MS", "3000")
	defer func() {
		os.Unsetenv("GEOLOCATION_PROVIDER")
		os.Unsetenv("GEOLOCATION_TIMEOUT_MS")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http", cfg.Geolocation.Provider)
	assert.Equal(t, 3000, cfg.Geolocation.TimeoutMs)
	assert.True(t, cfg.Geolocation.HighAccuracy)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("GEOLOCATION_PROVIDER")
	os.Unsetenv("CATALOG_SOURCE")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "mock", cfg.Geolocation.Provider)
	assert.Equal(t, 5000, cfg.Geolocation.TimeoutMs)
	assert.Equal(t, 0, cfg.Geolocation.MaxAgeMs)
	assert.Equal(t, "static", cfg.Catalog.Source)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "secret",
		Database: "catalog",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=catalog sslmode=disable", cfg.DatabaseDSN())
}
