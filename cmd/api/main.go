package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sporkart/facility-discovery/internal/adapters/cache"
	"github.com/sporkart/facility-discovery/internal/adapters/catalog"
	"github.com/sporkart/facility-discovery/internal/adapters/database"
	"github.com/sporkart/facility-discovery/internal/adapters/providers/geolocation"
	"github.com/sporkart/facility-discovery/internal/api/handlers"
	"github.com/sporkart/facility-discovery/internal/api/routes"
	"github.com/sporkart/facility-discovery/internal/application/services"
	"github.com/sporkart/facility-discovery/internal/domain/providers"
	"github.com/sporkart/facility-discovery/internal/domain/repositories"
	"github.com/sporkart/facility-discovery/internal/infrastructure/clients/postgres"
	"github.com/sporkart/facility-discovery/internal/infrastructure/clients/redis"
	"github.com/sporkart/facility-discovery/internal/infrastructure/observability"
	"github.com/sporkart/facility-discovery/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("facility-discovery", cfg.App.Env)

	// Catalog source
	var catalogRepo repositories.CatalogRepository
	switch cfg.Catalog.Source {
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		catalogRepo = database.NewFacilityAdapter(pgClient)
	default:
		catalogRepo, err = catalog.NewStaticAdapterFromFile(cfg.Catalog.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("failed to load catalog file")
		}
	}

	// Wrap with caching if Redis is available; the service works without it.
	if redisClient, err := redis.NewClient(&cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		catalogRepo = database.NewCachedCatalogAdapter(catalogRepo, cache.NewRedisAdapter(redisClient))
		log.Info().Msg("catalog reads cached in Redis")
	}

	catalogService := services.NewCatalogService(catalogRepo)
	facetService := services.NewFacetService()
	rankingService := services.NewRankingService()

	// Position provider; absent provider means the platform has no location
	// capability and acquisition reports unsupported.
	var positionProvider providers.PositionProvider
	switch cfg.Geolocation.Provider {
	case "http":
		positionProvider = geolocation.NewHTTPPositionProviderWithOptions(cfg.Geolocation.APIKey, cfg.Geolocation.Endpoint, nil)
	case "mock":
		positionProvider = geolocation.NewMockPositionProvider()
	default:
		positionProvider = nil
	}
	positionOpts := providers.PositionOptions{
		HighAccuracy: cfg.Geolocation.HighAccuracy,
		Timeout:      time.Duration(cfg.Geolocation.TimeoutMs) * time.Millisecond,
		MaxAge:       time.Duration(cfg.Geolocation.MaxAgeMs) * time.Millisecond,
	}
	locationService := services.NewLocationService(positionProvider, positionOpts)

	facilityHandler := handlers.NewFacilityHandler(catalogService, rankingService)
	facetHandler := handlers.NewFacetHandler(catalogService, facetService)
	positionHandler := handlers.NewPositionHandler(locationService)

	router := routes.NewRouter(facilityHandler, facetHandler, positionHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
