package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
	"github.com/sporkart/facility-discovery/internal/domain/providers"
	"github.com/sporkart/facility-discovery/internal/domain/repositories"
)

// CachedCatalogAdapter wraps a CatalogRepository with read-through caching.
// Only catalog reads are cached; user positions never pass through here.
type CachedCatalogAdapter struct {
	adapter repositories.CatalogRepository
	cache   providers.CacheProvider
}

// NewCachedCatalogAdapter creates a new cached catalog adapter
func NewCachedCatalogAdapter(adapter repositories.CatalogRepository, cache providers.CacheProvider) repositories.CatalogRepository {
	return &CachedCatalogAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	catalogListTTL  = 300
	facilityByIDTTL = 300
)

const catalogListCacheKey = "catalog:all"

func facilityCacheKey(id string) string {
	return fmt.Sprintf("facility:%s", id)
}

// List returns the whole catalog, served from cache when possible.
func (a *CachedCatalogAdapter) List(ctx context.Context) ([]*entities.Facility, error) {
	if cached, err := a.cache.Get(ctx, catalogListCacheKey); err == nil {
		var facilities []*entities.Facility
		if err := json.Unmarshal(cached, &facilities); err == nil {
			return facilities, nil
		}
		log.Warn().Err(err).Msg("failed to unmarshal cached catalog")
	}

	facilities, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(facilities); err == nil {
		if err := a.cache.Set(ctx, catalogListCacheKey, data, catalogListTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache catalog")
		}
	}

	return facilities, nil
}

// GetByID retrieves a facility by ID, served from cache when possible.
func (a *CachedCatalogAdapter) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	cacheKey := facilityCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var facility entities.Facility
		if err := json.Unmarshal(cached, &facility); err == nil {
			return &facility, nil
		}
		log.Warn().Str("facility_id", id).Err(err).Msg("failed to unmarshal cached facility")
	}

	facility, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(facility); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, facilityByIDTTL); err != nil {
			log.Warn().Str("facility_id", id).Err(err).Msg("failed to cache facility")
		}
	}

	return facility, nil
}
