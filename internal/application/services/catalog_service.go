package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
	"github.com/sporkart/facility-discovery/internal/domain/repositories"
)

// CatalogService provides read access to the normalized facility catalog.
// The catalog only changes by a full replacement of its source; facets and
// rankings are recomputed from it on demand.
type CatalogService struct {
	mu   sync.RWMutex
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns every facility in the catalog.
func (s *CatalogService) List(ctx context.Context) ([]*entities.Facility, error) {
	s.mu.RLock()
	repo := s.repo
	s.mu.RUnlock()
	return repo.List(ctx)
}

// GetByID retrieves a facility by ID
func (s *CatalogService) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	s.mu.RLock()
	repo := s.repo
	s.mu.RUnlock()
	return repo.GetByID(ctx, id)
}

// Replace swaps the catalog source wholesale. Existing Facility entities are
// never mutated in place.
func (s *CatalogService) Replace(repo repositories.CatalogRepository) {
	s.mu.Lock()
	s.repo = repo
	s.mu.Unlock()
	log.Info().Msg("catalog source replaced")
}
