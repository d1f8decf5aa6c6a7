package repositories

import (
	"context"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
)

// CatalogRepository defines the interface for catalog data access. The
// returned facilities are normalized and read-only; implementations replace
// the whole collection on update rather than mutating entries in place.
type CatalogRepository interface {
	// List returns every facility in the catalog.
	List(ctx context.Context) ([]*entities.Facility, error)

	// GetByID retrieves a facility by ID
	GetByID(ctx context.Context, id string) (*entities.Facility, error)
}
