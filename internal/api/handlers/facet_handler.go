package handlers

import (
	"net/http"

	"github.com/sporkart/facility-discovery/internal/application/services"
)

// FacetHandler serves the selectable filter options.
type FacetHandler struct {
	catalogService *services.CatalogService
	facetService   *services.FacetService
}

// NewFacetHandler creates a new facet handler
func NewFacetHandler(catalogService *services.CatalogService, facetService *services.FacetService) *FacetHandler {
	return &FacetHandler{
		catalogService: catalogService,
		facetService:   facetService,
	}
}

// GetFacets handles GET /api/facets. Districts depend on the optional city
// parameter and are empty without one.
func (h *FacetHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogService.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	index := h.facetService.Index(catalog, r.URL.Query().Get("city"))
	respondWithJSON(w, http.StatusOK, index)
}
