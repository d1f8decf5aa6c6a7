package routes

import (
	"net/http"

	"github.com/sporkart/facility-discovery/internal/api/handlers"
	"github.com/sporkart/facility-discovery/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	facilityHandler *handlers.FacilityHandler
	facetHandler    *handlers.FacetHandler
	positionHandler *handlers.PositionHandler
}

// NewRouter creates a new router
func NewRouter(
	facilityHandler *handlers.FacilityHandler,
	facetHandler *handlers.FacetHandler,
	positionHandler *handlers.PositionHandler,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		facilityHandler: facilityHandler,
		facetHandler:    facetHandler,
		positionHandler: positionHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Facility endpoints
	r.mux.HandleFunc("GET /api/facilities", r.facilityHandler.ListFacilities)
	r.mux.HandleFunc("GET /api/facilities/{id}", r.facilityHandler.GetFacility)
	r.mux.HandleFunc("GET /api/facilities/{id}/directions", r.facilityHandler.GetDirections)

	// Facet endpoints
	r.mux.HandleFunc("GET /api/facets", r.facetHandler.GetFacets)

	// Position endpoints
	r.mux.HandleFunc("POST /api/position", r.positionHandler.AcquirePosition)
	r.mux.HandleFunc("GET /api/position", r.positionHandler.GetPositionState)

	var handler http.Handler = r.mux
	handler = middleware.CORSMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)

	return handler
}
