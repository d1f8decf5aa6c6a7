package handlers

import (
	"net/http"

	"github.com/sporkart/facility-discovery/internal/application/services"
)

// PositionHandler exposes position acquisition to thin clients that cannot
// talk to a platform location provider themselves.
type PositionHandler struct {
	locationService *services.LocationService
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(locationService *services.LocationService) *PositionHandler {
	return &PositionHandler{locationService: locationService}
}

// AcquirePosition handles POST /api/position. Each call is one user-initiated
// fresh-fix request.
func (h *PositionHandler) AcquirePosition(w http.ResponseWriter, r *http.Request) {
	position, err := h.locationService.Acquire(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"state": h.locationService.State().String(),
		"lat":   position.Latitude,
		"lon":   position.Longitude,
	})
}

// GetPositionState handles GET /api/position.
func (h *PositionHandler) GetPositionState(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"state": h.locationService.State().String(),
	}
	if pos := h.locationService.Position(); pos != nil {
		payload["lat"] = pos.Latitude
		payload["lon"] = pos.Longitude
	}
	respondWithJSON(w, http.StatusOK, payload)
}
