package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sporkart/facility-discovery/internal/application/services"
	"github.com/sporkart/facility-discovery/internal/domain/entities"
)

// maxDisplayResults caps how many ranked entries a single response carries.
// Truncation is a presentation concern; the ranking itself never drops
// entries.
const maxDisplayResults = 100

// FacilityHandler handles facility-related HTTP requests
type FacilityHandler struct {
	catalogService *services.CatalogService
	rankingService *services.RankingService
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(catalogService *services.CatalogService, rankingService *services.RankingService) *FacilityHandler {
	return &FacilityHandler{
		catalogService: catalogService,
		rankingService: rankingService,
	}
}

// ListFacilities handles GET /api/facilities. The four facet parameters are
// optional; lat/lon switch the ordering from collated name to proximity.
func (h *FacilityHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	selection := entities.FilterSelection{}
	selection.SelectCity(query.Get("city"))
	// A district without its city is meaningless and treated as unset.
	if selection.City != "" {
		selection.District = query.Get("district")
	}
	selection.Type = query.Get("type")
	selection.CardType = query.Get("cardType")

	userLocation, err := parseOptionalLocation(query.Get("lat"), query.Get("lon"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	catalog, err := h.catalogService.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	ranked := h.rankingService.Rank(catalog, selection, userLocation)

	total := len(ranked)
	if len(ranked) > maxDisplayResults {
		ranked = ranked[:maxDisplayResults]
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"facilities":  ranked,
		"count":       len(ranked),
		"total_count": total,
	})
}

// GetFacility handles GET /api/facilities/{id}
func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	facilityID := r.PathValue("id")
	if facilityID == "" {
		respondWithError(w, http.StatusBadRequest, "facility ID is required")
		return
	}

	facility, err := h.catalogService.GetByID(r.Context(), facilityID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, facility)
}

// GetDirections handles GET /api/facilities/{id}/directions. The result is a
// one-way navigation hand-off link parameterized by the facility coordinate.
func (h *FacilityHandler) GetDirections(w http.ResponseWriter, r *http.Request) {
	facilityID := r.PathValue("id")
	if facilityID == "" {
		respondWithError(w, http.StatusBadRequest, "facility ID is required")
		return
	}

	facility, err := h.catalogService.GetByID(r.Context(), facilityID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	directionsURL := fmt.Sprintf(
		"https://maps.google.com/?daddr=%f,%f",
		facility.Location.Latitude,
		facility.Location.Longitude,
	)

	respondWithJSON(w, http.StatusOK, map[string]string{
		"facility_id": facility.ID,
		"url":         directionsURL,
	})
}

func parseOptionalLocation(latStr, lonStr string) (*entities.Location, error) {
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, fmt.Errorf("lat and lon must be provided together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lat parameter")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lon parameter")
	}

	return &entities.Location{Latitude: lat, Longitude: lon}, nil
}
