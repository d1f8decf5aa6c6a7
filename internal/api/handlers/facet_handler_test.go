package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporkart/facility-discovery/internal/adapters/catalog"
	"github.com/sporkart/facility-discovery/internal/application/services"
	"github.com/sporkart/facility-discovery/internal/domain/entities"
)

func newTestFacetHandler() *FacetHandler {
	catalogService := services.NewCatalogService(catalog.NewStaticAdapter(testRecords()))
	return NewFacetHandler(catalogService, services.NewFacetService())
}

func TestGetFacets_WithoutCity(t *testing.T) {
	h := newTestFacetHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/facets", nil)
	rec := httptest.NewRecorder()
	h.GetFacets(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var index entities.FacetIndex
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &index))

	assert.Equal(t, []string{"Istanbul"}, index.Cities)
	assert.Empty(t, index.Districts, "districts stay empty until a city is chosen")
	assert.Equal(t, []string{"Gym", "Pool"}, index.Types)
	assert.Equal(t, []string{"CardA", "Tümü"}, index.CardTypes)
}

func TestGetFacets_WithCity(t *testing.T) {
	h := newTestFacetHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/facets?city=Istanbul", nil)
	rec := httptest.NewRecorder()
	h.GetFacets(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var index entities.FacetIndex
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &index))

	assert.Equal(t, []string{"Besiktas", "Kadikoy"}, index.Districts)
}
