package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
)

func TestFacets_CitiesDistinctAndSorted(t *testing.T) {
	svc := NewFacetService()
	cities := svc.Cities(testCatalog())
	assert.Equal(t, []string{"Ankara", "Istanbul"}, cities)
}

func TestFacets_DistrictsRequireCity(t *testing.T) {
	svc := NewFacetService()
	catalog := testCatalog()

	assert.Empty(t, svc.Districts(catalog, ""))
	assert.Equal(t, []string{"Besiktas", "Kadikoy", "Uskudar"}, svc.Districts(catalog, "Istanbul"))
	assert.Equal(t, []string{"Cankaya"}, svc.Districts(catalog, "Ankara"))
}

func TestFacets_DistrictsOfOtherCityAreExcluded(t *testing.T) {
	svc := NewFacetService()
	districts := svc.Districts(testCatalog(), "Ankara")
	assert.NotContains(t, districts, "Kadikoy")
}

func TestFacets_TypesSpanWholeCatalog(t *testing.T) {
	svc := NewFacetService()
	// Types are intentionally not narrowed by any other selection.
	assert.Equal(t, []string{"Gym", "Pool", "Tennis"}, svc.Types(testCatalog()))
}

func TestFacets_CardTypesFlattenedAndDeduplicated(t *testing.T) {
	svc := NewFacetService()
	assert.Equal(t, []string{"CardA", "CardB", "Tümü"}, svc.CardTypes(testCatalog()))
}

func TestFacets_Index(t *testing.T) {
	svc := NewFacetService()
	index := svc.Index(testCatalog(), "Istanbul")

	assert.Equal(t, []string{"Ankara", "Istanbul"}, index.Cities)
	assert.Equal(t, []string{"Besiktas", "Kadikoy", "Uskudar"}, index.Districts)
	assert.NotEmpty(t, index.Types)
	assert.NotEmpty(t, index.CardTypes)
}

func TestSelection_CityChangeResetsDistrict(t *testing.T) {
	selection := entities.FilterSelection{}
	selection.SelectCity("Istanbul")
	selection.District = "Kadikoy"

	selection.SelectCity("Ankara")
	assert.Equal(t, "Ankara", selection.City)
	assert.Empty(t, selection.District)

	// Re-selecting the same city keeps the district.
	selection.District = "Cankaya"
	selection.SelectCity("Ankara")
	assert.Equal(t, "Cankaya", selection.District)
}

func TestSelection_Reset(t *testing.T) {
	selection := entities.FilterSelection{City: "Istanbul", District: "Kadikoy", Type: "Pool", CardType: "CardA"}
	selection.Reset()
	assert.True(t, selection.IsEmpty())
}
