package services

import (
	"sort"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
)

// FacetService derives the distinct selectable values for each filter facet.
// Facets are derived from the whole catalog and are not narrowed by the other
// active selections; districts are the one facet that depends on another
// filter value (the selected city).
type FacetService struct{}

// NewFacetService creates a new facet service
func NewFacetService() *FacetService {
	return &FacetService{}
}

// Cities returns the distinct city values across the catalog.
func (s *FacetService) Cities(catalog []*entities.Facility) []string {
	return distinctSorted(catalog, func(f *entities.Facility) []string {
		return []string{f.City}
	})
}

// Districts returns the distinct district values among facilities in the
// selected city. It is empty until a city is chosen.
func (s *FacetService) Districts(catalog []*entities.Facility, city string) []string {
	if city == "" {
		return []string{}
	}
	return distinctSorted(catalog, func(f *entities.Facility) []string {
		if f.City != city {
			return nil
		}
		return []string{f.District}
	})
}

// Types returns the distinct facility type values across the catalog.
func (s *FacetService) Types(catalog []*entities.Facility) []string {
	return distinctSorted(catalog, func(f *entities.Facility) []string {
		return []string{f.Type}
	})
}

// CardTypes returns the union of every facility's accepted card types.
func (s *FacetService) CardTypes(catalog []*entities.Facility) []string {
	return distinctSorted(catalog, func(f *entities.Facility) []string {
		return f.CardTypes
	})
}

// Index derives all four facet sets for the given city selection.
func (s *FacetService) Index(catalog []*entities.Facility, city string) entities.FacetIndex {
	return entities.FacetIndex{
		Cities:    s.Cities(catalog),
		Districts: s.Districts(catalog, city),
		Types:     s.Types(catalog),
		CardTypes: s.CardTypes(catalog),
	}
}

func distinctSorted(catalog []*entities.Facility, values func(*entities.Facility) []string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, f := range catalog {
		for _, v := range values(f) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	sort.Strings(result)
	return result
}
