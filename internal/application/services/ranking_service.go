package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
	"github.com/sporkart/facility-discovery/internal/geo"
)

// RankingService applies the active filter selection to the catalog and
// orders the surviving facilities. Rank is a pure function of its inputs:
// identical arguments always produce the same sequence.
type RankingService struct {
	nameOrder language.Tag
}

// NewRankingService creates a ranking service collating facility names in
// Turkish, the catalog's language.
func NewRankingService() *RankingService {
	return &RankingService{nameOrder: language.Turkish}
}

// Rank retains the facilities matching every set field of the selection, then
// orders them by ascending distance from the user when a position is known,
// attaching the computed kilometers to each entry. Without a position the
// result is ordered by collated name and carries no distances. Ties keep
// input order.
func (s *RankingService) Rank(catalog []*entities.Facility, selection entities.FilterSelection, user *entities.Location) []entities.FacilityWithDistance {
	results := make([]entities.FacilityWithDistance, 0, len(catalog))
	for _, f := range catalog {
		if !selection.Matches(f) {
			continue
		}
		entry := entities.FacilityWithDistance{Facility: f}
		if user != nil {
			d := geo.Distance(user.Latitude, user.Longitude, f.Location.Latitude, f.Location.Longitude)
			entry.DistanceKm = &d
		}
		results = append(results, entry)
	}

	if user != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	} else {
		// A collator keeps internal buffers, so build one per call rather
		// than sharing it across requests.
		col := collate.New(s.nameOrder)
		sort.SliceStable(results, func(i, j int) bool {
			return col.CompareString(results[i].Name, results[j].Name) < 0
		})
	}

	return results
}
