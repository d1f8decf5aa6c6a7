// Package catalog provides the static facility catalog source and the
// normalization of raw source records into Facility entities.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
	"github.com/sporkart/facility-discovery/internal/domain/repositories"
	apperrors "github.com/sporkart/facility-discovery/pkg/errors"
)

// RawRecord mirrors the catalog source contract. Field names belong to the
// upstream data source, not to this service.
type RawRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	City           string          `json:"city"`
	CityDistrict   string          `json:"cityDistrict"`
	ActivityGroups []ActivityGroup `json:"activityGroups"`
	Cards          []string        `json:"cards"`
	Lat            float64         `json:"lat"`
	Lng            float64         `json:"lng"`
	Address        string          `json:"address"`
	Thumbnail      string          `json:"thumbnail,omitempty"`
}

// ActivityGroup is a category label attached to a source record.
type ActivityGroup struct {
	Name string `json:"name"`
}

// Normalize maps a raw source record to a Facility. It never fails: a record
// without an activity group gets the placeholder type, a missing card list
// becomes an empty one, and a missing id is generated.
func Normalize(rec RawRecord) *entities.Facility {
	facilityType := entities.DefaultFacilityType
	if len(rec.ActivityGroups) > 0 && rec.ActivityGroups[0].Name != "" {
		facilityType = rec.ActivityGroups[0].Name
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	cards := rec.Cards
	if cards == nil {
		cards = []string{}
	}

	return &entities.Facility{
		ID:        id,
		Name:      rec.Name,
		City:      rec.City,
		District:  rec.CityDistrict,
		Type:      facilityType,
		CardTypes: cards,
		Location: entities.Location{
			Latitude:  rec.Lat,
			Longitude: rec.Lng,
		},
		Address:   rec.Address,
		Thumbnail: rec.Thumbnail,
	}
}

// StaticAdapter serves a catalog materialized once from raw source records.
type StaticAdapter struct {
	facilities []*entities.Facility
	byID       map[string]*entities.Facility
}

// NewStaticAdapter normalizes the given records into an immutable catalog.
func NewStaticAdapter(records []RawRecord) repositories.CatalogRepository {
	facilities := make([]*entities.Facility, 0, len(records))
	byID := make(map[string]*entities.Facility, len(records))
	for _, rec := range records {
		f := Normalize(rec)
		facilities = append(facilities, f)
		byID[f.ID] = f
	}
	return &StaticAdapter{facilities: facilities, byID: byID}
}

// NewStaticAdapterFromFile loads and normalizes a JSON catalog file.
func NewStaticAdapterFromFile(path string) (repositories.CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return NewStaticAdapter(records), nil
}

// List returns every facility in the catalog.
func (a *StaticAdapter) List(ctx context.Context) ([]*entities.Facility, error) {
	return a.facilities, nil
}

// GetByID retrieves a facility by ID
func (a *StaticAdapter) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	f, ok := a.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("facility with id %s not found", id))
	}
	return f, nil
}
