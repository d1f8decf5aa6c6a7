package entities

// AllCardTypes is the catalog's sentinel card label meaning every card type is accepted.
const AllCardTypes = "Tümü"

// DefaultFacilityType is assigned when a source record carries no activity group.
const DefaultFacilityType = "Diğer"

// Facility represents a venue in the catalog. Facilities are immutable after
// normalization; a catalog update is a full replacement.
type Facility struct {
	ID        string   `json:"id" db:"id"`
	Name      string   `json:"name" db:"name"`
	City      string   `json:"city" db:"city"`
	District  string   `json:"district" db:"district"`
	Type      string   `json:"type" db:"facility_type"`
	CardTypes []string `json:"card_types" db:"-"`
	Location  Location `json:"location" db:"-"`
	Address   string   `json:"address" db:"address"`
	Thumbnail string   `json:"thumbnail,omitempty" db:"thumbnail"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// AcceptsCard reports whether the facility accepts the given card type,
// either literally or through the AllCardTypes sentinel.
func (f *Facility) AcceptsCard(cardType string) bool {
	for _, c := range f.CardTypes {
		if c == cardType || c == AllCardTypes {
			return true
		}
	}
	return false
}

// FacilityWithDistance pairs a facility with its distance from the user in
// kilometers. DistanceKm is nil when no user position was known at ranking time.
type FacilityWithDistance struct {
	*Facility
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
