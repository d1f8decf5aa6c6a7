package entities

// FilterSelection holds the four optional facet selections. An empty string
// means the facet is unset and imposes no constraint.
type FilterSelection struct {
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Type     string `json:"type,omitempty"`
	CardType string `json:"card_type,omitempty"`
}

// SelectCity sets the city and clears the district whenever the city changes.
// A district is only meaningful under the city it was chosen for.
func (s *FilterSelection) SelectCity(city string) {
	if s.City != city {
		s.District = ""
	}
	s.City = city
}

// Reset clears all four selections.
func (s *FilterSelection) Reset() {
	*s = FilterSelection{}
}

// IsEmpty reports whether no facet is set.
func (s FilterSelection) IsEmpty() bool {
	return s == FilterSelection{}
}

// Matches reports whether the facility satisfies every set field of the
// selection. City, district and type require exact equality; the card type
// matches on membership or the AllCardTypes sentinel.
func (s FilterSelection) Matches(f *Facility) bool {
	if s.City != "" && f.City != s.City {
		return false
	}
	if s.District != "" && f.District != s.District {
		return false
	}
	if s.Type != "" && f.Type != s.Type {
		return false
	}
	if s.CardType != "" && !f.AcceptsCard(s.CardType) {
		return false
	}
	return true
}
