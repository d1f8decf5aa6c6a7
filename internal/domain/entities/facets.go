package entities

// FacetIndex holds the distinct selectable values for each filterable
// attribute. Districts depend on the selected city and are empty until a city
// is chosen; the other three sets always span the whole catalog.
type FacetIndex struct {
	Cities    []string `json:"cities"`
	Districts []string `json:"districts"`
	Types     []string `json:"types"`
	CardTypes []string `json:"card_types"`
}
