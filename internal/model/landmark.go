package model

// Landmark categories recognized by the venue aggregator. Anything else in
// the catalog is ignored when building a response.
const (
	CategoryAttraction = "attraction"
	CategoryRestaurant = "restaurant"
)

// Landmark is a curated, hand-entered point of interest tied to a
// destination. Curated landmarks are authoritative over externally fetched
// venues of the same name.
type Landmark struct {
	ID            int64   `json:"id"`
	DestinationID string  `json:"destination_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
}
