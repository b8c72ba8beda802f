package model

// AddressUnavailable is the sentinel used when an externally fetched place
// carries no street address. It is matched case-insensitively when deriving
// a maps link.
const AddressUnavailable = "Address not available"

// Venue is the union shape of a curated landmark and an externally fetched
// place. Venues are constructed per request and never persisted; MapsURL is
// derived at response time.
type Venue struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	MapsURL string  `json:"maps_url,omitempty"`
}

// VenueCollection partitions venues into the two fixed response categories.
// Within a category no two venues share a case-insensitive name; curated
// entries win ties.
type VenueCollection struct {
	Attractions []Venue `json:"attractions"`
	Restaurants []Venue `json:"restaurants"`
}
