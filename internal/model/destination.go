package model

// Cost tier values stored in the destinations catalog. "any" is a search
// wildcard, never a stored value.
const (
	CostTierBudget   = "budget"
	CostTierMidRange = "mid-range"
	CostTierLuxury   = "luxury"
	CostTierAny      = "any"
)

// Destination is a curated travel destination from the catalog.
//
// Tags is a flat comma-joined keyword bag (e.g. "beach,party,domestic,solo"),
// not a normalized tag set; searches match it by substring.
type Destination struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	Tags        string  `json:"tags"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CostTier    string  `json:"cost_tier"`
}

// IsValidCostTier reports whether v is a recognized stored cost tier.
func IsValidCostTier(v string) bool {
	switch v {
	case CostTierBudget, CostTierMidRange, CostTierLuxury:
		return true
	}
	return false
}
