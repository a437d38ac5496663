package catalog

import "strings"

// Prioritize values accepted in buyer preferences. Anything else falls
// back to the base weight profile.
const (
	PrioritizeBudget   = "budget"
	PrioritizeDelivery = "delivery"
	PrioritizeQuality  = "quality"
)

// Preferences is the buyer's stated shopping intent. Every field is
// optional; nil/empty means "no opinion".
type Preferences struct {
	Budget             *float64 `json:"budget,omitempty"`
	MaxDeliveryDays    *int     `json:"delivery_days,omitempty"`
	Warmth             string   `json:"warmth,omitempty"`
	Colors             []string `json:"colors,omitempty"`
	Brands             []string `json:"brands,omitempty"`
	PreferredRetailers []string `json:"preferred_retailers,omitempty"`
	Prioritize         string   `json:"prioritize,omitempty"`
	ItemsNeeded        []string `json:"items_needed,omitempty"`
}

// WantsWarmth reports whether the buyer asked for a high-warmth kit,
// which unlocks the insulation and temperature-range spec bonuses.
func (p Preferences) WantsWarmth() bool {
	return p.Warmth == "extra warm" || p.Warmth == "very warm"
}

// PrefersRetailer reports set membership in the preferred-retailers list.
func (p Preferences) PrefersRetailer(retailer string) bool {
	if retailer == "" {
		return false
	}
	for _, r := range p.PreferredRetailers {
		if strings.EqualFold(r, retailer) {
			return true
		}
	}
	return false
}
