package scoring

import (
	"fmt"
	"math"

	"github.com/basecamp-gear/outfitter/internal/catalog"
)

// WeightSet defines the relative importance of each scoring criterion.
// The base set must sum to 1.0 (±0.001 tolerance); the priority profiles
// deliberately do not (see WeightTable).
type WeightSet struct {
	Price      float64
	Delivery   float64
	Specs      float64
	Preference float64
	Rating     float64
}

// DefaultWeights returns the base weight distribution used when the buyer
// sets no prioritize preference.
func DefaultWeights() WeightSet {
	return WeightSet{
		Price:      0.30,
		Delivery:   0.25,
		Specs:      0.25,
		Preference: 0.10,
		Rating:     0.10,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Price + w.Delivery + w.Specs + w.Preference + w.Rating
}

// Validate checks that weights sum to 1.0 and none are negative. Only the
// base set is validated; priority profiles are exempt by design.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

func (w WeightSet) asList() []float64 {
	return []float64{w.Price, w.Delivery, w.Specs, w.Preference, w.Rating}
}

// WeightTable maps a prioritize preference to the weight set that replaces
// the base set wholesale. The budget and delivery profiles sum to 1.05 and
// the quality profile to 0.95, so totals under those profiles can leave
// [0,1]. Kept un-renormalized for compatibility with the original model.
type WeightTable struct {
	Base     WeightSet
	Budget   WeightSet
	Delivery WeightSet
	Quality  WeightSet
}

// DefaultWeightTable returns the stock profiles.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		Base:     DefaultWeights(),
		Budget:   WeightSet{Price: 0.50, Delivery: 0.25, Specs: 0.20, Preference: 0.10, Rating: 0.10},
		Delivery: WeightSet{Price: 0.25, Delivery: 0.45, Specs: 0.25, Preference: 0.10, Rating: 0.10},
		Quality:  WeightSet{Price: 0.20, Delivery: 0.25, Specs: 0.40, Preference: 0.10, Rating: 0.20},
	}
}

// For selects the weight set for a prioritize preference. Unknown or empty
// values fall back to the base set.
func (t WeightTable) For(prioritize string) WeightSet {
	switch prioritize {
	case catalog.PrioritizeBudget:
		return t.Budget
	case catalog.PrioritizeDelivery:
		return t.Delivery
	case catalog.PrioritizeQuality:
		return t.Quality
	default:
		return t.Base
	}
}
