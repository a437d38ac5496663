package scoring

import (
	"log/slog"

	"github.com/basecamp-gear/outfitter/internal/catalog"
)

// Breakdown is the per-criterion score vector for a product. Every value
// lies in [0,1] for well-formed input.
type Breakdown struct {
	Price      float64 `json:"priceScore"`
	Delivery   float64 `json:"deliveryScore"`
	Specs      float64 `json:"specsScore"`
	Preference float64 `json:"preferenceScore"`
	Rating     float64 `json:"ratingScore"`
}

// ScoredProduct is a catalog product annotated with its weighted total
// score, per-criterion breakdown, and a short human-readable explanation.
type ScoredProduct struct {
	catalog.Product
	Score       float64        `json:"score"`
	Breakdown   Breakdown      `json:"scoreBreakdown"`
	Explanation string         `json:"explanation"`
	Factors     []FactorResult `json:"factors,omitempty"`
	OnFrontier  bool           `json:"on_frontier,omitempty"`
}

// Scorer orchestrates the five-criterion weighted additive scoring engine.
// It holds no per-call state; a single Scorer is safe for concurrent use.
type Scorer struct {
	table  WeightTable
	logger *slog.Logger
}

// NewScorer creates a Scorer with the given weight table.
func NewScorer(table WeightTable, logger *slog.Logger) *Scorer {
	return &Scorer{table: table, logger: logger}
}

// ScoreProduct computes the full scoring result for one product against the
// buyer's preferences. It is a pure function of its inputs: missing optional
// fields degrade to the neutral 0.5, never an error.
func (s *Scorer) ScoreProduct(p catalog.Product, prefs catalog.Preferences) ScoredProduct {
	factors := []FactorResult{
		PriceFactor(p, prefs),
		DeliveryFactor(p, prefs),
		SpecsFactor(p, prefs),
		PreferenceFactor(p, prefs),
		RatingFactor(p, prefs),
	}

	weights := s.table.For(prefs.Prioritize)
	weightList := weights.asList()

	var total float64
	for i := range factors {
		factors[i].Weight = weightList[i]
		factors[i].Weighted = factors[i].Score * weightList[i]
		total += factors[i].Weighted
	}

	breakdown := Breakdown{
		Price:      factors[0].Score,
		Delivery:   factors[1].Score,
		Specs:      factors[2].Score,
		Preference: factors[3].Score,
		Rating:     factors[4].Score,
	}

	return ScoredProduct{
		Product:     p,
		Score:       total,
		Breakdown:   breakdown,
		Explanation: Explain(breakdown, p),
		Factors:     factors,
	}
}
