package scoring

import (
	"fmt"
	"strings"

	"github.com/basecamp-gear/outfitter/internal/catalog"
)

// FactorResult captures one criterion's contribution to the total score.
type FactorResult struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Weight    float64 `json:"weight"`
	Weighted  float64 `json:"weighted"`
	Available bool    `json:"available"`
	Reason    string  `json:"reason"`
}

// neutralScore is assigned when a criterion cannot be evaluated because
// the buyer gave no preference or the product carries no data for it.
const neutralScore = 0.5

// --- Individual criterion calculators ---

// PriceFactor scores how well the product's price fits the budget.
// Over-budget items lose 1/50th of the score per percent over; reaching
// zero once 50% over. Under budget, near-full utilization scores best and
// suspiciously cheap items are discounted.
func PriceFactor(p catalog.Product, prefs catalog.Preferences) FactorResult {
	if prefs.Budget == nil {
		return FactorResult{Name: "price", Score: neutralScore, Available: false, Reason: "no budget set"}
	}
	budget := *prefs.Budget
	if p.Price > budget {
		overPct := (p.Price - budget) / budget * 100
		score := 1 - overPct/50
		if score < 0 {
			score = 0
		}
		return FactorResult{Name: "price", Score: score, Available: true, Reason: fmt.Sprintf("%.0f%% over budget", overPct)}
	}
	pct := p.Price / budget * 100
	switch {
	case pct < 30:
		return FactorResult{Name: "price", Score: 0.6, Available: true, Reason: "suspiciously cheap"}
	case pct < 70:
		return FactorResult{Name: "price", Score: 0.9, Available: true, Reason: "good value"}
	default:
		return FactorResult{Name: "price", Score: 1.0, Available: true, Reason: "near budget"}
	}
}

// DeliveryFactor scores delivery speed against the buyer's deadline.
// The deadline is a hard constraint: any overage scores zero. Meeting it
// exactly scores 0.6 and every day earlier adds 0.1, capped at 1.
func DeliveryFactor(p catalog.Product, prefs catalog.Preferences) FactorResult {
	if prefs.MaxDeliveryDays == nil {
		return FactorResult{Name: "delivery", Score: neutralScore, Available: false, Reason: "no deadline set"}
	}
	maxDays := *prefs.MaxDeliveryDays
	if p.DeliveryDays > maxDays {
		return FactorResult{Name: "delivery", Score: 0, Available: true, Reason: "misses deadline"}
	}
	score := 0.6 + 0.1*float64(maxDays-p.DeliveryDays)
	if score > 1 {
		score = 1
	}
	return FactorResult{Name: "delivery", Score: score, Available: true, Reason: "within deadline"}
}

// SpecsFactor credits technical attributes on top of a 0.5 base: the
// highest matching waterproof tier, warmth-driven insulation and
// temperature-range bonuses, and merino base layers.
func SpecsFactor(p catalog.Product, prefs catalog.Preferences) FactorResult {
	if p.Specs == nil {
		return FactorResult{Name: "specs", Score: neutralScore, Available: false, Reason: "no specs data"}
	}

	score := 0.5
	var credits []string

	if mm, ok := p.Specs.WaterproofRating.Millimetres(); ok {
		switch {
		case mm >= 20000:
			score += 0.20
			credits = append(credits, "waterproof 20k+")
		case mm >= 15000:
			score += 0.15
			credits = append(credits, "waterproof 15k+")
		case mm >= 10000:
			score += 0.10
			credits = append(credits, "waterproof 10k+")
		case mm > 0:
			score += 0.05
			credits = append(credits, "waterproof")
		}
	}

	if prefs.WantsWarmth() {
		if p.Specs.Insulation != "" && !strings.EqualFold(p.Specs.Insulation, "none") {
			score += 0.15
			credits = append(credits, "insulated")
		}
		if strings.Contains(p.Specs.TemperatureRange, "-20") {
			score += 0.10
			credits = append(credits, "rated to -20")
		}
	}

	if p.Category == "base_layer" && strings.Contains(strings.ToLower(p.Specs.Material), "merino") {
		score += 0.10
		credits = append(credits, "merino")
	}

	score = clamp(score, 0, 1)

	reason := "no spec bonuses"
	if len(credits) > 0 {
		reason = strings.Join(credits, ", ")
	}
	return FactorResult{Name: "specs", Score: score, Available: true, Reason: reason}
}

// PreferenceFactor credits fuzzy matches against the buyer's stated style
// preferences. Color and brand use case-insensitive substring containment
// rather than exact matching; all three bonuses stack independently.
func PreferenceFactor(p catalog.Product, prefs catalog.Preferences) FactorResult {
	score := 0.5
	var matches []string

	color := strings.ToLower(p.Color)
	for _, c := range prefs.Colors {
		if c != "" && strings.Contains(color, strings.ToLower(c)) {
			score += 0.2
			matches = append(matches, "color")
			break
		}
	}

	name := strings.ToLower(p.Name)
	for _, b := range prefs.Brands {
		if b != "" && strings.Contains(name, strings.ToLower(b)) {
			score += 0.15
			matches = append(matches, "brand")
			break
		}
	}

	if prefs.PrefersRetailer(p.Retailer) {
		score += 0.15
		matches = append(matches, "retailer")
	}

	score = clamp(score, 0, 1)

	available := len(prefs.Colors) > 0 || len(prefs.Brands) > 0 || len(prefs.PreferredRetailers) > 0
	reason := "no style preferences"
	if len(matches) > 0 {
		reason = "matched " + strings.Join(matches, ", ")
	} else if available {
		reason = "no preference match"
	}
	return FactorResult{Name: "preference", Score: score, Available: available, Reason: reason}
}

// RatingFactor normalizes the customer rating from a 5-point scale. Ratings
// above 5 are a feed defect and pass through unclamped.
func RatingFactor(p catalog.Product, _ catalog.Preferences) FactorResult {
	if p.Rating == nil {
		return FactorResult{Name: "rating", Score: neutralScore, Available: false, Reason: "no rating"}
	}
	return FactorResult{Name: "rating", Score: *p.Rating / 5, Available: true, Reason: "from customer ratings"}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
