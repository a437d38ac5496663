// Package outfit assembles a complete kit from ranked products: at most one
// item per required category under a shared budget.
package outfit

import (
	"github.com/basecamp-gear/outfitter/internal/catalog"
	"github.com/basecamp-gear/outfitter/internal/scoring"
)

// DefaultCategories is the kit assembled when the buyer doesn't say what
// they need.
var DefaultCategories = []string{"jacket", "pants", "base_layer", "gloves", "goggles"}

// Result is the assembled outfit: selected items, their combined cost, and
// which required categories could not be filled.
type Result struct {
	Items             []scoring.ScoredProduct `json:"items"`
	TotalCost         float64                 `json:"totalCost"`
	WithinBudget      bool                    `json:"withinBudget"`
	Categories        []string                `json:"categories"`
	MissingCategories []string                `json:"missingCategories"`
}

// Selector picks one product per required category from a ranked list.
// Implementations must treat the input as already sorted by score
// descending. Pluggable so a globally-optimal assignment can replace the
// greedy default without changing callers.
type Selector interface {
	Select(ranked []scoring.ScoredProduct, prefs catalog.Preferences) Result
}

// GreedySelector fills categories in their listed order, taking the
// highest-scored item still affordable under the remaining budget. It never
// backtracks: a pricey early pick can leave a later category unfillable
// even when a cheaper combination exists. Deliberate simplicity/speed
// tradeoff.
type GreedySelector struct {
	defaultCategories []string
}

// NewGreedySelector creates the default selector. An empty categories list
// falls back to DefaultCategories.
func NewGreedySelector(categories []string) *GreedySelector {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &GreedySelector{defaultCategories: categories}
}

func (g *GreedySelector) Select(ranked []scoring.ScoredProduct, prefs catalog.Preferences) Result {
	required := prefs.ItemsNeeded
	if len(required) == 0 {
		required = g.defaultCategories
	}

	// Partition by category; each bucket keeps the ranked order.
	byCategory := make(map[string][]scoring.ScoredProduct)
	for _, sp := range ranked {
		byCategory[sp.Category] = append(byCategory[sp.Category], sp)
	}

	result := Result{
		Items:             []scoring.ScoredProduct{},
		Categories:        []string{},
		MissingCategories: []string{},
	}

	for _, category := range required {
		picked := false
		for _, sp := range byCategory[category] {
			if prefs.Budget != nil && sp.Price > *prefs.Budget-result.TotalCost {
				continue
			}
			result.Items = append(result.Items, sp)
			result.TotalCost += sp.Price
			result.Categories = append(result.Categories, category)
			picked = true
			break
		}
		if !picked {
			result.MissingCategories = append(result.MissingCategories, category)
		}
	}

	// Holds by construction; recorded as a sanity check for callers.
	result.WithinBudget = prefs.Budget == nil || result.TotalCost <= *prefs.Budget
	return result
}
