package scoring

import (
	"sort"

	"github.com/basecamp-gear/outfitter/internal/catalog"
)

// RankProducts scores every product against the preferences and returns the
// collection sorted by total score, highest first. The sort is stable, so
// products with equal scores keep their input order; ranking the same input
// twice yields identical output.
func (s *Scorer) RankProducts(products []catalog.Product, prefs catalog.Preferences) []ScoredProduct {
	ranked := make([]ScoredProduct, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, s.ScoreProduct(p, prefs))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
