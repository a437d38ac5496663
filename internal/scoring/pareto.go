package scoring

// frontierDims extracts the dominance dimensions for a scored product.
// Price and delivery days are "lower is better"; specs and rating scores
// are "higher is better".
type frontierDims struct {
	price    float64
	delivery int
	specs    float64
	rating   float64
}

// MarkFrontier flags every product not dominated by another on the
// (price, delivery, specs, rating) axes. A product is dominated when some
// other product is at least as good on all four dimensions and strictly
// better on one. O(n^2) dominance check — fine for typical result sizes.
func MarkFrontier(ranked []ScoredProduct) {
	if len(ranked) == 0 {
		return
	}
	dims := make([]frontierDims, len(ranked))
	for i, sp := range ranked {
		dims[i] = frontierDims{
			price:    sp.Price,
			delivery: sp.DeliveryDays,
			specs:    sp.Breakdown.Specs,
			rating:   sp.Breakdown.Rating,
		}
	}
	for i := range ranked {
		dominated := false
		for j := range ranked {
			if i == j {
				continue
			}
			if dominates(dims[j], dims[i]) {
				dominated = true
				break
			}
		}
		ranked[i].OnFrontier = !dominated
	}
}

// dominates returns true if a dominates b.
func dominates(a, b frontierDims) bool {
	if a.price > b.price || a.delivery > b.delivery || a.specs < b.specs || a.rating < b.rating {
		return false
	}
	return a.price < b.price || a.delivery < b.delivery || a.specs > b.specs || a.rating > b.rating
}
