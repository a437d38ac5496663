package scoring

import (
	"fmt"
	"strings"

	"github.com/basecamp-gear/outfitter/internal/catalog"
)

// Explain derives a short human-readable summary from a score breakdown.
// Phrases trigger independently off fixed thresholds, in priority order:
// price, delivery, specs, rating. When nothing triggers the product just
// "meets basic requirements".
func Explain(b Breakdown, p catalog.Product) string {
	var phrases []string

	switch {
	case b.Price >= 0.8:
		phrases = append(phrases, "excellent value for price")
	case b.Price >= 0.6:
		phrases = append(phrases, "good price point")
	case b.Price < 0.3:
		phrases = append(phrases, "over budget")
	}

	// Exact comparisons: 1.0 only occurs when delivery beats the deadline
	// by enough days, 0 only on a hard deadline miss.
	if b.Delivery == 1.0 {
		phrases = append(phrases, fmt.Sprintf("fast delivery (%d days)", p.DeliveryDays))
	} else if b.Delivery == 0 {
		phrases = append(phrases, "delivery too slow")
	}

	if b.Specs >= 0.8 {
		phrases = append(phrases, "excellent technical specs")
	} else if b.Specs >= 0.6 {
		phrases = append(phrases, "good quality specs")
	}

	if b.Rating >= 0.9 {
		phrases = append(phrases, "highly rated")
	}

	if len(phrases) == 0 {
		return "meets basic requirements"
	}
	return strings.Join(phrases, ", ")
}
