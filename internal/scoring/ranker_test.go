package scoring

import (
	"testing"

	"github.com/basecamp-gear/outfitter/internal/catalog"
)

func TestRankProductsOrdering(t *testing.T) {
	s := testScorer()
	products := []catalog.Product{
		{Name: "Over Budget Jacket", Category: "jacket", Price: 500},
		{Name: "Near Budget Jacket", Category: "jacket", Price: 150},
		{Name: "Cheap Jacket", Category: "jacket", Price: 30},
	}
	prefs := catalog.Preferences{Budget: float64Ptr(200)}

	ranked := s.RankProducts(products, prefs)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 products, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("ranking not descending at %d: %f > %f", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
	if ranked[0].Name != "Near Budget Jacket" {
		t.Errorf("expected near-budget jacket first, got %s", ranked[0].Name)
	}
	if ranked[len(ranked)-1].Name != "Over Budget Jacket" {
		t.Errorf("expected over-budget jacket last, got %s", ranked[len(ranked)-1].Name)
	}
}

func TestRankProductsIdempotent(t *testing.T) {
	s := testScorer()
	products := []catalog.Product{
		{Name: "A", Category: "jacket", Price: 150, DeliveryDays: 3, Rating: float64Ptr(4.2)},
		{Name: "B", Category: "pants", Price: 90, DeliveryDays: 5},
		{Name: "C", Category: "gloves", Price: 40, DeliveryDays: 2, Rating: float64Ptr(3.9)},
	}
	prefs := catalog.Preferences{Budget: float64Ptr(200), MaxDeliveryDays: intPtr(7)}

	first := s.RankProducts(products, prefs)
	second := s.RankProducts(products, prefs)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || first[i].Score != second[i].Score {
			t.Errorf("position %d differs: %s %f vs %s %f",
				i, first[i].Name, first[i].Score, second[i].Name, second[i].Score)
		}
	}
}

func TestRankProductsTiesKeepInputOrder(t *testing.T) {
	s := testScorer()
	// Identical products score identically; stable sort keeps input order.
	products := []catalog.Product{
		{Name: "First", Category: "jacket", Price: 100},
		{Name: "Second", Category: "jacket", Price: 100},
		{Name: "Third", Category: "jacket", Price: 100},
	}

	ranked := s.RankProducts(products, catalog.Preferences{})

	for i, want := range []string{"First", "Second", "Third"} {
		if ranked[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, ranked[i].Name, want)
		}
	}
}

func TestRankProductsMonotonicPriceFit(t *testing.T) {
	// A product priced in the 70-99% band never ranks below an identical
	// one priced under 30% of budget.
	s := testScorer()
	nearBudget := catalog.Product{Name: "Near", Category: "jacket", Price: 160}
	tooCheap := catalog.Product{Name: "Cheap", Category: "jacket", Price: 20}
	prefs := catalog.Preferences{Budget: float64Ptr(200)}

	near := s.ScoreProduct(nearBudget, prefs)
	cheap := s.ScoreProduct(tooCheap, prefs)
	if near.Score < cheap.Score {
		t.Errorf("near-budget item scored %f below too-cheap item %f", near.Score, cheap.Score)
	}
}

func TestMarkFrontier(t *testing.T) {
	s := testScorer()
	products := []catalog.Product{
		// Dominates C: cheaper, faster, better rated.
		{Name: "A", Category: "jacket", Price: 100, DeliveryDays: 2, Rating: float64Ptr(4.8)},
		// On the frontier: pricier and lower rated than A, but fastest delivery.
		{Name: "B", Category: "jacket", Price: 120, DeliveryDays: 1, Rating: float64Ptr(4.0)},
		{Name: "C", Category: "jacket", Price: 150, DeliveryDays: 5, Rating: float64Ptr(4.0)},
	}
	ranked := s.RankProducts(products, catalog.Preferences{})
	MarkFrontier(ranked)

	byName := map[string]ScoredProduct{}
	for _, sp := range ranked {
		byName[sp.Name] = sp
	}
	if !byName["A"].OnFrontier {
		t.Error("A should be on the frontier")
	}
	if !byName["B"].OnFrontier {
		t.Error("B should be on the frontier (fastest delivery)")
	}
	if byName["C"].OnFrontier {
		t.Error("C is dominated by A and should not be on the frontier")
	}
}
