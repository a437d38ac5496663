package store

import (
	"testing"
)

func TestProductFilterDefaults(t *testing.T) {
	f := ProductFilter{}
	if f.Category != "" {
		t.Error("expected empty category filter")
	}
	if f.MaxPrice != 0 {
		t.Errorf("expected 0 default max price, got %f", f.MaxPrice)
	}
	if f.Limit != 0 {
		t.Errorf("expected 0 default limit, got %d", f.Limit)
	}
}

func TestCatalogStatsZeroValue(t *testing.T) {
	s := CatalogStats{ByCategory: map[string]int{}}
	if s.TotalProducts != 0 {
		t.Error("expected zero products")
	}
	if len(s.ByCategory) != 0 {
		t.Error("expected empty category map")
	}
}
