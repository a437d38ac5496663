package catalog

import (
	"encoding/json"
	"testing"
)

func TestWaterproofRatingUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
		mm   int
		ok   bool
	}{
		{"string form", `{"waterproof_rating":"20000"}`, "20000", 20000, true},
		{"number form", `{"waterproof_rating":20000}`, "20000", 20000, true},
		{"null", `{"waterproof_rating":null}`, "", 0, false},
		{"absent", `{}`, "", 0, false},
		{"non-numeric", `{"waterproof_rating":"waterproof"}`, "waterproof", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var specs Specs
			if err := json.Unmarshal([]byte(tt.body), &specs); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if string(specs.WaterproofRating) != tt.want {
				t.Errorf("rating: got %q, want %q", specs.WaterproofRating, tt.want)
			}
			mm, ok := specs.WaterproofRating.Millimetres()
			if ok != tt.ok || mm != tt.mm {
				t.Errorf("Millimetres: got (%d,%v), want (%d,%v)", mm, ok, tt.mm, tt.ok)
			}
		})
	}
}

func TestPreferencesWantsWarmth(t *testing.T) {
	tests := []struct {
		warmth string
		want   bool
	}{
		{"extra warm", true},
		{"very warm", true},
		{"warm", false},
		{"", false},
	}
	for _, tt := range tests {
		p := Preferences{Warmth: tt.warmth}
		if p.WantsWarmth() != tt.want {
			t.Errorf("WantsWarmth(%q): got %v, want %v", tt.warmth, p.WantsWarmth(), tt.want)
		}
	}
}

func TestPreferencesPrefersRetailer(t *testing.T) {
	p := Preferences{PreferredRetailers: []string{"REI", "Backcountry"}}
	if !p.PrefersRetailer("rei") {
		t.Error("retailer matching should be case-insensitive")
	}
	if p.PrefersRetailer("Amazon") {
		t.Error("unexpected match for Amazon")
	}
	if p.PrefersRetailer("") {
		t.Error("empty retailer should never match")
	}
}

func TestProductJSONRoundTrip(t *testing.T) {
	body := `{
		"name": "Beta AR Jacket",
		"category": "jacket",
		"color": "black",
		"retailer": "REI",
		"price": 400,
		"delivery_days": 3,
		"rating": 4.7,
		"specs": {"waterproof_rating": 28000, "insulation": "none", "material": "gore-tex"}
	}`
	var p Product
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Rating == nil || *p.Rating != 4.7 {
		t.Errorf("rating: got %v", p.Rating)
	}
	if p.Specs == nil {
		t.Fatal("expected specs")
	}
	if mm, ok := p.Specs.WaterproofRating.Millimetres(); !ok || mm != 28000 {
		t.Errorf("waterproof: got (%d,%v)", mm, ok)
	}
}
