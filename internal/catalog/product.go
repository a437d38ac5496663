package catalog

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Product is a single catalog entry. Optional attributes use pointers;
// nil means the retailer feed didn't supply the value.
type Product struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Color        string    `json:"color,omitempty"`
	Retailer     string    `json:"retailer,omitempty"`
	Price        float64   `json:"price"`
	DeliveryDays int       `json:"delivery_days"`
	Rating       *float64  `json:"rating,omitempty"`
	Specs        *Specs    `json:"specs,omitempty"`
}

// Specs carries the technical attributes retailer feeds attach to gear.
// All fields are optional.
type Specs struct {
	WaterproofRating WaterproofRating `json:"waterproof_rating,omitempty"`
	Insulation       string           `json:"insulation,omitempty"`
	TemperatureRange string           `json:"temperature_range,omitempty"`
	Material         string           `json:"material,omitempty"`
}

// WaterproofRating is a millimetre rating that feeds send either as a JSON
// number (20000) or a string ("20000"). Stored as its textual form.
type WaterproofRating string

func (r *WaterproofRating) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "null" {
		s = ""
	}
	*r = WaterproofRating(s)
	return nil
}

// Millimetres parses the rating as an integer. Returns false when the
// rating is absent or not numeric.
func (r WaterproofRating) Millimetres() (int, bool) {
	if r == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(r)))
	if err != nil {
		return 0, false
	}
	return n, true
}
