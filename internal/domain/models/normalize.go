package models

import "math"

// NormalizeQuantity rounds a raw quantity to whole units and clamps it at zero.
// Non-finite input collapses to zero.
func NormalizeQuantity(value float64) int {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return int(math.Round(value))
}

// NormalizePrice sanitizes an optional price: absent, non-finite or non-positive
// values are treated as "no price", everything else is rounded to whole pesos.
func NormalizePrice(value *float64) *int {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) || *value <= 0 {
		return nil
	}
	rounded := int(math.Round(*value))
	if rounded <= 0 {
		return nil
	}
	return &rounded
}
