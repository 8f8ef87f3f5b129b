// Package divider finds the resistor pair whose voltage divider output is
// closest to a target. The search is a pure function of (catalog, vin,
// vout): exhaustive over all ordered pairs, deterministic, no shared state.
package divider

import (
	"fmt"
	"math"

	"github.com/ohmtools/ohmoracle/internal/catalog"
)

// Result is the winning resistor pair for a search. R1 is the top resistor
// (to vin), R2 the bottom (to ground); Vout is the computed divider output
// and ErrorPercent the absolute percent deviation from the target.
type Result struct {
	R1           float64 `json:"r1"`
	R2           float64 `json:"r2"`
	Vout         float64 `json:"vout"`
	ErrorPercent float64 `json:"errorPercent"`
}

// Vout computes the divider output vin × r2 / (r1 + r2).
func Vout(vin, r1, r2 float64) float64 {
	return vin * r2 / (r1 + r2)
}

// Search finds the pair (R1, R2), both drawn independently from cat with
// repetition allowed, minimizing |vout_computed − vout|.
//
// The catalog is normalized (sorted ascending, de-duplicated) before
// iteration; R1 advances in the outer loop and R2 in the inner, both
// ascending. A candidate replaces the running best only on strictly smaller
// deviation, so the first pair in iteration order wins ties. Identical
// inputs therefore always produce bit-identical results.
func Search(cat catalog.Catalog, vin, vout float64) (Result, error) {
	if err := validate(vin, vout); err != nil {
		return Result{}, err
	}

	values := cat.Normalize()
	if len(values) == 0 {
		return Result{}, ErrEmptyCatalog
	}

	best := Result{}
	bestDev := math.Inf(1)
	for _, r1 := range values {
		for _, r2 := range values {
			v := Vout(vin, r1, r2)
			dev := math.Abs(v - vout)
			if dev < bestDev {
				bestDev = dev
				best = Result{R1: r1, R2: r2, Vout: v}
			}
		}
	}

	best.ErrorPercent = bestDev / vout * 100
	return best, nil
}

// validate rejects inputs a plain resistive divider cannot realize.
func validate(vin, vout float64) error {
	if vin <= 0 || math.IsNaN(vin) || math.IsInf(vin, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidVin, vin)
	}
	if vout <= 0 || vout >= vin || math.IsNaN(vout) {
		return fmt.Errorf("%w: got vout=%v with vin=%v", ErrVoutOutOfRange, vout, vin)
	}
	return nil
}
