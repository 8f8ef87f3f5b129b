// Package catalog builds the candidate resistor value set for the divider
// search, either by expanding a standard E-series across decades or by
// parsing a user-supplied value file.
package catalog

import "sort"

// Catalog is an ordered set of resistor values in ohms. Values are always
// positive; sources that would introduce zero or negative values are
// rejected at parse time.
type Catalog []float64

// Normalize returns the catalog sorted ascending with duplicates removed.
// Search iteration order is defined over a normalized catalog, which keeps
// tie-breaking deterministic regardless of source order.
func (c Catalog) Normalize() Catalog {
	if len(c) == 0 {
		return Catalog{}
	}

	out := make(Catalog, len(c))
	copy(out, c)
	sort.Float64s(out)

	dedup := out[:1]
	for _, v := range out[1:] {
		if v != dedup[len(dedup)-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup
}
