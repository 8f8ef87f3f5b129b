package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shorthand multipliers accepted after a resistor value, case-insensitive.
const (
	kiloMultiplier = 1_000
	megaMultiplier = 1_000_000
)

// ParseValue converts a resistor value token to ohms. Tokens are decimal
// literals with an optional case-insensitive K (×1,000) or M (×1,000,000)
// suffix: "330" → 330, "4.7K" → 4700, "1m" → 1e6.
//
// Tokens that do not parse, or that yield a non-positive or non-finite
// value, return ErrCatalogParse naming the offending token.
func ParseValue(token string) (float64, error) {
	tok := strings.ToUpper(strings.TrimSpace(token))

	multiplier := 1.0
	switch {
	case strings.HasSuffix(tok, "K"):
		multiplier = kiloMultiplier
		tok = strings.TrimSuffix(tok, "K")
	case strings.HasSuffix(tok, "M"):
		multiplier = megaMultiplier
		tok = strings.TrimSuffix(tok, "M")
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: %q is not a number with an optional K or M suffix", ErrCatalogParse, token)
	}

	v *= multiplier
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q must be a positive, finite resistance", ErrCatalogParse, token)
	}
	return v, nil
}
