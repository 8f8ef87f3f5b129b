package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Series identifies an IEC 60063 preferred-value series. The set is closed:
// only the seven standard series are recognized.
type Series string

// Recognized E-series, named by the number of values per decade.
const (
	E3   Series = "E3"
	E6   Series = "E6"
	E12  Series = "E12"
	E24  Series = "E24"
	E48  Series = "E48"
	E96  Series = "E96"
	E192 Series = "E192"
)

// DefaultSeries is used when the caller specifies neither a series nor a
// value file.
const DefaultSeries = E6

// Supported decade range for series expansion: 1 ohm through the
// mega-ohm decade.
const (
	DecadeMin = 0
	DecadeMax = 6
)

// seriesMantissas maps each series to its base mantissa sequence, stored as
// mantissa × 100 so decade scaling stays exact integer arithmetic instead
// of accumulating float artifacts (2.2 × 100 would otherwise round to
// 220.00000000000003). Every mantissa lies in [1.0, 10.0).
//
//nolint:gochecknoglobals // fixed IEC 60063 tables
var seriesMantissas = map[Series][]int{
	E3: {
		100, 220, 470,
	},
	E6: {
		100, 150, 220, 330, 470, 680,
	},
	E12: {
		100, 120, 150, 180, 220, 270, 330, 390, 470, 560, 680, 820,
	},
	E24: {
		100, 110, 120, 130, 150, 160, 180, 200, 220, 240, 270, 300,
		330, 360, 390, 430, 470, 510, 560, 620, 680, 750, 820, 910,
	},
	E48: {
		100, 105, 110, 115, 121, 127, 133, 140, 147, 154, 162, 169,
		178, 187, 196, 205, 215, 226, 237, 249, 261, 274, 287, 301,
		316, 332, 348, 365, 383, 402, 422, 442, 464, 487, 511, 536,
		562, 590, 619, 649, 681, 715, 750, 787, 825, 866, 909, 953,
	},
	E96: {
		100, 102, 105, 107, 110, 113, 115, 118, 121, 124, 127, 130,
		133, 137, 140, 143, 147, 150, 154, 158, 162, 165, 169, 174,
		178, 182, 187, 191, 196, 200, 205, 210, 215, 221, 226, 232,
		237, 243, 249, 255, 261, 267, 274, 280, 287, 294, 301, 309,
		316, 324, 332, 340, 348, 357, 365, 374, 383, 392, 402, 412,
		422, 432, 442, 453, 464, 475, 487, 499, 511, 523, 536, 549,
		562, 576, 590, 604, 619, 634, 649, 665, 681, 698, 715, 732,
		750, 768, 787, 806, 825, 845, 866, 887, 909, 931, 953, 976,
	},
	E192: {
		100, 101, 102, 104, 105, 106, 107, 109, 110, 111, 113, 114,
		115, 117, 118, 120, 121, 123, 124, 126, 127, 129, 130, 132,
		133, 135, 137, 138, 140, 142, 143, 145, 147, 149, 150, 152,
		154, 156, 158, 160, 162, 164, 165, 167, 169, 172, 174, 176,
		178, 180, 182, 184, 187, 189, 191, 193, 196, 198, 200, 203,
		205, 208, 210, 213, 215, 218, 221, 223, 226, 229, 232, 234,
		237, 240, 243, 246, 249, 252, 255, 258, 261, 264, 267, 271,
		274, 277, 280, 284, 287, 291, 294, 298, 301, 305, 309, 312,
		316, 320, 324, 328, 332, 336, 340, 344, 348, 352, 357, 361,
		365, 370, 374, 379, 383, 388, 392, 397, 402, 407, 412, 417,
		422, 427, 432, 437, 442, 448, 453, 459, 464, 470, 475, 481,
		487, 493, 499, 505, 511, 517, 523, 530, 536, 542, 549, 556,
		562, 569, 576, 583, 590, 597, 604, 612, 619, 626, 634, 642,
		649, 657, 665, 673, 681, 690, 698, 706, 715, 723, 732, 741,
		750, 759, 768, 777, 787, 796, 806, 816, 825, 835, 845, 856,
		866, 876, 887, 898, 909, 920, 931, 942, 953, 965, 976, 988,
	},
}

// AllSeries lists the recognized series from coarsest to finest.
//
//nolint:gochecknoglobals // fixed ordering for listings and docs
var AllSeries = []Series{E3, E6, E12, E24, E48, E96, E192}

// ParseSeries resolves a series name case-insensitively.
// Unknown names return ErrUnknownSeries.
func ParseSeries(name string) (Series, error) {
	s := Series(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := seriesMantissas[s]; !ok {
		return "", fmt.Errorf("%w: %q is not one of E3, E6, E12, E24, E48, E96, E192", ErrUnknownSeries, name)
	}
	return s, nil
}

// Mantissas returns the base mantissa sequence for s in [1.0, 10.0), or nil
// for an unrecognized series.
func (s Series) Mantissas() []float64 {
	centi := seriesMantissas[s]
	if centi == nil {
		return nil
	}
	out := make([]float64, len(centi))
	for i, c := range centi {
		out[i] = scaleCenti(c, 0)
	}
	return out
}

// Size returns the number of values per decade for s.
func (s Series) Size() int {
	return len(seriesMantissas[s])
}

// ForSeries expands s across the supported decade range (DecadeMin through
// DecadeMax) into a catalog of standard resistor values, ascending.
func ForSeries(s Series) (Catalog, error) {
	return ForSeriesRange(s, DecadeMin, DecadeMax)
}

// ForSeriesRange expands s across decades [minDecade, maxDecade], emitting
// mantissa × 10^d for every mantissa and decade. The result is ascending
// because mantissas are ascending within [1, 10).
func ForSeriesRange(s Series, minDecade, maxDecade int) (Catalog, error) {
	centi, ok := seriesMantissas[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, string(s))
	}
	if minDecade > maxDecade {
		return nil, fmt.Errorf("%w: min decade %d exceeds max decade %d", ErrDecadeRange, minDecade, maxDecade)
	}

	cat := make(Catalog, 0, len(centi)*(maxDecade-minDecade+1))
	for d := minDecade; d <= maxDecade; d++ {
		for _, c := range centi {
			cat = append(cat, scaleCenti(c, d))
		}
	}
	return cat, nil
}

// scaleCenti computes (centi / 100) × 10^decade. Multiplication stays in
// exact integers for decade >= 2; below that, a single correctly-rounded
// division yields the same float64 as the decimal literal would.
func scaleCenti(centi, decade int) float64 {
	if decade >= 2 {
		return float64(centi) * math.Pow10(decade-2)
	}
	return float64(centi) / math.Pow10(2-decade)
}
