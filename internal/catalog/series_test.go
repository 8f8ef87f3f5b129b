package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeries(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Series
		wantErr bool
	}{
		{name: "exact", input: "E6", want: E6},
		{name: "lowercase", input: "e12", want: E12},
		{name: "mixed case with spaces", input: " e192 ", want: E192},
		{name: "unknown series", input: "E7", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "standard", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSeries(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownSeries)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSeriesMantissas(t *testing.T) {
	wantSizes := map[Series]int{
		E3: 3, E6: 6, E12: 12, E24: 24, E48: 48, E96: 96, E192: 192,
	}

	for _, s := range AllSeries {
		t.Run(string(s), func(t *testing.T) {
			m := s.Mantissas()
			require.Len(t, m, wantSizes[s])
			assert.Equal(t, wantSizes[s], s.Size())
			assert.True(t, sort.Float64sAreSorted(m), "mantissas must be ascending")
			for _, v := range m {
				assert.GreaterOrEqual(t, v, 1.0)
				assert.Less(t, v, 10.0)
			}
		})
	}
}

func TestForSeries(t *testing.T) {
	const decadeCount = DecadeMax - DecadeMin + 1

	for _, s := range AllSeries {
		t.Run(string(s), func(t *testing.T) {
			cat, err := ForSeries(s)
			require.NoError(t, err)
			assert.Len(t, cat, s.Size()*decadeCount)
			assert.True(t, sort.Float64sAreSorted(cat), "catalog must be ascending")
			for _, v := range cat {
				assert.Positive(t, v)
			}
			// Decade repetition introduces no duplicates.
			assert.Len(t, cat.Normalize(), len(cat))
		})
	}
}

func TestForSeriesE6Values(t *testing.T) {
	cat, err := ForSeries(E6)
	require.NoError(t, err)

	for _, want := range []float64{1, 2.2, 3.3, 4.7, 6.8, 10, 33, 68, 330, 680, 1_000_000} {
		assert.Contains(t, cat, want)
	}
}

func TestForSeriesRange(t *testing.T) {
	t.Run("single decade", func(t *testing.T) {
		cat, err := ForSeriesRange(E3, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, Catalog{100, 220, 470}, cat)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := ForSeriesRange(E6, 3, 1)
		assert.ErrorIs(t, err, ErrDecadeRange)
	})

	t.Run("unknown series", func(t *testing.T) {
		_, err := ForSeriesRange(Series("E7"), 0, 1)
		assert.ErrorIs(t, err, ErrUnknownSeries)
	})
}
