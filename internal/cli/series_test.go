package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohmtools/ohmoracle/internal/catalog"
)

func TestParseDecadeRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantMin int
		wantMax int
		wantErr bool
	}{
		{name: "empty uses defaults", spec: "", wantMin: catalog.DecadeMin, wantMax: catalog.DecadeMax},
		{name: "explicit range", spec: "1:3", wantMin: 1, wantMax: 3},
		{name: "spaces tolerated", spec: " 0 : 2 ", wantMin: 0, wantMax: 2},
		{name: "missing colon", spec: "12", wantErr: true},
		{name: "non-numeric min", spec: "a:3", wantErr: true},
		{name: "non-numeric max", spec: "0:b", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotMin, gotMax, err := parseDecadeRange(tc.spec)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMin, gotMin)
			assert.Equal(t, tc.wantMax, gotMax)
		})
	}
}

func TestSeriesListCommand(t *testing.T) {
	out, err := runRoot(t, "series", "list")
	require.NoError(t, err)

	for _, s := range catalog.AllSeries {
		assert.Contains(t, out, string(s))
	}
	assert.Contains(t, out, "192")
}

func TestSeriesShowCommand(t *testing.T) {
	t.Run("single decade", func(t *testing.T) {
		out, err := runRoot(t, "series", "show", "E3", "--decades", "2:2")
		require.NoError(t, err)
		assert.Equal(t, "100\n220\n470\n", out)
	})

	t.Run("full catalog length", func(t *testing.T) {
		out, err := runRoot(t, "series", "show", "E12")
		require.NoError(t, err)
		lines := strings.Fields(out)
		assert.Len(t, lines, catalog.E12.Size()*(catalog.DecadeMax-catalog.DecadeMin+1))
	})

	t.Run("unknown series", func(t *testing.T) {
		_, err := runRoot(t, "series", "show", "E5")
		assert.ErrorIs(t, err, catalog.ErrUnknownSeries)
	})

	t.Run("inverted decades", func(t *testing.T) {
		_, err := runRoot(t, "series", "show", "E6", "--decades", "4:1")
		assert.ErrorIs(t, err, catalog.ErrDecadeRange)
	})
}
