package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohmtools/ohmoracle/internal/divider"
)

// exampleResult is the documented 5 V to 3.3 V E6 outcome.
func exampleResult() divider.Result {
	vout := divider.Vout(5, 33, 68)
	return divider.Result{
		R1:           33,
		R2:           68,
		Vout:         vout,
		ErrorPercent: (vout - 3.3) / 3.3 * 100,
	}
}

func TestRenderPlainResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPlainResult(&buf, exampleResult()))

	want := `| Parameter | Value              |
|-----------|--------------------|
| R1        | 33 ohms            |
| R2        | 68 ohms            |
| Vout      | 3.366336633663366V |
| Error     | 2.010201020102012% |
`
	assert.Equal(t, want, buf.String())
}

func TestRenderPlainResultWidensForLongValues(t *testing.T) {
	var buf bytes.Buffer
	result := divider.Result{R1: 330000, R2: 680000, Vout: 3.366336633663366, ErrorPercent: 2.010201020102012}
	require.NoError(t, renderPlainResult(&buf, result))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Len(t, line, len(lines[0]), "all rows must share the header width")
	}
	assert.Contains(t, buf.String(), "| 330000 ohms")
}

func TestRenderResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResult(&buf, outputFormatJSON, false, exampleResult()))

	var decoded divider.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, exampleResult(), decoded)
}

func TestRenderResultNDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResult(&buf, outputFormatNDJSON, false, exampleResult()))

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "ndjson is one line per result")
}

func TestRenderResultTableOnBufferIsPlain(t *testing.T) {
	// A bytes.Buffer is not a terminal, so the table format must fall back
	// to the plain parse-friendly layout.
	var buf bytes.Buffer
	require.NoError(t, renderResult(&buf, outputFormatTable, false, exampleResult()))

	assert.True(t, strings.HasPrefix(buf.String(), "| Parameter"))
}

func TestFormatFull(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer valued", in: 33, want: "33"},
		{name: "fractional", in: 4.7, want: "4.7"},
		{name: "full expansion kept", in: 3.366336633663366, want: "3.366336633663366"},
		{name: "large", in: 1_000_000, want: "1000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatFull(tc.in))
		})
	}
}
