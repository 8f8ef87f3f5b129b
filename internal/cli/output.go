package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ohmtools/ohmoracle/internal/divider"
)

// Output format names accepted by --output.
const (
	outputFormatTable  = "table"
	outputFormatJSON   = "json"
	outputFormatNDJSON = "ndjson"
)

// Minimum column widths of the plain table, matching the historical layout.
const (
	parameterColumnWidth = 10
	valueColumnWidth     = 6
)

// renderResult dispatches on the output format. The table format switches
// between a styled box on terminals and a plain markdown table for pipes;
// plain forces the markdown table regardless.
func renderResult(w io.Writer, format string, plain bool, result divider.Result) error {
	switch format {
	case outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case outputFormatNDJSON:
		return json.NewEncoder(w).Encode(result)
	default:
		if !plain && isWriterTerminal(w) {
			return renderStyledResult(w, result)
		}
		return renderPlainResult(w, result)
	}
}

// isWriterTerminal reports whether w is an interactive terminal.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatFull renders a float with its full shortest round-trip decimal
// expansion, no rounding. Downstream consumers parse the plain table, so
// this formatting is a compatibility contract.
func formatFull(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderPlainResult writes the markdown result table:
//
//	| Parameter | Value   |
//	|-----------|---------|
//	| R1        | 33 ohms |
//	...
func renderPlainResult(w io.Writer, result divider.Result) error {
	rows := [][2]string{
		{"R1", formatFull(result.R1) + " ohms"},
		{"R2", formatFull(result.R2) + " ohms"},
		{"Vout", formatFull(result.Vout) + "V"},
		{"Error", formatFull(result.ErrorPercent) + "%"},
	}

	paramWidth := parameterColumnWidth
	valueWidth := valueColumnWidth
	for _, row := range rows {
		paramWidth = max(paramWidth, len(row[0]))
		valueWidth = max(valueWidth, len(row[1]))
	}
	valueWidth++

	if _, err := fmt.Fprintf(w, "| Parameter%s | Value%s |\n",
		pad(parameterColumnWidth, paramWidth), pad(valueColumnWidth, valueWidth)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "|-%s|-%s|\n",
		strings.Repeat("-", paramWidth), strings.Repeat("-", valueWidth)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "| %s%s| %s%s|\n",
			row[0], pad(len(row[0]), paramWidth), row[1], pad(len(row[1]), valueWidth)); err != nil {
			return err
		}
	}
	return nil
}

// pad returns the spaces needed to fill a cell of the given total width.
func pad(used, total int) string {
	if total <= used {
		return ""
	}
	return strings.Repeat(" ", total-used)
}

// Styles for the terminal rendering.
//
//nolint:gochecknoglobals // lipgloss styles are conventionally package-level
var (
	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	resultTitleStyle = lipgloss.NewStyle().Bold(true)
	resultLabelStyle = lipgloss.NewStyle().Faint(true).Width(7)
)

// renderStyledResult writes a boxed, human-oriented rendering for TTYs.
// Ohm values get digit grouping; voltages and the error are rounded for
// readability. Exact values stay on the plain path.
func renderStyledResult(w io.Writer, result divider.Result) error {
	p := message.NewPrinter(language.English)

	lines := []string{
		resultTitleStyle.Render("Voltage Divider"),
		"",
		resultLabelStyle.Render("R1") + formatOhms(p, result.R1),
		resultLabelStyle.Render("R2") + formatOhms(p, result.R2),
		resultLabelStyle.Render("Vout") + fmt.Sprintf("%.6f V", result.Vout),
		resultLabelStyle.Render("Error") + fmt.Sprintf("%.4f %%", result.ErrorPercent),
	}

	_, err := fmt.Fprintln(w, resultBoxStyle.Render(strings.Join(lines, "\n")))
	return err
}

// formatOhms renders a resistance with locale digit grouping.
func formatOhms(p *message.Printer, v float64) string {
	if v == math.Trunc(v) {
		return p.Sprintf("%.0f ohms", v)
	}
	return p.Sprintf("%.2f ohms", v)
}
