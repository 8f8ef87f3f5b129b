package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ohmtools/ohmoracle/internal/catalog"
	"github.com/ohmtools/ohmoracle/internal/config"
	"github.com/ohmtools/ohmoracle/internal/divider"
	"github.com/ohmtools/ohmoracle/internal/logging"
)

// DividerParams holds the parameters for the divider command execution.
// Exported for testing.
type DividerParams struct {
	Vin         float64
	Vout        float64
	Standard    string
	CSVPath     string
	Output      string
	Plain       bool
	Interactive bool
}

// NewDividerCmd creates the "divider" command, the main entry point: it
// builds a resistor catalog, runs the pair search, and renders the result.
func NewDividerCmd() *cobra.Command {
	var params DividerParams

	cmd := &cobra.Command{
		Use:   "divider",
		Short: "Find the resistor pair closest to a target output voltage",
		Long: `Search all resistor pairs (R1 to Vin, R2 to ground) drawn from a value
catalog and report the pair whose divider output Vin x R2 / (R1 + R2) is
closest to the requested Vout, along with the percent error.

The catalog comes from a standard E-series (default E6) expanded across
decades, or from a CSV file of values with optional K/M shorthand. A CSV
file takes priority over any --standard argument.`,
		Example: `  ohmoracle divider --vin 5 --vout 3.3
  ohmoracle divider -i 12 -o 5 -s E192
  ohmoracle divider -i 9 -o 3.3 -c drawer.csv --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeDivider(cmd, params)
		},
	}

	cmd.Flags().Float64VarP(&params.Vin, "vin", "i", 0, "input voltage in volts (required)")
	cmd.Flags().Float64VarP(&params.Vout, "vout", "o", 0, "target output voltage in volts (required)")
	cmd.Flags().StringVarP(&params.Standard, "standard", "s", "",
		"standard E-series catalog (E3, E6, E12, E24, E48, E96, E192)")
	cmd.Flags().StringVarP(&params.CSVPath, "csv", "c", "",
		"resistor value file, one value per line/field; overrides --standard")
	cmd.Flags().StringVar(&params.Output, "output", outputFormatTable, "output format (table, json, ndjson)")
	cmd.Flags().BoolVar(&params.Plain, "plain", false, "force the plain table even on a terminal")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "adjust vin/vout interactively")

	_ = cmd.MarkFlagRequired("vin")
	_ = cmd.MarkFlagRequired("vout")

	return cmd
}

// ValidateDividerParams rejects inputs before any search work happens.
// Exported for testing.
//
// Rules:
//   - vin must be a positive, finite voltage
//   - vout must lie strictly between 0 and vin
//   - output must be one of table, json, ndjson
func ValidateDividerParams(params *DividerParams) error {
	if params.Vin <= 0 || math.IsNaN(params.Vin) || math.IsInf(params.Vin, 0) {
		return fmt.Errorf("%w: --vin must be a positive voltage, got %v", ErrInvalidArgument, params.Vin)
	}
	if params.Vout <= 0 || math.IsNaN(params.Vout) {
		return fmt.Errorf("%w: --vout must be a positive voltage, got %v", ErrInvalidArgument, params.Vout)
	}
	if params.Vout >= params.Vin {
		return fmt.Errorf(
			"%w: --vout (%v) must be lower than --vin (%v); a resistive divider cannot reach or exceed its input",
			ErrInvalidArgument, params.Vout, params.Vin)
	}
	switch params.Output {
	case outputFormatTable, outputFormatJSON, outputFormatNDJSON:
	default:
		return fmt.Errorf("%w: --output must be table, json, or ndjson, got %q", ErrInvalidArgument, params.Output)
	}
	return nil
}

// executeDivider runs the divider workflow: validate, build the catalog,
// search, render.
func executeDivider(cmd *cobra.Command, params DividerParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := ValidateDividerParams(&params); err != nil {
		return err
	}

	cfg := configFromContext(ctx)
	cat, err := buildCatalog(cmd, cfg, params)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Float64("vin", params.Vin).
		Float64("vout", params.Vout).
		Int("catalog_size", len(cat)).
		Msg("starting divider search")

	if params.Interactive {
		return executeInteractiveDivider(cmd, params, cat)
	}

	result, err := divider.Search(cat, params.Vin, params.Vout)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Float64("r1", result.R1).
		Float64("r2", result.R2).
		Float64("error_percent", result.ErrorPercent).
		Msg("divider search complete")

	return renderResult(cmd.OutOrStdout(), params.Output, params.Plain, result)
}

// buildCatalog resolves the resistor value source. A CSV file wins over any
// series argument; with neither flag, the configured default series is used.
func buildCatalog(cmd *cobra.Command, cfg *config.Config, params DividerParams) (catalog.Catalog, error) {
	if params.CSVPath != "" {
		return catalog.LoadCSV(cmd.Context(), params.CSVPath)
	}

	name := params.Standard
	if name == "" {
		name = cfg.DefaultSeries
	}
	series, err := catalog.ParseSeries(name)
	if err != nil {
		return nil, err
	}
	return catalog.ForSeriesRange(series, cfg.Decades.Min, cfg.Decades.Max)
}
