package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ohmtools/ohmoracle/internal/catalog"
)

// newSeriesCmd creates the series command group for inspecting the
// standard value catalogs.
func newSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "series", Short: "Inspect standard E-series value catalogs"}
	cmd.AddCommand(newSeriesListCmd(), newSeriesShowCmd())
	return cmd
}

// newSeriesListCmd creates "series list": a table of the recognized
// E-series with their per-decade sizes and full catalog lengths.
func newSeriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the recognized E-series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			const tabPadding = 2
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)

			fmt.Fprintln(w, "Series\tValues/decade\tCatalog size")
			fmt.Fprintln(w, "------\t-------------\t------------")
			for _, s := range catalog.AllSeries {
				cat, err := catalog.ForSeries(s)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\n", s, s.Size(), len(cat))
			}
			return w.Flush()
		},
	}
}

// newSeriesShowCmd creates "series show <name>": the generated catalog for
// one series, one value per line, ascending.
func newSeriesShowCmd() *cobra.Command {
	var decades string

	cmd := &cobra.Command{
		Use:   "show <series>",
		Short: "Print the generated catalog for a series",
		Example: `  ohmoracle series show E6
  ohmoracle series show E12 --decades 1:3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := catalog.ParseSeries(args[0])
			if err != nil {
				return err
			}

			minDecade, maxDecade, err := parseDecadeRange(decades)
			if err != nil {
				return err
			}

			cat, err := catalog.ForSeriesRange(series, minDecade, maxDecade)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range cat {
				fmt.Fprintln(out, strconv.FormatFloat(v, 'f', -1, 64))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&decades, "decades", "",
		fmt.Sprintf("decade range as min:max (default %d:%d)", catalog.DecadeMin, catalog.DecadeMax))

	return cmd
}

// parseDecadeRange parses a "min:max" decade specifier; empty selects the
// supported default range.
func parseDecadeRange(spec string) (int, int, error) {
	if spec == "" {
		return catalog.DecadeMin, catalog.DecadeMax, nil
	}

	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: --decades must be min:max, got %q", ErrInvalidArgument, spec)
	}
	minDecade, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad decade %q in --decades", ErrInvalidArgument, parts[0])
	}
	maxDecade, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad decade %q in --decades", ErrInvalidArgument, parts[1])
	}
	return minDecade, maxDecade, nil
}
