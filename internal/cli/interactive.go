package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ohmtools/ohmoracle/internal/catalog"
	"github.com/ohmtools/ohmoracle/internal/divider"
	"github.com/ohmtools/ohmoracle/internal/logging"
	"github.com/ohmtools/ohmoracle/internal/tui"
)

// executeInteractiveDivider runs the Bubble Tea explorer over the already
// built catalog. The TUI recalculates through a callback into the search
// engine; when it exits, the last successful result is printed in the
// selected output format.
func executeInteractiveDivider(cmd *cobra.Command, params DividerParams, cat catalog.Catalog) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	recalculateFn := func(vin, vout float64) (divider.Result, error) {
		return divider.Search(cat, vin, vout)
	}

	model := tui.NewDividerModel(ctx, params.Vin, params.Vout, recalculateFn)
	program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()), tea.WithInput(cmd.InOrStdin()))

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running interactive explorer: %w", err)
	}

	dividerModel, ok := finalModel.(*tui.DividerModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T", finalModel)
	}

	result := dividerModel.GetResult()
	if result == nil {
		log.Debug().Ctx(ctx).Msg("interactive session ended without a result")
		return nil
	}
	return renderResult(cmd.OutOrStdout(), params.Output, params.Plain, *result)
}
