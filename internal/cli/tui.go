package cli

import (
	"github.com/spf13/cobra"

	"github.com/jask/skydial/internal/editor"
	"github.com/jask/skydial/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dial display",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := setup(ctx, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	return tui.Run(ctx, tui.Deps{
		Catalog: e.catalog,
		Editor:  editor.New(clock),
		Clock:   clock,
		Mount:   e.mount(),
		Refresh: e.cfg.Display.RefreshInterval,
		Logger:  e.logger,
	})
}
