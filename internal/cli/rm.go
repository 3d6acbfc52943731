package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove an object by id",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	entry, ok := e.catalog.Snapshot().Lookup(args[0])
	if !ok {
		return fmt.Errorf("no object with id %q", args[0])
	}
	if err := e.catalog.Remove(cmd.Context(), entry.ID); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s (%s)\n", entry.Name, entry.ID)
	return nil
}
