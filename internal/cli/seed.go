package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/skydial/internal/testdata"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add a few well-known stars to an empty catalog",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	n, err := testdata.Seed(cmd.Context(), e.catalog, clock.Now())
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if n == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Catalog is not empty; nothing seeded.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d objects\n", n)
	return nil
}
