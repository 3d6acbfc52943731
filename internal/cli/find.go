package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/skydial/internal/tracker"
)

var findLimit int

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find objects by name, tolerating small typos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().IntVar(&findLimit, "limit", 10, "maximum matches to print (0 for all)")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	query := strings.Join(args, " ")
	matches := e.catalog.Snapshot().Find(query, findLimit)
	if len(matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No objects match %q.\n", query)
		return nil
	}
	return printReadings(cmd.OutOrStdout(), tracker.ComputeAll(matches, clock.Now(), e.mount()))
}
