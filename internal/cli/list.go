package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/skydial/internal/tracker"
)

var (
	listAt   string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the current dial reading for every object",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listAt, "at", "", "compute readings at this RFC 3339 time instead of now")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print readings as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	now := clock.Now()
	if listAt != "" {
		t, err := time.Parse(time.RFC3339, listAt)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		now = t
	}

	e, err := setup(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	readings := tracker.ComputeAll(e.catalog.Entries(), now, e.mount())
	if listJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(readings)
	}
	if len(readings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No objects. Add one with `skydial add` or `skydial seed`.")
		return nil
	}
	return printReadings(cmd.OutOrStdout(), readings)
}

func printReadings(out io.Writer, readings []tracker.Reading) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDECLINATION\tHOUR ANGLE\tDEC DIAL\tHA DIAL")
	for _, r := range readings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\n",
			r.EntryID, r.Name, r.Declination, r.HourAngle, r.DeclinationRotation, r.HourAngleRotation)
	}
	return w.Flush()
}
