package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/skydial/internal/editor"
)

var addFlags struct {
	name   string
	dec    string
	decMin string
	ha     string
	haMin  string
	haSec  string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an object observed now",
	Long: `Adds an object to the catalog. The hour angle is taken as observed at the
moment the command runs and advances from there.`,
	Example: `  skydial add --name Vega --dec 38 --dec-min 47 --ha 18 --ha-min 36 --ha-sec 56`,
	Args:    cobra.NoArgs,
	RunE:    runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVar(&addFlags.name, "name", "", "object name (required)")
	f.StringVar(&addFlags.dec, "dec", "0", "declination degrees, -90..90")
	f.StringVar(&addFlags.decMin, "dec-min", "0", "declination arc-minutes, 0..60")
	f.StringVar(&addFlags.ha, "ha", "0", "hour angle hours, 0..23")
	f.StringVar(&addFlags.haMin, "ha-min", "0", "hour angle minutes, 0..59")
	f.StringVar(&addFlags.haSec, "ha-sec", "0", "hour angle seconds, 0..59")
	_ = addCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	name, err := editor.ParseName(addFlags.name)
	if err != nil {
		return err
	}
	dec, err := editor.ParseDeclination(addFlags.dec, addFlags.decMin)
	if err != nil {
		return err
	}
	ha, err := editor.ParseHourAngle(addFlags.ha, addFlags.haMin, addFlags.haSec)
	if err != nil {
		return err
	}

	e, err := setup(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	d := editor.Draft{Name: name, Declination: dec, HourAngle: ha, Timestamp: clock.Now()}
	id, err := e.catalog.Add(cmd.Context(), editor.New(clock).Create(d))
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
