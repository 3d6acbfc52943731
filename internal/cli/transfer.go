package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/skydial/internal/catalog"
)

var (
	exportFormat  string
	exportOut     string
	importFormat  string
	importReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as JSON, YAML or TOML",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Read objects from a JSON, YAML or TOML file",
	Long: `Reads objects written by export. Records that fail validation are skipped.
By default imported objects are merged in and ids already in the catalog are kept;
--replace swaps the whole catalog for the file's contents.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "json, yaml or toml (default from --out extension, else json)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "json, yaml or toml (default from file extension)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "replace the catalog instead of merging")
	rootCmd.AddCommand(exportCmd, importCmd)
}

func resolveFormat(flag, path string) (catalog.Format, error) {
	if flag != "" {
		return catalog.ParseFormat(flag)
	}
	return catalog.FormatFromPath(path), nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := resolveFormat(exportFormat, exportOut)
	if err != nil {
		return err
	}
	e, err := setup(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	var out io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		out = f
	}
	entries := e.catalog.Entries()
	if err := catalog.Export(out, entries, format); err != nil {
		return err
	}
	if exportOut != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d objects to %s\n", len(entries), exportOut)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := resolveFormat(importFormat, path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	e, err := setup(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	imported, err := catalog.Import(f, format, e.logger)
	if err != nil {
		return err
	}

	next := imported
	added := len(imported)
	if !importReplace {
		next, added = merge(e.catalog.Entries(), imported)
	}
	if err := e.catalog.Replace(cmd.Context(), next); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d objects (%d total)\n", added, len(next))
	return nil
}

// merge appends imported entries whose ids are not already present.
func merge(existing, imported []catalog.Entry) ([]catalog.Entry, int) {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.ID] = true
	}
	out := append([]catalog.Entry(nil), existing...)
	added := 0
	for _, e := range imported {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
		added++
	}
	return out, added
}
