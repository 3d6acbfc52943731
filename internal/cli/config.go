package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/skydial/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), configFile())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Long: `Writes the built-in defaults, with any SKYDIAL_ environment overrides applied,
to the config file. An existing file is only rewritten with --force, in which case
its values are kept.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "rewrite an existing config file")
	configCmd.AddCommand(configPathCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func configFile() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configFile()

	var (
		cfg config.Config
		err error
	)
	if _, statErr := os.Stat(path); statErr == nil {
		if !configInitForce {
			return fmt.Errorf("%s already exists (use --force to rewrite it)", path)
		}
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Defaults()
	}
	if err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
