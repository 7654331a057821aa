package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flapper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The first line names where it came from. Redirect the output to a file to
start a custom configuration.

Examples:
  flapper config
  flapper config > ~/.flapper/config.yaml
  flapper config --config ./my-flapper.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
