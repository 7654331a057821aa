// flapper is a terminal arcade game: fly through the gaps in scrolling walls
// and dodge the enemies chasing you.
//
// Usage:
//
//	flapper play             - Play in this terminal
//	flapper menu             - Pick a level, play, repeat
//	flapper serve            - Start SSH server for remote play
//	flapper scores           - Show the run history
//	flapper config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML (default search: ~/.flapper, ./configs, built-in)
//	--db <path>        - Run history database (default: ~/.flapper/runs.db)
//	--log-file <path>  - Write logs to a file while the game owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapper",
	Short: "Flapper - fly through the gaps in your terminal",
	Long: `Flapper is a terminal arcade game. Flap to stay in the air, pass
through the gaps in the walls and avoid the enemies flying at you.

Available commands:
  play     - Play a game directly
  menu     - Pick a level from a menu
  serve    - Start SSH server for remote play
  scores   - View the run history
  config   - Print the effective configuration

Examples:
  flapper play
  flapper play --level hard --seed 42
  flapper menu
  flapper serve --ssh :2222
  flapper scores --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapper/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
