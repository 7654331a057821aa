package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flapper/internal/platform/tui"
	"github.com/vovakirdan/tui-flapper/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs.

In a terminal this opens an interactive table; --plain (or piping the
output) prints a text listing instead.

Examples:
  flapper scores
  flapper scores --plain --limit 5
  flapper scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list in plain mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printScores(os.Stdout, store, flagLimit)
	}
	width, height := terminalSize()
	return tui.RunScoreboard(store, width, height)
}

// printScores writes the plain-text listing.
func printScores(w io.Writer, history tui.HistoryReader, limit int) error {
	runs, err := history.TopRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Flapper")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flapper play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-10s  %-6s  %-7s  %s\n", "Rank", "Score", "Level", "Walls", "Enemies", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-10s  %-6s  %-7s  %s\n", "----", "-----", "-----", "-----", "-------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-10s  %-6d  %-7d  %s\n",
			i+1, r.Score, r.Level, r.WallsPassed, r.EnemiesAvoided, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := history.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}
