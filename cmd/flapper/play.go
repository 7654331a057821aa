package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flapper/internal/platform/tui"
)

var (
	flagLevel    string
	flagFPS      int
	flagSeed     int64
	flagBestFile string
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing in this terminal.

Controls:
  Space/Up/W/Enter/Click  - Start, flap, restart
  M                       - Toggle sound
  Ctrl+S                  - Save a text screenshot
  Q/Ctrl+C                - Quit

Levels come from the configuration (default: Easy, Normal, Hard) and can be
picked by name or number.

Examples:
  flapper play
  flapper play --level hard
  flapper play --level 2 --fps 30
  flapper play --seed 42 --mute
  flapper play --config ./my-flapper.yaml --log-file flapper.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Starting level name or number")
}

// addPlayFlags registers the flags shared by play and menu.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().StringVar(&flagBestFile, "best-file", "", "Best score file (default from config)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Game.FPS = flagFPS
	}

	best, err := openBest(cfg, flagBestFile)
	if err != nil {
		return err
	}
	game, err := newSession(cfg, flagLevel, flagSeed, best, logger)
	if err != nil {
		return err
	}

	store := openHistory(logger)
	if store != nil {
		defer store.Close()
	}
	sounds, closeSounds := openSounds(cfg.Audio, flagMute, logger)
	defer closeSounds()

	width, height := terminalSize()
	return tui.Run(tui.Options{
		Game:    game,
		Palette: tui.NewPalette(cfg.Colors),
		FPS:     cfg.Game.FPS,
		Width:   width,
		Height:  height,
		Sounds:  sounds,
		Runs:    runRecorder(store),
		Logger:  logger,
	})
}
