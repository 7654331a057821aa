package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flapper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level from a menu",
	Long: `Open the level picker. After each game the menu comes back, so you
can switch levels or check the run history without restarting.

Controls:
  Up/Down, K/J  - Navigate
  Enter/Space   - Play the selected level
  Tab           - Run history
  Q/Esc         - Quit

Examples:
  flapper menu
  flapper menu --mute --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addPlayFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	store := openHistory(logger)
	if store != nil {
		defer store.Close()
	}
	sounds, closeSounds := openSounds(cfg.Audio, flagMute, logger)
	defer closeSounds()

	palette := tui.NewPalette(cfg.Colors)
	width, height := terminalSize()
	cursor := 0

	for {
		bestScore, err := best.Load()
		if err != nil {
			logger.Warn("best score unreadable", "path", best.Path(), "error", err)
		}

		result, err := tui.RunMenu(cfg, bestScore, cursor, width, height)
		if err != nil {
			return err
		}
		width, height = result.Width, result.Height

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			if store == nil {
				logger.Warn("run history unavailable")
				continue
			}
			if err := tui.RunScoreboard(store, width, height); err != nil {
				return err
			}
			continue
		}

		cursor = result.Level
		game, err := newSession(cfg, strconv.Itoa(result.Level+1), flagSeed, best, logger)
		if err != nil {
			return err
		}
		err = tui.Run(tui.Options{
			Game:    game,
			Palette: palette,
			FPS:     cfg.Game.FPS,
			Width:   width,
			Height:  height,
			Sounds:  sounds,
			Runs:    runRecorder(store),
			Logger:  logger,
		})
		if err != nil {
			return err
		}
	}
}
