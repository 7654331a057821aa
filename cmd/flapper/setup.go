package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flapper/internal/audio"
	"github.com/vovakirdan/tui-flapper/internal/audio/device"
	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/games/flappy"
	"github.com/vovakirdan/tui-flapper/internal/platform/tui"
	"github.com/vovakirdan/tui-flapper/internal/storage"
)

// newLogger builds the command logger. When the game owns the terminal the
// logger only writes to --log-file; otherwise it falls back to stderr.
// The returned function closes the log file.
func newLogger(ownsTerminal bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case ownsTerminal:
		w = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flapper",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration. Any failure is fatal.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("configuration loaded", "source", source)
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openBest opens the best-score file; path overrides the configured one.
func openBest(cfg config.Config, path string) (*storage.BestFile, error) {
	if path == "" {
		path = cfg.Scoring.BestScoreFile
	}
	return storage.NewBestFile(path)
}

// openHistory opens the run history. A failure is logged and play continues
// without history.
func openHistory(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSounds starts the audio output. Without a device the game runs silently.
// The player starts muted when audio is disabled or muted is set, so that
// it can still be switched on in game.
func openSounds(cfg config.AudioSettings, muted bool, logger *log.Logger) (tui.Sounds, func()) {
	if muted {
		cfg.Enabled = false
	}
	player := audio.NewPlayer(cfg)
	closeDevice, err := device.Open(player)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return nil, func() {}
	}
	player.StartMusic()
	return player, func() {
		player.Close()
		closeDevice()
	}
}

// newSession creates a game with persistence errors routed to the logger.
func newSession(cfg config.Config, level string, seed int64, best flappy.BestStore, logger *log.Logger) (*flappy.Session, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting session", "seed", seed, "level", level)
	return flappy.New(cfg, flappy.Options{
		Seed:  seed,
		Level: level,
		Best:  best,
		OnPersistError: func(err error) {
			logger.Warn("best score not saved", "error", err)
		},
	})
}

// runRecorder adapts a possibly nil store to the model's optional recorder.
func runRecorder(store *storage.Store) tui.RunRecorder {
	if store == nil {
		return nil
	}
	return store
}
