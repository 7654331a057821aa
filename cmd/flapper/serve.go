package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flapper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeLevel  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flapper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. The best score and the run history
are shared by everyone on the server. Remote sessions play without sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flapper/host_key

Examples:
  flapper serve                           # Listen on :23235 with auto-generated key
  flapper serve --ssh :2222               # Listen on port 2222
  flapper serve --host-key ./my_host_key  # Use specific host key
  flapper serve --level hard              # Everyone starts on Hard

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeLevel, "level", "", "Starting level name or number for every session")
	serveCmd.Flags().StringVar(&flagBestFile, "best-file", "", "Best score file (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	best, err := openBest(cfg, flagBestFile)
	if err != nil {
		return err
	}
	store := openHistory(logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        cfg,
		Level:       flagServeLevel,
		Best:        best,
		Runs:        runRecorder(store),
	}, logger)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting flapper SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
