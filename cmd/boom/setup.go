package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-boom/internal/config"
	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/games/boom"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

var logFile *os.File

// validateGlobalFlags checks the flags shared by every command.
func validateGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagLevel < 0 {
		return fmt.Errorf("--level must not be negative, got %d", flagLevel)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

// setupLogging installs the default logger. Interactive commands own the
// terminal, so without --log-file their logs are discarded.
func setupLogging(interactive bool) (*log.Logger, error) {
	var w io.Writer = os.Stderr
	if interactive {
		w = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	log.SetDefault(logger)
	boom.SetLogger(logger.WithPrefix("boom"))
	return logger, nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
	}
}

// gameOptions collects the game settings given on the command line.
func gameOptions() boom.Options {
	preset, _ := config.ParsePreset(flagDifficulty)
	return boom.Options{
		ConfigPath: flagConfig,
		Difficulty: preset,
		TwoPlayers: flagTwoPlayers,
		StartLevel: flagLevel,
	}
}

// runtimeConfig sizes the game to the terminal, 80x24 when unknown.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
