package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boom/internal/config"
	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/games/boom"
	"github.com/vovakirdan/tui-boom/internal/platform/tui"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start boom with the option menu",
	Long: `Start boom in interactive menu mode.

Pick the number of players, the starting level and the difficulty, then
play. After a game you return to the menu.

Controls:
  Up/Down/j/k      - Navigate menu
  Left/Right/h/l   - Change option
  Enter/Space      - Select
  Tab              - High scores
  Q/Esc            - Quit

Examples:
  boom menu
  boom menu --two-players --fps 20
  boom menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := setupLogging(true)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	return menuLoop(logger, store, runtimeConfig(), gameOptions())
}

// menuLoop alternates between the menu and its choices until the user quits.
func menuLoop(logger *log.Logger, store *storage.Store, cfg core.RuntimeConfig, opts boom.Options) error {
	boomCfg, err := config.LoadBoom(opts.ConfigPath)
	if err != nil {
		return err
	}
	levels := tui.LevelNames(boomCfg)

	for {
		result, err := tui.RunMenu(store, cfg, levels, opts)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		opts = result.Options

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, boom.ID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		case result.Play:
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			logger.Info("game started", "two_players", opts.TwoPlayers, "level", opts.StartLevel, "difficulty", opts.Difficulty)

			backToMenu, err := tui.Run(boom.NewWithOptions(opts), store, cfg)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !backToMenu {
				return nil
			}
		}
	}
}
