package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boom/internal/games/boom"
	"github.com/vovakirdan/tui-boom/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play boom",
	Long: `Start a game right away.

Controls:
  Arrows / Space   - Player 1 move / drop bomb
  W A S D / F      - Player 2 move / drop bomb
  Enter            - Skip the level screens, new game after game over
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back to the menu (paused or after game over)
  Ctrl+S           - Save a text screenshot to ~/.boom/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, longer key hold
  normal - config values
  hard   - 2 lives
  fixed  - level times are not shortened as you progress

Examples:
  boom play
  boom play --two-players
  boom play --level 3 --difficulty hard
  boom play --config ./my-boom.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := setupLogging(true)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	opts := gameOptions()
	logger.Info("game started", "two_players", opts.TwoPlayers, "level", opts.StartLevel, "seed", cfg.Seed)

	backToMenu, err := tui.Run(boom.NewWithOptions(opts), store, cfg)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if backToMenu {
		return menuLoop(logger, store, cfg, opts)
	}
	return nil
}
