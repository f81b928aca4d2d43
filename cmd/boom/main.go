// boom is a two player bomb-and-maze arcade game for the terminal.
//
// Usage:
//
//	boom play               - Play from the first level
//	boom menu               - Start menu with options and high scores
//	boom list               - List the levels and built-in mazes
//	boom scores             - Show high scores and maze statistics
//	boom serve              - Start SSH server for remote play
//	boom maze check <file>  - Validate a maze file
//	boom maze show <maze>   - Print a maze in canonical form
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.boom/scores.db)
//	--config <path>       - Use a custom boom.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTwoPlayers bool
	flagLevel      int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	code := 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		code = 1
	}
	closeLogFile()
	os.Exit(code)
}

var rootCmd = &cobra.Command{
	Use:   "boom",
	Short: "Boom - bombs, mazes and monsters in your terminal",
	Long: `Boom is a maze game for one or two players sharing a keyboard.
Drop bombs to break walls and enemies, collect every coin to clear the
maze, and spell EXTRA for an extra life.

Available commands:
  play     - Play directly
  menu     - Start menu with options and high scores
  list     - Show the level list and built-in mazes
  scores   - View high scores and maze statistics
  serve    - Start SSH server for remote play
  maze     - Check or print maze files

Examples:
  boom play
  boom play --two-players --difficulty easy
  boom menu
  boom maze check ./my-maze.txt
  boom serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: validateGlobalFlags,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.boom/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom boom.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagTwoPlayers, "two-players", false, "Add the second player (wasd + f)")
	pf.IntVar(&flagLevel, "level", 0, "Starting level, 1-based (0 = first)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mazeCmd)
}
