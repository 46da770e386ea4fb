// slappy is a terminal arcade game: flap between pipes and slap passing targets.
//
// Usage:
//
//	slappy [play] [game]     - Play (default game: slappy)
//	slappy list              - List available games
//	slappy scores <game>     - Show the best sessions for a game
//	slappy config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.slappy/scores.db)
//	--config <path>       - Use a custom tuning file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write in-game logs to a file
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/slappy-bird/internal/games/slappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		newLogger().Error(err)
		os.Exit(1)
	}
}

// newLogger returns the CLI logger. It writes to stderr and must not be used
// while the game owns the terminal.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slappy",
	})
}

var rootCmd = &cobra.Command{
	Use:   "slappy",
	Short: "Slappy Bird - flap, dodge and slap in your terminal",
	Long: `Slappy Bird is a side-scrolling arcade game for the terminal.
Fly between the pipes and slap the targets drifting past for extra points.
The game speeds up and the gaps shrink as your score climbs.

Available commands:
  play     - Play a game (default)
  list     - Show all available games
  scores   - View the best sessions
  config   - Print the configuration

Examples:
  slappy
  slappy play flappy
  slappy --difficulty hard
  slappy scores slappy`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
