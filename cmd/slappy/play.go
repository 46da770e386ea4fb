package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slappy-bird/internal/config"
	"github.com/vovakirdan/slappy-bird/internal/core"
	"github.com/vovakirdan/slappy-bird/internal/games/slappy"
	"github.com/vovakirdan/slappy-bird/internal/platform/tui"
	"github.com/vovakirdan/slappy-bird/internal/registry"
	"github.com/vovakirdan/slappy-bird/internal/storage"
)

const defaultGame = "slappy"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: slappy).

Controls:
  Space/Up/W  - Flap
  Enter/Click - Flap, or start again after game over
  P/Esc       - Pause
  R           - Restart (after game over)
  S           - Scoreboard (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Speeds up every 8 points
  normal - Speeds up every 5 points
  hard   - Speeds up every 3 points
  fixed  - No progression

Examples:
  slappy play
  slappy play flappy
  slappy play --difficulty hard
  slappy play --config ./my-slappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'slappy list' to see available games", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slappy.SetConfig(cfg)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameLog, closeLog, err := openGameLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{Logger: gameLog}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		newLogger().Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		opts.History = store
		opts.HighScores = storage.NewHighScoreStore(store, game.HighScoreKey(), gameLog)
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, opts, rt); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// loadConfig reads the tuning file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openGameLog returns the logger used while the game owns the terminal.
// Without a path, logs are discarded.
func openGameLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "slappy",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
