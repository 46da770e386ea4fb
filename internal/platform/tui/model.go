package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slappy-bird/internal/core"
	"github.com/vovakirdan/slappy-bird/internal/registry"
	"github.com/vovakirdan/slappy-bird/internal/storage"
)

// ScoreHistory records finished sessions. *storage.Store implements it.
type ScoreHistory interface {
	SaveScore(gameID string, score int) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// Options wires persistence and logging into the model. Every field is optional.
type Options struct {
	History    ScoreHistory
	HighScores *storage.HighScoreStore
	Logger     *log.Logger

	// ScreenshotDir overrides ~/.slappy/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	board      *ScoreboardModel
	quitting   bool
	scoreSaved bool // Whether the score has been recorded for the current game over
}

// NewModel creates a model for the given game and starts its first session.
// The persisted high score is loaded before the game is reset.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg.HighScore = max(cfg.HighScore, opts.HighScores.Load())

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}

	game.Reset(cfg)
	m.gameState = game.State()
	logger.Debug("session started", "game", game.ID(), "seed", cfg.Seed, "highScore", cfg.HighScore)
	return m
}

// playfieldHeight leaves the last terminal row for the help footer.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.board == nil && isTap(msg) {
			m.inputFrame.Set(core.ActionTap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board != nil {
		board, cmd := m.board.Update(msg)
		if board.Closed() {
			m.board = nil
		} else {
			m.board = &board
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		if m.gameState.GameOver {
			m.openScoreboard()
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The game scales its world to the screen, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	if m.board != nil {
		board, _ := m.board.Update(msg)
		m.board = &board
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Restarted {
		m.scoreSaved = false
		m.logger.Debug("session restarted", "game", m.game.ID())
	}
	m.gameState = result.State

	if result.NewHighScore {
		if err := m.opts.HighScores.Save(result.State.HighScore); err != nil {
			m.logger.Warn("cannot persist high score", "error", err)
		}
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore appends the finished session to the history.
func (m *Model) recordScore() {
	score := m.gameState.Score
	m.logger.Info("game over", "game", m.game.ID(), "score", score, "highScore", m.gameState.HighScore)
	if m.opts.History == nil || score <= 0 {
		return
	}
	if _, err := m.opts.History.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("cannot record score", "error", err)
	}
}

// openScoreboard loads the best sessions and shows them over the game.
func (m *Model) openScoreboard() {
	var scores []storage.ScoreEntry
	if m.opts.History != nil {
		var err error
		scores, err = m.opts.History.TopScores(m.game.ID(), maxScores)
		if err != nil {
			m.logger.Warn("cannot load scores", "error", err)
		}
	}
	board := NewScoreboardModel(m.game.Title(), scores, m.config.ScreenW, m.config.ScreenH)
	m.board = &board
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot locate home directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".slappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// GameState returns the state observed on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// ShowingScores reports whether the scoreboard is open.
func (m Model) ShowingScores() bool {
	return m.board != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
