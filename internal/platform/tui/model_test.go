package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slappy-bird/internal/core"
	"github.com/vovakirdan/slappy-bird/internal/games/slappy"
	"github.com/vovakirdan/slappy-bird/internal/storage"
)

// fakeGame replays scripted step results and records what the platform sent.
type fakeGame struct {
	results  []core.StepResult
	step     int
	resetCfg core.RuntimeConfig
	resets   int
	inputs   []core.InputFrame
	state    core.GameState
}

func (f *fakeGame) ID() string           { return "fake" }
func (f *fakeGame) Title() string        { return "Fake" }
func (f *fakeGame) HighScoreKey() string { return "fakeHighScore" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.resetCfg = cfg
	f.resets++
	f.state = core.GameState{HighScore: cfg.HighScore}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.inputs = append(f.inputs, in.Clone())
	if f.step >= len(f.results) {
		return core.StepResult{State: f.state}
	}
	r := f.results[f.step]
	f.step++
	f.state = r.State
	return r
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (f *fakeGame) State() core.GameState { return f.state }

type fakeHistory struct {
	saved []int
	top   []storage.ScoreEntry
	err   error
}

func (h *fakeHistory) SaveScore(gameID string, score int) (int64, error) {
	if h.err != nil {
		return 0, h.err
	}
	h.saved = append(h.saved, score)
	return int64(len(h.saved)), nil
}

func (h *fakeHistory) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	return h.top, h.err
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{})
}

func TestNewModelLoadsHighScore(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.Set("fakeHighScore", "7")
	game := &fakeGame{}

	m := NewModel(game, Options{HighScores: storage.NewHighScoreStore(kv, "fakeHighScore", nil)}, testConfig())

	if game.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", game.resets)
	}
	if game.resetCfg.HighScore != 7 {
		t.Errorf("Reset HighScore = %d, expected 7", game.resetCfg.HighScore)
	}
	if m.GameState().HighScore != 7 {
		t.Errorf("GameState().HighScore = %d, expected 7", m.GameState().HighScore)
	}
}

func TestNewModelSeedsFromClock(t *testing.T) {
	game := &fakeGame{}
	cfg := testConfig()
	cfg.Seed = 0
	NewModel(game, Options{}, cfg)
	if game.resetCfg.Seed == 0 {
		t.Error("zero seed should be replaced before Reset")
	}
}

func TestKeysBecomeActions(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want core.Action
	}{
		{"space", keyRune(' '), core.ActionJump},
		{"w", keyRune('w'), core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"pause", keyRune('p'), core.ActionPause},
		{"click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionTap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &fakeGame{}
			m := NewModel(game, Options{}, testConfig())
			m = update(t, m, tt.msg)
			m = tick(t, m)

			if len(game.inputs) != 1 {
				t.Fatalf("Step called %d times, expected 1", len(game.inputs))
			}
			if !game.inputs[0].Has(tt.want) {
				t.Errorf("input frame missing %v: %v", tt.want, game.inputs[0].Actions)
			}

			// Input is consumed by the tick
			tick(t, m)
			if len(game.inputs[1].Actions) != 0 {
				t.Errorf("second tick should carry no input, got %v", game.inputs[1].Actions)
			}
		})
	}
}

func TestMouseReleaseIgnored(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, Options{}, testConfig())
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	tick(t, m)
	if game.inputs[0].Has(core.ActionTap) {
		t.Error("mouse release should not tap")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, Options{}, testConfig())

	m = update(t, m, keyRune('r'))
	m = tick(t, m)
	if game.inputs[0].Has(core.ActionRestart) {
		t.Error("restart should be ignored while playing")
	}

	game.results = []core.StepResult{{State: core.GameState{GameOver: true}}}
	game.step = 0
	m = tick(t, m)
	m = update(t, m, keyRune('r'))
	tick(t, m)
	if !game.inputs[2].Has(core.ActionRestart) {
		t.Error("restart should reach the game after game over")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, Options{}, testConfig())
	next, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !next.(Model).Quitting() {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameOverPersistsOnce(t *testing.T) {
	kv := storage.NewMemoryKV()
	history := &fakeHistory{}
	game := &fakeGame{results: []core.StepResult{
		{State: core.GameState{Score: 12, HighScore: 5}},
		{State: core.GameState{Score: 12, HighScore: 12, GameOver: true}, NewHighScore: true},
		{State: core.GameState{Score: 12, HighScore: 12, GameOver: true}},
		{State: core.GameState{Score: 12, HighScore: 12, GameOver: true}},
	}}
	hs := storage.NewHighScoreStore(kv, "fakeHighScore", nil)
	m := NewModel(game, Options{History: history, HighScores: hs}, testConfig())

	for i := 0; i < 4; i++ {
		m = tick(t, m)
	}

	if got := hs.Load(); got != 12 {
		t.Errorf("persisted high score = %d, expected 12", got)
	}
	if len(history.saved) != 1 || history.saved[0] != 12 {
		t.Errorf("history = %v, expected [12]", history.saved)
	}
	if !m.GameState().GameOver {
		t.Error("model should observe game over")
	}
}

func TestRestartRecordsNextSession(t *testing.T) {
	history := &fakeHistory{}
	game := &fakeGame{results: []core.StepResult{
		{State: core.GameState{Score: 3, GameOver: true}},
		{State: core.GameState{}, Restarted: true},
		{State: core.GameState{Score: 4, GameOver: true}},
	}}
	m := NewModel(game, Options{History: history}, testConfig())
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	if len(history.saved) != 2 {
		t.Errorf("history = %v, expected two sessions", history.saved)
	}
}

func TestZeroScoreNotRecorded(t *testing.T) {
	history := &fakeHistory{}
	game := &fakeGame{results: []core.StepResult{{State: core.GameState{GameOver: true}}}}
	m := NewModel(game, Options{History: history}, testConfig())
	tick(t, m)
	if len(history.saved) != 0 {
		t.Errorf("zero score should not be recorded, got %v", history.saved)
	}
}

func TestHistoryErrorDoesNotStopGame(t *testing.T) {
	history := &fakeHistory{err: errors.New("locked")}
	game := &fakeGame{results: []core.StepResult{{State: core.GameState{Score: 9, GameOver: true}}}}
	m := NewModel(game, Options{History: history}, testConfig())
	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick loop should continue after a storage error")
	}
}

func TestScoreboardAfterGameOver(t *testing.T) {
	history := &fakeHistory{top: []storage.ScoreEntry{{GameID: "fake", Score: 40}, {GameID: "fake", Score: 30}}}
	game := &fakeGame{}
	m := NewModel(game, Options{History: history}, testConfig())

	m = update(t, m, keyRune('s'))
	if m.ShowingScores() {
		t.Fatal("scoreboard should not open while playing")
	}

	game.results = []core.StepResult{{State: core.GameState{Score: 1, GameOver: true}}}
	m = tick(t, m)
	m = update(t, m, keyRune('s'))
	if !m.ShowingScores() {
		t.Fatal("scoreboard should open after game over")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view should show its title")
	}

	// Keys go to the scoreboard, not the game
	m = update(t, m, keyRune(' '))
	m = tick(t, m)
	if game.inputs[len(game.inputs)-1].Has(core.ActionJump) {
		t.Error("space should not reach the game while the scoreboard is open")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ShowingScores() {
		t.Error("esc should close the scoreboard")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&fakeGame{}, Options{ScreenshotDir: dir}, testConfig())
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Fatalf("expected one screenshot, got %v", entries)
	}
	data, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestResizeKeepsSession(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, Options{}, testConfig())
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("view should render the game after resize")
	}
}

func TestSlappyJumpThroughModel(t *testing.T) {
	game := slappy.New(slappy.VariantSlappy)
	m := NewModel(game, Options{}, testConfig())

	m = update(t, m, keyRune(' '))
	tick(t, m)

	if v := game.Snapshot().Avatar.Velocity; v >= 0 {
		t.Errorf("velocity after flap = %v, expected upward (negative)", v)
	}
}

func TestSlappyFallsWithoutInput(t *testing.T) {
	game := slappy.New(slappy.VariantFlappy)
	m := NewModel(game, Options{}, testConfig())
	tick(t, m)

	if v := game.Snapshot().Avatar.Velocity; v <= 0 {
		t.Errorf("velocity without input = %v, expected downward (positive)", v)
	}
}
