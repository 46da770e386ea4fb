package slappy

import (
	"fmt"
	"math"
	"sync"

	"github.com/vovakirdan/slappy-bird/internal/config"
	"github.com/vovakirdan/slappy-bird/internal/core"
	"github.com/vovakirdan/slappy-bird/internal/registry"
)

// Variant selects which flavor of the game is played.
type Variant struct {
	ID      string
	Title   string
	Targets bool // Whether slappable faces appear
}

var (
	// VariantSlappy is the full game with faces to slap.
	VariantSlappy = Variant{ID: "slappy", Title: "Slappy Bird", Targets: true}
	// VariantFlappy is the classic pipes-only game.
	VariantFlappy = Variant{ID: "flappy", Title: "Flappy Bird", Targets: false}
)

// HighScoreKey returns the storage key holding the variant's best score.
func (v Variant) HighScoreKey() string {
	return v.ID + "HighScore"
}

var (
	tuningMu sync.RWMutex
	tuning   = config.Default()
)

// SetConfig replaces the tuning used by games created afterwards.
// Called by the CLI once the config file has been loaded and validated.
func SetConfig(cfg config.Config) {
	tuningMu.Lock()
	defer tuningMu.Unlock()
	tuning = cfg
}

func currentConfig() config.Config {
	tuningMu.RLock()
	defer tuningMu.RUnlock()
	return tuning
}

// Visual characters for rendering
const (
	AvatarChar     = '▶'
	AvatarBodyChar = '●'
	SlapChar       = '■'
	PipeChar       = '█'
	PipeCapTop     = '▄'
	PipeCapBottom  = '▀'
	GroundChar     = '═'
)

// targetGlyphs stands in for the face symbols, which are too wide for a cell.
var targetGlyphs = []rune("oO0@QG8")

// Game implements the arcade platform's game interface on top of Engine.
type Game struct {
	variant Variant
	engine  *Engine
	state   State
	paused  bool
	config  core.RuntimeConfig
}

// New creates a game for the variant with the current tuning.
func New(v Variant) *Game {
	cfg := currentConfig()
	cfg.Targets.Enabled = cfg.Targets.Enabled && v.Targets
	return &Game{
		variant: v,
		engine:  NewEngine(cfg, nil),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// HighScoreKey returns the storage key for this game's best score.
func (g *Game) HighScoreKey() string {
	return g.variant.HighScoreKey()
}

// Reset initializes or restarts the game. The best of the persisted high score
// and the one reached in this process is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.engine = NewSeededEngine(g.engine.Config(), cfg.Seed)
	g.paused = false
	g.state = g.engine.Reset(max(cfg.HighScore, g.state.HighScore))
}

// Step applies this frame's commands and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.state.Terminal {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.state.Terminal {
		if in.HasAny(core.ActionJump, core.ActionConfirm, core.ActionTap, core.ActionRestart) {
			g.state = g.engine.Apply(g.state, CommandRestart)
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if in.HasAny(core.ActionJump, core.ActionConfirm, core.ActionTap) {
		g.state = g.engine.Apply(g.state, CommandJump)
	}
	g.state = g.engine.Step(g.state)

	return core.StepResult{
		State:        g.State(),
		NewHighScore: g.state.NewHighScore,
	}
}

// Snapshot returns a copy of the full simulation state.
func (g *Game) Snapshot() State {
	return g.state.Clone()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		GameOver:  g.state.Terminal,
		Paused:    g.paused,
	}
}

// viewport maps world units to screen cells. Row 0 holds the HUD and the
// last row the ground; the field fills the rows between.
type viewport struct {
	top    int
	rows   int
	scaleX float64
	scaleY float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	cfg := g.engine.cfg
	rows := max(dst.Height()-2, 1)
	return viewport{
		top:    1,
		rows:   rows,
		scaleX: float64(dst.Width()) / cfg.World.Width,
		scaleY: float64(rows) / cfg.World.Height,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.scaleX))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.scaleY))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := g.viewport(dst)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorOrange)

	for _, o := range g.state.Obstacles {
		g.drawObstacle(dst, vp, o)
	}
	for _, t := range g.state.Targets {
		g.drawTarget(dst, vp, t)
	}
	g.drawAvatar(dst, vp)

	hud := fmt.Sprintf(" Score: %d  High Score: %d  Speed: %.1fx ", g.state.Score, g.state.HighScore, g.state.Speed)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if g.paused {
		g.drawCenteredMessage(dst, core.ColorCyan, "PAUSED", "Press P to resume")
	}

	if g.state.Terminal {
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.state.Score)}
		if g.state.Score == g.state.HighScore && g.state.Score > 0 {
			lines = append(lines, "* New High Score! *")
		}
		lines = append(lines,
			fmt.Sprintf("High Score: %d", g.state.HighScore),
			"Space, Enter or click to play again",
		)
		g.drawCenteredMessage(dst, core.ColorBrightYellow, lines...)
	}
}

// drawObstacle renders a pipe pair with caps facing the gap.
func (g *Game) drawObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	cfg := g.engine.cfg
	x0 := vp.col(o.X)
	x1 := max(vp.col(o.X+cfg.Obstacles.Width), x0+1)
	gapTop := vp.row(o.GapStart)
	gapBottom := vp.row(o.GapStart + g.state.GapSize)
	fieldBottom := vp.top + vp.rows

	dst.DrawRect(core.NewRect(x0, vp.top, x1-x0, gapTop-vp.top), PipeChar, core.ColorGreen)
	if gapTop > vp.top {
		dst.DrawHLine(x0, gapTop-1, x1-x0, PipeCapTop, core.ColorBrightGreen)
	}

	dst.DrawRect(core.NewRect(x0, gapBottom, x1-x0, fieldBottom-gapBottom), PipeChar, core.ColorGreen)
	if gapBottom < fieldBottom {
		dst.DrawHLine(x0, gapBottom, x1-x0, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawTarget renders a face; slapped faces are dimmed.
func (g *Game) drawTarget(dst *core.Screen, vp viewport, t Target) {
	glyph := targetGlyphs[t.Symbol%len(targetGlyphs)]
	color := core.ColorBrightMagenta
	if t.Hit {
		color = core.ColorGray
	}
	size := g.engine.cfg.Targets.Size
	dst.SetColored(vp.col(t.X+size/2), vp.row(t.Y+size/2), glyph, color)
}

// drawAvatar renders the bird, or the fist while a slap is showing.
func (g *Game) drawAvatar(dst *core.Screen, vp viewport) {
	cfg := g.engine.cfg
	x := vp.col(cfg.Avatar.X)
	// A crashed bird may sit past the field edge; keep it on screen.
	top := core.ClampF(g.state.Avatar.Y, 0, cfg.World.Height-cfg.Avatar.Size)
	y := vp.row(top + cfg.Avatar.Size/2)

	head, color := AvatarChar, core.ColorBrightYellow
	if g.state.HitFlash > 0 {
		head, color = SlapChar, core.ColorBrightRed
	}
	dst.SetColored(x, y, AvatarBodyChar, color)
	dst.SetColored(x+1, y, head, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}

// Register both variants with the registry
func init() {
	for _, v := range []Variant{VariantSlappy, VariantFlappy} {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
