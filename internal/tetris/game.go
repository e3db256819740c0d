package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "tetris"

// Package-level config set by the CLI before games are created.
var gameConfig *config.TetrisConfig

// SetConfig sets the configuration used by games created afterwards.
// The CLI loads and validates it once at startup.
func SetConfig(cfg config.TetrisConfig) {
	gameConfig = &cfg
}

func currentConfig() config.TetrisConfig {
	if gameConfig != nil {
		return *gameConfig
	}
	return config.DefaultTetrisConfig()
}

// Game adapts the Engine to the platform: it turns input frames into
// commands, runs gravity from the clock, and renders into a core.Screen.
type Game struct {
	cfg    config.TetrisConfig
	clock  Clock
	engine *Engine
	err    error // Engine construction failure, shown instead of the board
	tick   uint64

	// Screen dimensions
	screenW int
	screenH int

	tooSmall   bool
	layout     layout
	restartBtn core.Rect // Set while the game-over overlay is drawn
	lastTick   TickResult
}

// New creates a game using the configuration from SetConfig.
func New() *Game {
	return NewWithConfig(currentConfig(), SystemClock)
}

// NewWithConfig creates a game with an explicit configuration and clock.
func NewWithConfig(cfg config.TetrisConfig, clock Clock) *Game {
	return &Game{
		cfg:   cfg,
		clock: clock,
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset builds a new engine seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.lastTick = TickResult{}
	g.restartBtn = core.Rect{}

	g.engine, g.err = NewEngine(g.cfg, rand.New(rand.NewSource(cfg.Seed)), g.clock)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without restarting.
// While the screen is too small the game is suspended; the fall timer is
// re-armed when it fits again.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	wasTooSmall := g.tooSmall
	g.layout = computeLayout(g.cfg.Board.Width, g.cfg.Board.Height, width, height)
	g.tooSmall = !g.layout.fits

	if wasTooSmall && !g.tooSmall && g.engine != nil {
		g.engine.ResetTimer()
	}
}

// Step applies this frame's commands in arrival order, then runs gravity
// if it is due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.lastTick = TickResult{}

	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.engine.Restart()
		g.restartBtn = core.Rect{}
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		g.apply(a)
	}

	g.lastTick = g.engine.Advance()

	return core.StepResult{State: g.State()}
}

// apply runs one command against the engine.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.engine.TogglePause()
	case core.ActionLeft:
		g.engine.MoveLeft()
	case core.ActionRight:
		g.engine.MoveRight()
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionSoftDrop:
		g.engine.SoftDrop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Level: 1}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.engine.Level(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused() || g.tooSmall,
	}
}

// Engine exposes the underlying engine for read-only inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// LastTick returns what gravity did during the most recent Step.
func (g *Game) LastTick() TickResult {
	return g.lastTick
}

// RestartButton returns the screen region of the restart button while the
// game-over overlay is shown.
func (g *Game) RestartButton() (core.Rect, bool) {
	if g.engine == nil || !g.engine.GameOver() || g.restartBtn.Empty() {
		return core.Rect{}, false
	}
	return g.restartBtn, true
}

// Err returns the engine construction error, if any.
func (g *Game) Err() error {
	return g.err
}
