// Package tetris implements the falling-block puzzle: the board, the seven
// tetrominoes, the gravity/lock/clear engine, and the platform adapter that
// draws it into a core.Screen.
package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// softDropRows is how far one soft-drop command moves the piece.
const softDropRows = 2

// State is the engine's top-level mode.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Clock supplies the current time for the fall timer.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock (monotonic reading included).
var SystemClock Clock = systemClock{}

// BoardView is read-only access to the playfield.
type BoardView interface {
	Width() int
	Height() int
	Cell(x, y int) Cell
}

// TickResult describes what one gravity tick did.
type TickResult struct {
	Ticked       bool // A gravity tick ran
	Locked       bool // The piece landed and was locked
	LinesCleared int
	Points       int
	LevelsGained int
	GameOver     bool // The next piece could not spawn
}

// Engine owns the board, the falling and preview pieces, and the
// score/level/speed state. All methods are synchronous and never block.
type Engine struct {
	cfg         config.TetrisConfig
	progression *config.Progression
	source      *PieceSource
	clock       Clock

	board   *Board
	current *Piece
	next    *Piece

	score        int
	lines        int
	level        int
	fallInterval time.Duration
	state        State
	lastFall     time.Time
}

// NewEngine validates cfg and starts a fresh game.
// A nil clock means SystemClock.
func NewEngine(cfg config.TetrisConfig, rng Rand, clock Clock) (*Engine, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if need := maxShapeWidth(Catalog); cfg.Board.Width < need || cfg.Board.Height < need {
		return nil, fmt.Errorf("tetris: board %dx%d cannot hold a %d-cell piece in every rotation",
			cfg.Board.Width, cfg.Board.Height, need)
	}

	source, err := NewPieceSource(rng, Catalog, cfg.Colors.Min, cfg.Colors.Max)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock
	}

	e := &Engine{
		cfg:         cfg,
		progression: config.NewProgression(cfg.Timing),
		source:      source,
		clock:       clock,
		board:       NewBoard(cfg.Board.Width, cfg.Board.Height),
	}
	e.Restart()
	return e, nil
}

// Restart empties the board, resets score, lines and level, deals new
// pieces and resumes running. It is the only way out of StateGameOver.
func (e *Engine) Restart() {
	e.board.Reset()
	e.score = 0
	e.lines = 0
	e.level = 1
	e.fallInterval = e.progression.FallInterval(e.level)
	e.current = e.source.Next(e.board.Width())
	e.next = e.source.Next(e.board.Width())
	e.state = StateRunning
	e.ResetTimer()
}

// ResetTimer re-arms the fall timer at the current time.
func (e *Engine) ResetTimer() {
	e.lastFall = e.clock.Now()
}

// MoveLeft shifts the piece one column left if the target is free.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1, 0)
}

// MoveRight shifts the piece one column right if the target is free.
func (e *Engine) MoveRight() bool {
	return e.shift(1, 0)
}

// SoftDrop moves the piece down two rows if that position is free.
// There is no one-row fallback.
func (e *Engine) SoftDrop() bool {
	return e.shift(0, softDropRows)
}

func (e *Engine) shift(dx, dy int) bool {
	if e.state != StateRunning {
		return false
	}
	p := e.current
	if !e.board.IsValid(p.Shape, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// Rotate turns the piece clockwise, pulling it back inside the right wall
// first. If the result collides the piece is left exactly as it was.
func (e *Engine) Rotate() bool {
	if e.state != StateRunning {
		return false
	}
	p := e.current
	rotated, x := p.rotatedPlacement(e.board.Width())
	if !e.board.IsValid(rotated, x, p.Y) {
		return false
	}
	p.Shape = rotated
	p.X = x
	return true
}

// TogglePause switches between running and paused. Resuming re-arms the
// fall timer so time spent paused is not applied as gravity.
func (e *Engine) TogglePause() {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
	case StatePaused:
		e.state = StateRunning
		e.ResetTimer()
	}
}

// Due reports whether more than one fall interval has passed since the last tick.
func (e *Engine) Due() bool {
	return e.state == StateRunning && e.clock.Now().Sub(e.lastFall) > e.fallInterval
}

// Advance runs a gravity tick if one is due.
func (e *Engine) Advance() TickResult {
	if !e.Due() {
		return TickResult{}
	}
	return e.Gravity()
}

// Gravity runs one gravity tick unconditionally (unless not running):
// the piece falls a row, and if the row below that is blocked it locks,
// full rows clear, score and level update and the next piece spawns.
func (e *Engine) Gravity() TickResult {
	if e.state != StateRunning {
		return TickResult{}
	}
	defer e.ResetTimer()

	p := e.current
	p.Y++
	// A piece slid sideways onto an overhang is blocked already at the
	// tentative row; it must land rather than fall through.
	if e.board.IsValid(p.Shape, p.X, p.Y) && e.board.IsValid(p.Shape, p.X, p.Y+1) {
		return TickResult{Ticked: true}
	}
	return e.land()
}

// land settles the current piece at its resting row and commits it.
func (e *Engine) land() TickResult {
	p := e.current
	for !e.board.IsValid(p.Shape, p.X, p.Y) && p.Y > -p.Shape.Height() {
		p.Y--
	}
	e.board.Lock(p.Shape, p.X, p.Y, p.Color)

	res := TickResult{Ticked: true, Locked: true}

	res.LinesCleared = e.board.ClearRows(e.board.FullRows())
	res.Points = ScoreForLines(res.LinesCleared)
	e.lines += res.LinesCleared
	e.score += res.Points

	e.level, res.LevelsGained = e.progression.LevelFor(e.level, e.lines)
	if res.LevelsGained > 0 {
		e.fallInterval = e.progression.FallInterval(e.level)
	}

	e.current = e.next
	e.current.Spawn(e.board.Width())
	e.next = e.source.Next(e.board.Width())

	if !e.board.IsValid(e.current.Shape, e.current.X, e.current.Y) {
		e.state = StateGameOver
		res.GameOver = true
	}
	return res
}

// Board returns read-only access to the playfield.
func (e *Engine) Board() BoardView {
	return e.board
}

// Current returns a copy of the falling piece.
func (e *Engine) Current() Piece {
	return e.current.Clone()
}

// Next returns a copy of the preview piece.
func (e *Engine) Next() Piece {
	return e.next.Clone()
}

// Score returns the accumulated points.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the total rows cleared.
func (e *Engine) Lines() int {
	return e.lines
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// FallInterval returns the time between gravity ticks at this level.
func (e *Engine) FallInterval() time.Duration {
	return e.fallInterval
}

// Speed returns gravity ticks per second.
func (e *Engine) Speed() float64 {
	return 1 / e.fallInterval.Seconds()
}

// State returns the engine mode.
func (e *Engine) State() State {
	return e.state
}

// Paused reports whether gravity is suspended by the player.
func (e *Engine) Paused() bool {
	return e.state == StatePaused
}

// GameOver reports whether the engine is waiting for Restart.
func (e *Engine) GameOver() bool {
	return e.state == StateGameOver
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.TetrisConfig {
	return e.cfg
}
