package tetris

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// manualClock only moves when told to.
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptedRand replays vals, cycling. An empty script always yields 0,
// which deals I pieces in the minimum color.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func newTestEngine(t *testing.T) (*Engine, *manualClock) {
	t.Helper()
	clock := newManualClock()
	e, err := NewEngine(config.DefaultTetrisConfig(), &scriptedRand{}, clock)
	require.NoError(t, err)
	return e, clock
}

// dropUntilLocked runs gravity until the current piece locks.
func dropUntilLocked(t *testing.T, e *Engine) TickResult {
	t.Helper()
	for range 2 * e.Board().Height() {
		res := e.Gravity()
		if res.Locked {
			return res
		}
	}
	t.Fatal("piece never locked")
	return TickResult{}
}

func TestNewEngine(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Equal(t, StateRunning, e.State())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.Lines())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, 500*time.Millisecond, e.FallInterval())
	assert.InDelta(t, 2.0, e.Speed(), 1e-9)

	cur := e.Current()
	assert.Equal(t, KindI, cur.Kind)
	assert.Equal(t, 3, cur.X)
	assert.Equal(t, 0, cur.Y)
	assert.Equal(t, core.RGB{R: 100, G: 100, B: 100}, cur.Color)
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Timing.MinFallInterval = 0
	_, err := NewEngine(cfg, &scriptedRand{}, nil)
	assert.Error(t, err)

	cfg = config.DefaultTetrisConfig()
	cfg.Board.Width = 3
	_, err = NewEngine(cfg, &scriptedRand{}, nil)
	assert.ErrorContains(t, err, "cannot hold")
}

func TestAdvanceWaitsForInterval(t *testing.T) {
	e, clock := newTestEngine(t)

	clock.Advance(500 * time.Millisecond)
	assert.False(t, e.Advance().Ticked, "tick needs strictly more than one interval")

	clock.Advance(time.Millisecond)
	assert.True(t, e.Advance().Ticked)
	assert.Equal(t, 1, e.Current().Y)

	// Timer was re-armed.
	clock.Advance(100 * time.Millisecond)
	assert.False(t, e.Advance().Ticked)
}

func TestMoves(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.True(t, e.MoveLeft())
	assert.Equal(t, 2, e.Current().X)

	for e.MoveLeft() {
	}
	assert.Equal(t, 0, e.Current().X)

	for e.MoveRight() {
	}
	assert.Equal(t, 6, e.Current().X, "horizontal I spans columns 6-9")
}

func TestSoftDrop(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.True(t, e.SoftDrop())
	assert.Equal(t, 2, e.Current().Y)

	// Blocked two rows down: no move, not even one row.
	e.board.Fill(3, 4, core.RGB{})
	assert.False(t, e.SoftDrop())
	assert.Equal(t, 2, e.Current().Y)

	// Blocked only one row further than the target.
	e.board.Reset()
	e.current.Y = 16
	assert.True(t, e.SoftDrop())
	assert.Equal(t, 18, e.Current().Y)
	assert.False(t, e.SoftDrop(), "row 20 is past the floor")
	assert.Equal(t, 18, e.Current().Y)
}

func TestRotateRecentersAtRightWall(t *testing.T) {
	e, _ := newTestEngine(t)

	require.True(t, e.Rotate())
	assert.Equal(t, 1, e.Current().Shape.Width())
	assert.Equal(t, 3, e.Current().X)

	for e.MoveRight() {
	}
	require.Equal(t, 9, e.Current().X)

	require.True(t, e.Rotate())
	cur := e.Current()
	assert.Equal(t, 4, cur.Shape.Width())
	assert.Equal(t, 6, cur.X, "pulled back inside the right wall")
}

func TestRotateBlockedIsNoOp(t *testing.T) {
	e, _ := newTestEngine(t)
	before := e.Current()

	// The vertical I would cover column 3, rows 0-3.
	e.board.Fill(3, 2, core.RGB{})
	assert.False(t, e.Rotate())

	after := e.Current()
	assert.True(t, before.Shape.Equal(after.Shape))
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)
}

func TestGravityLocksAtFloor(t *testing.T) {
	e, _ := newTestEngine(t)

	ticks := 0
	var res TickResult
	for !res.Locked {
		res = e.Gravity()
		ticks++
		require.Less(t, ticks, 40)
	}

	assert.Equal(t, 19, ticks)
	assert.Equal(t, 0, res.LinesCleared)
	for x := 3; x <= 6; x++ {
		assert.True(t, e.Board().Cell(x, 19).Filled)
	}
	assert.Equal(t, 0, e.Current().Y, "next piece spawned")
	assert.Equal(t, 3, e.Current().X)
}

func TestGravityDoesNotTunnelThroughOverhang(t *testing.T) {
	e, _ := newTestEngine(t)
	e.current.Y = 5
	// Row 6 blocks the piece; row 7 is open.
	e.board.Fill(4, 6, core.RGB{})

	res := e.Gravity()
	require.True(t, res.Locked)
	assert.True(t, e.Board().Cell(3, 5).Filled)
	assert.True(t, e.Board().Cell(6, 5).Filled)
	assert.False(t, e.Board().Cell(3, 7).Filled)
}

func TestLineClearScoring(t *testing.T) {
	e, _ := newTestEngine(t)
	fillRow(e.board, 19, 3, 4, 5, 6)

	res := dropUntilLocked(t, e)
	assert.Equal(t, 1, res.LinesCleared)
	assert.Equal(t, 100, res.Points)
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, 1, e.Lines())
	assert.Empty(t, e.board.FullRows())
	assert.False(t, e.Board().Cell(0, 19).Filled)
}

func TestFourLineClear(t *testing.T) {
	e, _ := newTestEngine(t)
	for y := 16; y < 20; y++ {
		fillRow(e.board, y, 0)
	}

	require.True(t, e.Rotate())
	for e.MoveLeft() {
	}
	require.Equal(t, 0, e.Current().X)

	res := dropUntilLocked(t, e)
	assert.Equal(t, 4, res.LinesCleared)
	assert.Equal(t, 800, e.Score())
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			assert.False(t, e.Board().Cell(x, y).Filled)
		}
	}
}

func TestLevelUp(t *testing.T) {
	e, _ := newTestEngine(t)
	e.lines = 9
	fillRow(e.board, 19, 3, 4, 5, 6)

	res := dropUntilLocked(t, e)
	assert.Equal(t, 1, res.LevelsGained)
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 450*time.Millisecond, e.FallInterval())
}

func TestLevelUpFloorsInterval(t *testing.T) {
	e, _ := newTestEngine(t)
	e.level = 9
	e.lines = 89
	e.fallInterval = e.progression.FallInterval(9)
	assert.Equal(t, 100*time.Millisecond, e.FallInterval())
	fillRow(e.board, 19, 3, 4, 5, 6)

	dropUntilLocked(t, e)
	assert.Equal(t, 10, e.Level())
	assert.Equal(t, 100*time.Millisecond, e.FallInterval())
}

func TestFixedSpeedDoesNotLevel(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	config.ApplyTetrisPreset(&cfg, config.DifficultyFixed)
	e, err := NewEngine(cfg, &scriptedRand{}, newManualClock())
	require.NoError(t, err)

	e.lines = 9
	fillRow(e.board, 19, 3, 4, 5, 6)
	dropUntilLocked(t, e)

	assert.Equal(t, 10, e.Lines())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, cfg.Timing.InitialFallInterval, e.FallInterval())
}

func TestGameOverFreezesUntilRestart(t *testing.T) {
	e, clock := newTestEngine(t)
	// A partial row under the spawn point: the piece locks at row 0 and
	// the next one cannot spawn.
	e.board.Fill(4, 1, core.RGB{})

	res := e.Gravity()
	require.True(t, res.Locked)
	require.True(t, res.GameOver)
	assert.Equal(t, StateGameOver, e.State())

	before := boardRows(e.Board())
	clock.Advance(time.Hour)
	assert.Equal(t, TickResult{}, e.Advance())
	assert.Equal(t, TickResult{}, e.Gravity())
	assert.False(t, e.MoveLeft())
	assert.False(t, e.Rotate())
	assert.False(t, e.SoftDrop())
	e.TogglePause()
	assert.Equal(t, StateGameOver, e.State())
	assert.Equal(t, before, boardRows(e.Board()))

	e.Restart()
	assert.Equal(t, StateRunning, e.State())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 1, e.Level())
	assert.False(t, e.Board().Cell(4, 1).Filled)
	assert.False(t, e.Board().Cell(3, 0).Filled)
}

func TestPauseResetsTimer(t *testing.T) {
	e, clock := newTestEngine(t)

	clock.Advance(400 * time.Millisecond)
	e.TogglePause()
	assert.True(t, e.Paused())

	clock.Advance(10 * time.Second)
	assert.False(t, e.Advance().Ticked)
	assert.False(t, e.MoveLeft())

	e.TogglePause()
	assert.False(t, e.Paused())

	clock.Advance(400 * time.Millisecond)
	assert.False(t, e.Advance().Ticked, "paused time is not applied as gravity")
	clock.Advance(101 * time.Millisecond)
	assert.True(t, e.Advance().Ticked)
}

func TestSameSeedSameSequence(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	e1, err := NewEngine(cfg, rand.New(rand.NewSource(42)), newManualClock())
	require.NoError(t, err)
	e2, err := NewEngine(cfg, rand.New(rand.NewSource(42)), newManualClock())
	require.NoError(t, err)

	for range 20 {
		c1, c2 := e1.Current(), e2.Current()
		assert.Equal(t, c1.Kind, c2.Kind)
		assert.Equal(t, c1.Color, c2.Color)
		assert.Equal(t, e1.Next().Kind, e2.Next().Kind)
		dropUntilLocked(t, e1)
		dropUntilLocked(t, e2)
		if e1.GameOver() {
			break
		}
	}
	assert.Equal(t, boardRows(e1.Board()), boardRows(e2.Board()))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "game_over", StateGameOver.String())
	assert.Equal(t, "unknown", State(99).String())
}
