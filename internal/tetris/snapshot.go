package tetris

import (
	"strings"
	"time"
)

// SnapshotState names the game's visible mode.
type SnapshotState string

const (
	SnapshotRunning     SnapshotState = "running"
	SnapshotPaused      SnapshotState = "paused"
	SnapshotGameOver    SnapshotState = "game_over"
	SnapshotPausedSmall SnapshotState = "paused_small_window"
	SnapshotError       SnapshotState = "error"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Score        int
	Lines        int
	Level        int
	FallInterval time.Duration
	State        SnapshotState
	Piece        Kind
	PieceX       int
	PieceY       int
	NextPiece    Kind
	Board        []string // One string per row, '#' filled and '.' empty
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Tick: g.tick, State: SnapshotError}
	}

	e := g.engine
	state := SnapshotRunning
	switch {
	case g.tooSmall:
		state = SnapshotPausedSmall
	case e.GameOver():
		state = SnapshotGameOver
	case e.Paused():
		state = SnapshotPaused
	}

	cur := e.Current()
	return Snapshot{
		Tick:         g.tick,
		Score:        e.Score(),
		Lines:        e.Lines(),
		Level:        e.Level(),
		FallInterval: e.FallInterval(),
		State:        state,
		Piece:        cur.Kind,
		PieceX:       cur.X,
		PieceY:       cur.Y,
		NextPiece:    e.Next().Kind,
		Board:        boardRows(e.Board()),
	}
}

func boardRows(b BoardView) []string {
	rows := make([]string, b.Height())
	var sb strings.Builder
	for y := range rows {
		sb.Reset()
		for x := 0; x < b.Width(); x++ {
			if b.Cell(x, y).Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
