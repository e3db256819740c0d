package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a falling tetromino: its current rotation, the board position of
// the matrix's top-left cell, and a color fixed at creation.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	Color core.RGB
}

// NewPiece creates a piece at the spawn position for a board of the given width.
func NewPiece(t Template, color core.RGB, boardWidth int) *Piece {
	p := &Piece{
		Kind:  t.Kind,
		Shape: t.Shape.Clone(),
		Color: color,
	}
	p.Spawn(boardWidth)
	return p
}

// Spawn moves the piece to row 0, horizontally centered.
func (p *Piece) Spawn(boardWidth int) {
	p.X = boardWidth/2 - p.Shape.Width()/2
	p.Y = 0
}

// Clone returns a deep copy, safe to hand to a renderer.
func (p *Piece) Clone() Piece {
	c := *p
	c.Shape = p.Shape.Clone()
	return c
}

// rotatedPlacement returns the clockwise rotation and the x it would occupy,
// shifted left so the right edge stays on the board and clamped at column 0.
func (p *Piece) rotatedPlacement(boardWidth int) (Shape, int) {
	rotated := p.Shape.Rotate()
	return rotated, core.Clamp(p.X, 0, max(boardWidth-rotated.Width(), 0))
}
