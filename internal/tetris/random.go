package tetris

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Rand is the randomness the piece source needs. *rand.Rand satisfies it,
// so seeding one with a fixed value makes piece sequences reproducible.
type Rand interface {
	Intn(n int) int
}

// PieceSource deals pieces with a uniformly chosen shape and a color whose
// channels are uniform in [colorMin, colorMax].
type PieceSource struct {
	rng      Rand
	catalog  []Template
	colorMin int
	colorMax int
}

// NewPieceSource creates a source over the given catalog.
func NewPieceSource(rng Rand, catalog []Template, colorMin, colorMax int) (*PieceSource, error) {
	if len(catalog) == 0 {
		return nil, errors.New("tetris: shape catalog is empty")
	}
	for _, t := range catalog {
		if t.Shape.CellCount() == 0 {
			return nil, fmt.Errorf("tetris: shape %s has no cells", t.Kind)
		}
	}
	if colorMin < 0 || colorMax > 255 || colorMin > colorMax {
		return nil, fmt.Errorf("tetris: invalid color range [%d, %d]", colorMin, colorMax)
	}
	return &PieceSource{
		rng:      rng,
		catalog:  catalog,
		colorMin: colorMin,
		colorMax: colorMax,
	}, nil
}

// Next deals a new piece at the spawn position of a board of boardWidth.
func (s *PieceSource) Next(boardWidth int) *Piece {
	t := s.catalog[s.rng.Intn(len(s.catalog))]
	return NewPiece(t, s.color(), boardWidth)
}

func (s *PieceSource) color() core.RGB {
	return core.RGB{
		R: s.channel(),
		G: s.channel(),
		B: s.channel(),
	}
}

func (s *PieceSource) channel() uint8 {
	return uint8(s.colorMin + s.rng.Intn(s.colorMax-s.colorMin+1))
}
