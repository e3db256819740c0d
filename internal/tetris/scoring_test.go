package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestScoreForLines(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{5, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreForLines(tt.lines), "lines=%d", tt.lines)
	}
}

func TestPieceSourceColorRange(t *testing.T) {
	src, err := NewPieceSource(rand.New(rand.NewSource(7)), Catalog, 100, 120)
	require.NoError(t, err)

	seen := map[Kind]bool{}
	for range 500 {
		p := src.Next(10)
		seen[p.Kind] = true
		for _, ch := range []uint8{p.Color.R, p.Color.G, p.Color.B} {
			assert.GreaterOrEqual(t, ch, uint8(100))
			assert.LessOrEqual(t, ch, uint8(120))
		}
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, 5-p.Shape.Width()/2, p.X)
	}
	assert.Len(t, seen, len(Catalog))
}

func TestPieceSourceRejectsBadInput(t *testing.T) {
	rng := &scriptedRand{}

	_, err := NewPieceSource(rng, nil, 0, 255)
	assert.Error(t, err)

	_, err = NewPieceSource(rng, []Template{{KindO, ParseShape("..")}}, 0, 255)
	assert.Error(t, err)

	_, err = NewPieceSource(rng, Catalog, 200, 100)
	assert.Error(t, err)

	_, err = NewPieceSource(rng, Catalog, 0, 256)
	assert.Error(t, err)
}

func TestPieceCloneIsIndependent(t *testing.T) {
	p := NewPiece(Catalog[KindT], core.RGB{R: 1}, 10)
	c := p.Clone()
	c.Shape[0][0] = true
	c.X = 0
	assert.False(t, p.Shape[0][0])
	assert.Equal(t, 4, p.X)
}
