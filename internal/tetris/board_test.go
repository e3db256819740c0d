package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fillRow fills row y except the listed columns.
func fillRow(b *Board, y int, holes ...int) {
	for x := 0; x < b.Width(); x++ {
		hole := false
		for _, h := range holes {
			if h == x {
				hole = true
			}
		}
		if !hole {
			b.Fill(x, y, core.RGB{R: uint8(y)})
		}
	}
}

func TestIsValid(t *testing.T) {
	b := NewBoard(10, 20)
	square := ParseShape("##", "##")

	assert.True(t, b.IsValid(square, 0, 0))
	assert.True(t, b.IsValid(square, 8, 18))

	// Walls and floor are checked.
	assert.False(t, b.IsValid(square, -1, 0))
	assert.False(t, b.IsValid(square, 9, 0))
	assert.False(t, b.IsValid(square, 0, 19))

	// Nothing above row 0 is checked.
	assert.True(t, b.IsValid(square, 0, -1))
	assert.True(t, b.IsValid(square, 0, -50))
	assert.False(t, b.IsValid(square, -1, -50))

	b.Fill(4, 10, core.RGB{})
	assert.False(t, b.IsValid(square, 3, 9))
	assert.True(t, b.IsValid(square, 5, 9))
}

func TestIsValidIgnoresEmptyMatrixCells(t *testing.T) {
	b := NewBoard(10, 20)
	tShape := ParseShape(".#.", "###")

	// Unset matrix cells may overlap filled board cells.
	b.Fill(0, 0, core.RGB{})
	assert.True(t, b.IsValid(tShape, 0, 0))
	b.Fill(1, 0, core.RGB{})
	assert.False(t, b.IsValid(tShape, 0, 0))
}

func TestLockClampsIntoBoard(t *testing.T) {
	b := NewBoard(10, 20)
	square := ParseShape("##", "##")

	b.Lock(square, 9, -3, core.RGB{R: 1})

	assert.True(t, b.Cell(8, 0).Filled)
	assert.True(t, b.Cell(9, 0).Filled)
	assert.True(t, b.Cell(8, 1).Filled)
	assert.True(t, b.Cell(9, 1).Filled)
	assert.Equal(t, core.RGB{R: 1}, b.Cell(9, 1).Color)

	b.Lock(square, -2, 25, core.RGB{G: 1})
	assert.True(t, b.Cell(0, 18).Filled)
	assert.True(t, b.Cell(1, 19).Filled)
}

func TestFullRows(t *testing.T) {
	b := NewBoard(4, 6)
	assert.Empty(t, b.FullRows())

	fillRow(b, 5)
	fillRow(b, 3)
	fillRow(b, 4, 2)

	assert.Equal(t, []int{3, 5}, b.FullRows())
}

func TestClearRowsKeepsOrder(t *testing.T) {
	b := NewBoard(4, 6)
	// Rows 1, 2 and 4 are partial markers; rows 3 and 5 are full.
	b.Fill(0, 1, core.RGB{R: 1})
	b.Fill(1, 2, core.RGB{R: 2})
	fillRow(b, 3)
	b.Fill(2, 4, core.RGB{R: 4})
	fillRow(b, 5)

	n := b.ClearRows(b.FullRows())
	require.Equal(t, 2, n)

	for x := 0; x < 4; x++ {
		assert.False(t, b.Cell(x, 0).Filled)
		assert.False(t, b.Cell(x, 1).Filled)
	}
	assert.Equal(t, core.RGB{R: 1}, b.Cell(0, 3).Color)
	assert.Equal(t, core.RGB{R: 2}, b.Cell(1, 4).Color)
	assert.Equal(t, core.RGB{R: 4}, b.Cell(2, 5).Color)
	assert.True(t, b.Cell(0, 3).Filled)
	assert.False(t, b.Cell(1, 3).Filled)
	assert.Empty(t, b.FullRows())
	assert.Equal(t, 6, b.Height())
}

func TestClearRowsIgnoresDuplicatesAndOutOfRange(t *testing.T) {
	b := NewBoard(4, 6)
	fillRow(b, 5)

	n := b.ClearRows([]int{5, 5, -1, 6})
	assert.Equal(t, 1, n)
	assert.Equal(t, 6, b.Height())
	assert.Empty(t, b.FullRows())
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(4, 4)
	fillRow(b, 2)
	b.Reset()
	assert.Empty(t, b.FullRows())
	assert.False(t, b.Cell(0, 2).Filled)
}
