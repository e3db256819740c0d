package tetris

import (
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell is one board position: empty, or filled with a color.
type Cell struct {
	Filled bool
	Color  core.RGB
}

// Board is the fixed-size playfield, indexed [row][col] with row 0 at the top.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.rows = make([][]Cell, height)
	for y := range b.rows {
		b.rows[y] = b.emptyRow()
	}
	return b
}

func (b *Board) emptyRow() []Cell {
	return make([]Cell, b.width)
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the cell at column x, row y. Out-of-range reads are empty.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.rows[y][x]
}

// Fill sets a single cell. Out-of-range writes are ignored.
func (b *Board) Fill(x, y int, color core.RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.rows[y][x] = Cell{Filled: true, Color: color}
}

// IsValid reports whether shape placed with its top-left at (x, y) stays
// inside the side walls, above the floor, and off filled cells.
// Cells above row 0 are open space: there is no ceiling check.
func (b *Board) IsValid(shape Shape, x, y int) bool {
	for i, row := range shape {
		for j, set := range row {
			if !set {
				continue
			}
			cx, cy := x+j, y+i
			if cy >= b.height || cx < 0 || cx >= b.width {
				return false
			}
			if cy >= 0 && b.rows[cy][cx].Filled {
				return false
			}
		}
	}
	return true
}

// Lock writes color into every set cell of shape at (x, y). The origin is
// first nudged one step at a time until the whole matrix is inside the board.
func (b *Board) Lock(shape Shape, x, y int, color core.RGB) {
	for y+shape.Height() > b.height && y > 0 {
		y--
	}
	for y < 0 {
		y++
	}
	for x+shape.Width() > b.width && x > 0 {
		x--
	}
	for x < 0 {
		x++
	}

	for i, row := range shape {
		for j, set := range row {
			if set {
				b.Fill(x+j, y+i, color)
			}
		}
	}
}

// FullRows returns the indices of completely filled rows, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y, row := range b.rows {
		if isFull(row) {
			full = append(full, y)
		}
	}
	return full
}

func isFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearRows removes the given rows and inserts as many empty rows at the
// top. Remaining rows keep their relative order. Duplicate and out-of-range
// indices are ignored.
func (b *Board) ClearRows(indices []int) int {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	removed := 0
	// Descending, so indices still to be removed stay valid.
	for i := len(sorted) - 1; i >= 0; i-- {
		y := sorted[i]
		if y < 0 || y >= b.height {
			continue
		}
		b.rows = slices.Delete(b.rows, y, y+1)
		removed++
	}

	for range removed {
		b.rows = slices.Insert(b.rows, 0, b.emptyRow())
	}
	return removed
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.rows {
		b.rows[y] = b.emptyRow()
	}
}
