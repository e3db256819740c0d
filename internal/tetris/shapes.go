package tetris

import "strings"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a rectangular occupancy matrix, indexed [row][col].
// Shapes are treated as immutable; Rotate returns a new matrix.
type Shape [][]bool

// ParseShape builds a shape from rows where '#' marks a set cell.
// Rows are padded to the longest row.
func ParseShape(rows ...string) Shape {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	shape := make(Shape, len(rows))
	for i, row := range rows {
		shape[i] = make([]bool, width)
		for j, ch := range row {
			shape[i][j] = ch == '#'
		}
	}
	return shape
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90 degrees clockwise: the transpose of
// the row-reversed matrix. Width and height swap; s is not modified.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for i := range w {
		rotated[i] = make([]bool, h)
		for j := range h {
			rotated[i][j] = s[h-1-j][i]
		}
	}
	return rotated
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for i, row := range s {
		c[i] = append([]bool(nil), row...)
	}
	return c
}

// Equal reports whether both shapes have the same size and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// CellCount returns the number of set cells.
func (s Shape) CellCount() int {
	n := 0
	for _, row := range s {
		for _, set := range row {
			if set {
				n++
			}
		}
	}
	return n
}

// String renders the shape with '#' and '.' for debugging and tests.
func (s Shape) String() string {
	var b strings.Builder
	for i, row := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, set := range row {
			if set {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Template is a catalog entry: a kind and its spawn orientation.
type Template struct {
	Kind  Kind
	Shape Shape
}

// Catalog lists the seven tetrominoes in spawn orientation.
var Catalog = []Template{
	{KindI, ParseShape("####")},
	{KindO, ParseShape("##", "##")},
	{KindT, ParseShape(".#.", "###")},
	{KindL, ParseShape("#..", "###")},
	{KindJ, ParseShape("..#", "###")},
	{KindS, ParseShape(".##", "##.")},
	{KindZ, ParseShape("##.", ".##")},
}

// maxShapeWidth returns the widest shape of any orientation in catalog.
func maxShapeWidth(catalog []Template) int {
	w := 0
	for _, t := range catalog {
		w = max(w, t.Shape.Width(), t.Shape.Height())
	}
	return w
}
