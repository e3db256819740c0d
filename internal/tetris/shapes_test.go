package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShapes(t *testing.T) {
	assert.Len(t, Catalog, 7)
	for _, tmpl := range Catalog {
		assert.Equal(t, 4, tmpl.Shape.CellCount(), "shape %s", tmpl.Kind)
	}
	assert.Equal(t, 4, maxShapeWidth(Catalog))
}

func TestParseShape(t *testing.T) {
	s := ParseShape(".#", "##", "#")
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, 2, s.Width())
	assert.Equal(t, ".#\n##\n#.", s.String())
	assert.Equal(t, 0, Shape(nil).Width())
}

func TestRotateClockwise(t *testing.T) {
	tShape := ParseShape(".#.", "###")
	assert.Equal(t, "#.\n##\n#.", tShape.Rotate().String())

	line := ParseShape("####")
	rotated := line.Rotate()
	assert.Equal(t, 4, rotated.Height())
	assert.Equal(t, 1, rotated.Width())

	// Rotation returns a new matrix.
	assert.Equal(t, "####", line.String())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, tmpl := range Catalog {
		s := tmpl.Shape
		for range 4 {
			s = s.Rotate()
		}
		assert.True(t, s.Equal(tmpl.Shape), "shape %s after four rotations:\n%s", tmpl.Kind, s)
	}
}

func TestRotationalSymmetry(t *testing.T) {
	tests := []struct {
		kind   Kind
		period int
	}{
		{KindO, 1},
		{KindI, 2},
		{KindS, 2},
		{KindZ, 2},
		{KindT, 4},
		{KindL, 4},
		{KindJ, 4},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			orig := Catalog[tt.kind].Shape
			s := orig
			for step := 1; step <= 4; step++ {
				s = s.Rotate()
				if s.Equal(orig) {
					assert.Equal(t, tt.period, step)
					return
				}
			}
			t.Fatalf("shape %s never returned to spawn orientation", tt.kind)
		})
	}
}

func TestShapeCloneIsDeep(t *testing.T) {
	s := ParseShape("##")
	c := s.Clone()
	c[0][0] = false
	assert.True(t, s[0][0])
	assert.False(t, s.Equal(c))
}
