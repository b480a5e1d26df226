package coord_test

import (
	"testing"

	"github.com/amfl/short-circuit/coord"
	"github.com/stretchr/testify/assert"
)

func TestAddAndInvert(t *testing.T) {
	c := coord.Coord{X: 3, Y: 4}
	d := coord.Coord{X: -1, Y: 2}
	assert.Equal(t, coord.Coord{X: 2, Y: 6}, c.Add(d))
	assert.Equal(t, coord.Coord{X: 1, Y: -2}, d.Invert())
	assert.Equal(t, d, d.Invert().Invert())
}

func TestNegative(t *testing.T) {
	assert.False(t, coord.Coord{X: 0, Y: 0}.Negative())
	assert.True(t, coord.Coord{X: -1, Y: 0}.Negative())
	assert.True(t, coord.Coord{X: 0, Y: -1}.Negative())
}

func TestDeltasFixedOrder(t *testing.T) {
	assert.Equal(t, coord.Coord{X: 0, Y: -1}, coord.Deltas[coord.Up])
	assert.Equal(t, coord.Coord{X: 1, Y: 0}, coord.Deltas[coord.Right])
	assert.Equal(t, coord.Coord{X: 0, Y: 1}, coord.Deltas[coord.Down])
	assert.Equal(t, coord.Coord{X: -1, Y: 0}, coord.Deltas[coord.Left])
}

func TestDirectionRotate(t *testing.T) {
	assert.Equal(t, coord.Right, coord.Up.Rotate(1))
	assert.Equal(t, coord.Left, coord.Up.Rotate(-1))
	assert.Equal(t, coord.Up, coord.Up.Rotate(4))
	assert.Equal(t, coord.Up, coord.Left.Rotate(1))
	assert.Equal(t, coord.Down, coord.Up.Rotate(6))
}

func TestDirectionOf(t *testing.T) {
	d, ok := coord.DirectionOf(coord.Coord{X: 1, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, coord.Right, d)

	_, ok = coord.DirectionOf(coord.Coord{X: 5, Y: 5})
	assert.False(t, ok)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Up", coord.Up.String())
	assert.Equal(t, "Right", coord.Right.String())
	assert.Equal(t, "Down", coord.Down.String())
	assert.Equal(t, "Left", coord.Left.String())
}
