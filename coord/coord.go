// Package coord provides the two-dimensional integer vector arithmetic
// shared by every other package in the module: cell positions, the four
// cardinal deltas in a fixed order, and the handful of operations
// (addition, inversion) that the grid, node, and world packages build on.
//
// Coord values are always non-negative when they name an actual grid cell;
// negative coordinates are valid as intermediate values (e.g. the result of
// subtracting two coords, or a delta) but never valid as a cell reference.
package coord

import "fmt"

// Direction indexes the four cardinal deltas in the fixed order the rest of
// the module depends on: Up, Right, Down, Left. A Nand's facing is stored
// as a Direction, and glyph tables are indexed by it directly.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// numDirections is the size of the fixed cardinal direction cycle.
const numDirections = 4

// String renders the direction name for logging and error messages.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Delta returns the unit Coord offset for this direction.
func (d Direction) Delta() Coord {
	return Deltas[d.normalize()]
}

// Rotate returns d advanced by n steps around the cardinal cycle (n may be
// negative); used by Nand rotation, which advances facing by an arbitrary
// signed delta modulo 4.
func (d Direction) Rotate(n int) Direction {
	return Direction((int(d) + n) % numDirections).normalize()
}

func (d Direction) normalize() Direction {
	n := int(d) % numDirections
	if n < 0 {
		n += numDirections
	}
	return Direction(n)
}

// Coord is a position in a Grid, or a delta between two positions.
type Coord struct {
	X, Y int
}

// Deltas holds the four cardinal unit offsets, indexed by Direction in the
// fixed order Up, Right, Down, Left.
var Deltas = [numDirections]Coord{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Add returns c + other, component-wise.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Invert returns the additive inverse of c: Add(c, c.Invert()) == Coord{}.
func (c Coord) Invert() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Negative reports whether either component of c is negative. Grid cells
// must never satisfy this; deltas routinely do.
func (c Coord) Negative() bool {
	return c.X < 0 || c.Y < 0
}

// String renders "(x,y)" for logging and test failure messages.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// DirectionOf returns the Direction whose delta equals delta, and whether
// one was found, translating a raw Coord offset back into a Direction.
func DirectionOf(delta Coord) (Direction, bool) {
	for d, dd := range Deltas {
		if dd == delta {
			return Direction(d), true
		}
	}
	return 0, false
}
