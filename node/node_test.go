package node_test

import (
	"testing"

	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/node"
	"github.com/stretchr/testify/assert"
)

// fakeGrid is a minimal node.Grid stand-in for exercising Traverse/IO logic
// without pulling in the grid package, the same way small in-memory graph
// fixtures are built for isolated unit tests rather than a full
// application.
type fakeGrid struct {
	cells  map[coord.Coord]node.Node
	groups map[string][]coord.Coord
}

func newFakeGrid() *fakeGrid {
	return &fakeGrid{cells: make(map[coord.Coord]node.Node), groups: make(map[string][]coord.Coord)}
}

func (g *fakeGrid) Get(c coord.Coord) node.Node { return g.cells[c] }

func (g *fakeGrid) Into(c coord.Coord, delta coord.Coord) []node.Neighbor {
	target := c.Add(delta)
	n := g.Get(target)
	if n == nil {
		return nil
	}
	return n.Traverse(g, target, delta)
}

func (g *fakeGrid) PortalGroupMembers(group string) []coord.Coord {
	return g.groups[group]
}

func TestWireComputeNextAndAdvance(t *testing.T) {
	w := node.NewWire()
	assert.False(t, w.Output())

	src := node.NewSwitch(true)
	w.InputAdd(src, coord.Coord{})
	w.ComputeNext()
	assert.False(t, w.Output(), "must not publish until Advance")
	w.Advance()
	assert.True(t, w.Output())

	w.InputRemove(src)
	w.ComputeNext()
	w.Advance()
	assert.False(t, w.Output())
}

func TestNandEmptyInputsComputesTrue(t *testing.T) {
	n := node.NewNand()
	n.ComputeNext()
	n.Advance()
	assert.True(t, n.Output())
}

func TestNandAllTrueInputsComputesFalse(t *testing.T) {
	n := node.NewNand()
	a, b := node.NewSwitch(true), node.NewSwitch(true)
	n.InputAdd(a, coord.Coord{})
	n.InputAdd(b, coord.Coord{})
	n.ComputeNext()
	n.Advance()
	assert.False(t, n.Output())
}

func TestNandOneFalseInputComputesTrue(t *testing.T) {
	n := node.NewNand()
	a, b := node.NewSwitch(true), node.NewSwitch(false)
	n.InputAdd(a, coord.Coord{})
	n.InputAdd(b, coord.Coord{})
	n.ComputeNext()
	n.Advance()
	assert.True(t, n.Output())
}

func TestNandInputAddRefusesOwnOutputDirection(t *testing.T) {
	n := node.NewNand()
	n.SetFacing(coord.Right)
	ok := n.InputAdd(node.NewSwitch(true), coord.Right.Delta())
	assert.False(t, ok)
	ok = n.InputAdd(node.NewSwitch(true), coord.Up.Delta())
	assert.True(t, ok)
}

func TestNandOutputsToFacingOnly(t *testing.T) {
	n := node.NewNand()
	n.SetFacing(coord.Down)
	assert.True(t, n.OutputsTo(coord.Down.Delta()))
	assert.False(t, n.OutputsTo(coord.Up.Delta()))
}

func TestNandRotate(t *testing.T) {
	g := newFakeGrid()
	n := node.NewNand()
	g.cells[coord.Coord{}] = n
	n.Rotate(1, coord.Coord{}, g)
	assert.Equal(t, coord.Right, n.Facing())
	n.Rotate(-2, coord.Coord{}, g)
	assert.Equal(t, coord.Left, n.Facing())
}

func TestSwitchToggle(t *testing.T) {
	s := node.NewSwitch(false)
	s.Toggle(nil)
	assert.True(t, s.Output())
	s.Toggle(nil)
	assert.False(t, s.Output())

	v := true
	s.Toggle(&v)
	assert.True(t, s.Output())
	v = false
	s.Toggle(&v)
	assert.False(t, s.Output())
}

func TestWireBridgeIsTransparentSingleHop(t *testing.T) {
	g := newFakeGrid()
	bridge := node.NewWireBridge()
	beyond := node.NewWire()
	g.cells[coord.Coord{X: 1, Y: 0}] = bridge
	g.cells[coord.Coord{X: 2, Y: 0}] = beyond

	refs := bridge.Traverse(g, coord.Coord{X: 1, Y: 0}, coord.Right.Delta())
	assert.Len(t, refs, 1)
	assert.Same(t, beyond, refs[0].Node)
	assert.Equal(t, coord.Left.Delta(), refs[0].Back)
}

func TestWireBridgeOutputAlwaysFalse(t *testing.T) {
	assert.False(t, node.NewWireBridge().Output())
}

func TestPortalGroupRoundTrip(t *testing.T) {
	p := node.NewPortal()
	_, ok := p.Group()
	assert.False(t, ok)

	p.SetGroup("g1")
	id, ok := p.Group()
	assert.True(t, ok)
	assert.Equal(t, "g1", id)

	p.ClearGroup()
	_, ok = p.Group()
	assert.False(t, ok)
}

func TestPortalTraverseResolvesPastEachSibling(t *testing.T) {
	g := newFakeGrid()
	p1 := node.NewPortal()
	p2 := node.NewPortal()
	p1.SetGroup("g1")
	p2.SetGroup("g1")
	c1, c2 := coord.Coord{X: 0, Y: 0}, coord.Coord{X: 5, Y: 5}
	beyond := node.NewWire()
	g.cells[c1] = p1
	g.cells[c2] = p2
	g.cells[coord.Coord{X: 6, Y: 5}] = beyond
	g.groups["g1"] = []coord.Coord{c1, c2}

	refs := p1.Traverse(g, c1, coord.Right.Delta())
	assert.Len(t, refs, 1)
	assert.Same(t, beyond, refs[0].Node)
	assert.Equal(t, coord.Coord{X: 6, Y: 5}, refs[0].Coord)
}

func TestPortalNoGroupIsIdentity(t *testing.T) {
	g := newFakeGrid()
	p := node.NewPortal()
	c := coord.Coord{X: 0, Y: 0}
	g.cells[c] = p
	refs := p.Traverse(g, c, coord.Up.Delta())
	assert.Len(t, refs, 1)
	assert.Same(t, p, refs[0].Node)
}

func TestDeserializeSerializeRoundTrip(t *testing.T) {
	glyphs := []byte{'.', '-', 'x', 'o', '|', 'P', 'u', 'r', 'd', 'l', 'U', 'R', 'D', 'L'}
	for _, g := range glyphs {
		n := node.Deserialize(g)
		if g == '.' {
			assert.Nil(t, n)
			continue
		}
		assert.NotNil(t, n, "glyph %q", string(g))
		assert.Equal(t, g, n.Serialize(), "glyph %q", string(g))
	}
}

func TestDeserializeUnknownGlyphIsEmpty(t *testing.T) {
	assert.Nil(t, node.Deserialize('?'))
}
