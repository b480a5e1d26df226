package world_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/grid"
	"github.com/amfl/short-circuit/node"
	"github.com/amfl/short-circuit/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBoard = "r--\n-x-\n---"

func newTestWorld(t *testing.T) (*world.World, *grid.Grid) {
	t.Helper()
	g, err := grid.Deserialize(testBoard)
	require.NoError(t, err)
	w := world.NewWorld([]*grid.Grid{g})
	return w, g
}

func processOne(t *testing.T, w *world.World, msg world.Message) {
	t.Helper()
	w.Submit(msg)
	quit, err := w.ProcessOne()
	require.NoError(t, err)
	require.False(t, quit)
}

func TestTileSet_ReplacesCellWithDeserializedGlyph(t *testing.T) {
	w, g := newTestWorld(t)
	c := coord.Coord{X: 0, Y: 0}
	processOne(t, w, world.NewTileSet(0, c, '-'))
	_, ok := g.Get(c).(*node.Wire)
	assert.True(t, ok)
}

func TestNandRotate_AdvancesFacing(t *testing.T) {
	w, g := newTestWorld(t)
	c := coord.Coord{X: 0, Y: 0}
	processOne(t, w, world.NewNandRotate(0, c, 1))
	nand, ok := g.Get(c).(*node.Nand)
	require.True(t, ok)
	assert.Equal(t, coord.Down, nand.Facing())
}

func TestSwitchToggle_NilValueFlips(t *testing.T) {
	w, g := newTestWorld(t)
	c := coord.Coord{X: 1, Y: 1}
	sw, ok := g.Get(c).(*node.Switch)
	require.True(t, ok)
	require.False(t, sw.Output())

	processOne(t, w, world.NewSwitchToggle(0, c, nil))
	assert.True(t, sw.Output())
}

func TestSwitchToggle_ExplicitValueForces(t *testing.T) {
	w, g := newTestWorld(t)
	c := coord.Coord{X: 1, Y: 1}
	sw := g.Get(c).(*node.Switch)

	forced := false
	processOne(t, w, world.NewSwitchToggle(0, c, &forced))
	assert.False(t, sw.Output())
}

func TestTick_AdvancesEveryGrid(t *testing.T) {
	w, g := newTestWorld(t)
	nandCoord := coord.Coord{X: 0, Y: 0}
	before := g.Get(nandCoord).Output()

	processOne(t, w, world.NewTick(1))

	after := g.Get(nandCoord).Output()
	assert.NotEqual(t, before, after, "the tight-feedback clock should flip each tick")
}

func TestCopy_DuplicatesRegionWithFreshNodes(t *testing.T) {
	w, src := newTestWorld(t)
	dst, err := grid.NewGrid(3, 3)
	require.NoError(t, err)
	w2 := world.NewWorld([]*grid.Grid{src, dst})
	_ = w

	w2.Submit(world.NewCopy(0, coord.Coord{X: 0, Y: 0}, coord.Coord{X: 3, Y: 3}, 1, coord.Coord{X: 0, Y: 0}))
	quit, err := w2.ProcessOne()
	require.NoError(t, err)
	require.False(t, quit)

	srcWire := src.Get(coord.Coord{X: 1, Y: 0})
	dstWire := dst.Get(coord.Coord{X: 1, Y: 0})
	require.NotNil(t, srcWire)
	require.NotNil(t, dstWire)
	assert.NotSame(t, srcWire, dstWire, "copy must never alias the source Wire")

	_, ok := dst.Get(coord.Coord{X: 0, Y: 0}).(*node.Nand)
	assert.True(t, ok, "a duplicated gate keeps its kind")
}

func TestWriteBoard_PersistsSerialization(t *testing.T) {
	w, g := newTestWorld(t)
	path := filepath.Join(t.TempDir(), "board.txt")

	processOne(t, w, world.NewWriteBoard(0, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Serialize(), string(data))
}

func TestQuit_StopsProcessing(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Submit(world.NewQuit())
	quit, err := w.ProcessOne()
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestRun_DrainsUntilQuit(t *testing.T) {
	w, g := newTestWorld(t)
	c := coord.Coord{X: 1, Y: 1}
	w.Submit(world.NewSwitchToggle(0, c, nil))
	w.Submit(world.NewTick(1))
	w.Submit(world.NewQuit())

	require.NoError(t, w.Run())
	sw := g.Get(c).(*node.Switch)
	assert.True(t, sw.Output())
}

func TestGrid_OutOfRangeIndex(t *testing.T) {
	w, _ := newTestWorld(t)
	_, ok := w.Grid(5)
	assert.False(t, ok)
}
