package grid

import (
	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/node"
)

// Set places n at c, replacing whatever occupied it (nil clears the cell).
// Returns ErrCoordOutOfBounds if c is outside the grid.
//
// Placement runs in five steps, mirroring the board editor's original
// sequence: withdraw the outgoing occupant from its direct neighbors'
// input sets; if it was a Wire, break its group into however many
// connected fragments the removal leaves behind; write the new occupant;
// if it is a Wire, join it with any directly adjacent Wire groups,
// otherwise let it compute its own IO. Finally every direct neighbor gets
// a chance to recompute its own IO, since the edit may have changed what a
// neighboring gate sees in that direction.
//
// Direct neighbor bookkeeping is deliberately not transparent (it does not
// walk through a WireBridge or Portal): a distant node's view of this edit
// is refreshed lazily, the next time that node's own IO is recalculated
// (e.g. by a later edit or an explicit nand_rotate).
func (g *Grid) Set(c coord.Coord, n node.Node) error {
	if !g.InBounds(c) {
		return ErrCoordOutOfBounds
	}

	old := g.Get(c)
	if old != nil {
		g.withdrawFromDirectNeighbors(c, old)
		if oldPortal, ok := old.(*node.Portal); ok {
			g.clearPortalIndex(c, oldPortal)
		}
		if oldWire, ok := old.(*node.Wire); ok {
			if err := g.breakWireAt(c, oldWire); err != nil {
				return err
			}
		}
	}

	g.setCell(c, n)
	g.log().Debug("grid set", "coord", c.String(), "glyph", glyphOf(n))

	if n != nil {
		if newWire, ok := n.(*node.Wire); ok {
			if err := g.joinWireAt(c, newWire); err != nil {
				return err
			}
		} else {
			n.RecalculateIO(c, g)
		}
	}

	g.refreshDirectNeighbors(c)
	return nil
}

// withdrawFromDirectNeighbors removes old from the input set of each of c's
// four direct neighbors, if present.
func (g *Grid) withdrawFromDirectNeighbors(c coord.Coord, old node.Node) {
	for _, delta := range coord.Deltas {
		nb := c.Add(delta)
		if n := g.Get(nb); n != nil {
			n.InputRemove(old)
		}
	}
}

// refreshDirectNeighbors re-runs RecalculateIO on each of c's four direct
// neighbors, letting a neighboring gate or switch notice whatever now
// occupies c.
func (g *Grid) refreshDirectNeighbors(c coord.Coord) {
	for _, delta := range coord.Deltas {
		nb := c.Add(delta)
		if n := g.Get(nb); n != nil {
			n.RecalculateIO(nb, g)
		}
	}
}

func glyphOf(n node.Node) string {
	if n == nil {
		return "."
	}
	return string(n.Serialize())
}
