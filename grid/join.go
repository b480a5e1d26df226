package grid

import (
	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/node"
)

// joinWireAt absorbs every distinct Wire group directly adjacent to self
// (the four cardinal neighbors only — wires join on physical contact, not
// through a WireBridge or Portal) into w, the wire just placed at self.
// Absorbed groups contribute the union of their inputs and, if any member
// was powered, a powered starting signal, so a merge never glitches a
// previously-driven wire to off for one tick.
//
// The merge walks an explicit worklist rather than recursing: each absorbed
// group's cells are flood-filled and overwritten to point at w. Every
// non-wire node touching a flooded cell is collected as dirty and, once the
// flood finishes, has its own IO recalculated — a gate standing several
// cells from self that was driven by (or driving) one of the absorbed
// groups is otherwise left holding a stale pointer to a Wire object that no
// longer occupies any cell. w's published signal is then settled by one
// ComputeNext/Advance pass over its now-accurate input set. Returns
// ErrFloodTooLarge if a configured recursion limit is exceeded.
func (g *Grid) joinWireAt(self coord.Coord, w *node.Wire) error {
	seeds := make([]coord.Coord, 0, 4)
	absorbed := map[*node.Wire]bool{w: true}
	inputs := w.Inputs()
	powered := w.Output()

	for _, delta := range coord.Deltas {
		nb := self.Add(delta)
		if !g.InBounds(nb) {
			continue
		}
		other, ok := g.Get(nb).(*node.Wire)
		if !ok || absorbed[other] {
			continue
		}
		absorbed[other] = true
		seeds = append(seeds, nb)
		for in := range other.Inputs() {
			inputs[in] = struct{}{}
		}
		if other.Output() {
			powered = true
		}
	}
	if len(seeds) == 0 {
		return nil
	}

	w.SetInputs(inputs)
	w.SetSignal(powered)

	dirty := make(map[coord.Coord]node.Node)
	visited := map[coord.Coord]bool{self: true}
	worklist := append([]coord.Coord(nil), seeds...)
	visitCount := 0
	for len(worklist) > 0 {
		c := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if visited[c] {
			continue
		}
		visited[c] = true
		visitCount++
		if g.recursionLimit > 0 && visitCount > g.recursionLimit {
			return ErrFloodTooLarge
		}

		g.setCell(c, w)
		for _, delta := range coord.Deltas {
			next := c.Add(delta)
			if visited[next] || !g.InBounds(next) {
				continue
			}
			if other, ok := g.Get(next).(*node.Wire); ok {
				if other != w {
					worklist = append(worklist, next)
				}
				continue
			}
			if n := g.Get(next); n != nil {
				dirty[next] = n
			}
		}
	}

	recalculateDirty(g, dirty)
	w.ComputeNext()
	w.Advance()
	return nil
}
