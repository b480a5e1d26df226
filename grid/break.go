package grid

import (
	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/node"
)

// breakWireAt runs when old, the Wire previously occupying self, is about
// to be removed or replaced. self has not yet been overwritten when this
// is called; it still reads back as old, so the floods below correctly
// treat it as a hole rather than flowing back through it.
//
// Each of self's remaining direct Wire neighbors still sharing old starts
// its own flood fill into a freshly allocated, empty Wire fragment — up to
// four fragments in the worst case (one per cardinal direction), each
// scoped to whichever region the removal actually left connected. A
// neighbor already folded into an earlier fragment's flood is skipped.
//
// A fragment starts with no inputs of its own: every non-wire node touching
// a flooded cell (a gate driving, or driven by, the wire that used to
// occupy that cell) is collected as dirty instead, and once every flood
// finishes, each dirty node's IO is recalculated so it re-registers itself
// against whichever fragment now actually sits where old used to be —
// mirroring the original board's "collect dirty nodes, then recalculate"
// break sequence rather than copying old's combined input set onto every
// fragment regardless of which side of the break it ended up on. Each
// fragment's published signal is then settled by its own ComputeNext/
// Advance pass over whatever inputs that recalculation gave it.
func (g *Grid) breakWireAt(self coord.Coord, old *node.Wire) error {
	visited := map[coord.Coord]bool{self: true}
	dirty := make(map[coord.Coord]node.Node)
	var fragments []*node.Wire
	visitCount := 0

	for _, delta := range coord.Deltas {
		start := self.Add(delta)
		if !g.InBounds(start) || visited[start] {
			continue
		}
		if other, ok := g.Get(start).(*node.Wire); !ok || other != old {
			continue
		}

		fragment := node.NewWire()
		fragments = append(fragments, fragment)

		worklist := []coord.Coord{start}
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

			g.setCell(c, fragment)
			for _, d2 := range coord.Deltas {
				next := c.Add(d2)
				if next == self || !g.InBounds(next) || visited[next] {
					continue
				}
				if other, ok := g.Get(next).(*node.Wire); ok {
					if other == old {
						worklist = append(worklist, next)
					}
					continue
				}
				if n := g.Get(next); n != nil {
					dirty[next] = n
				}
			}
		}
	}

	recalculateDirty(g, dirty)
	for _, fragment := range fragments {
		fragment.ComputeNext()
		fragment.Advance()
	}
	return nil
}
