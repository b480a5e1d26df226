package grid

import "github.com/amfl/short-circuit/node"

// Tick advances the whole board by one simulation step. Advancing happens
// in three passes rather than one combined compute-and-advance-as-you-go
// scan, so the result never depends on cell iteration order:
//
//  1. ComputeNext on every non-Wire node, reading only currently published
//     outputs (nothing has advanced yet, so no node observes a neighbor's
//     next-tick value early).
//  2. Advance every non-Wire node, publishing the values computed in (1).
//  3. ComputeNext then Advance every Wire, in that order, so a wire reads
//     the now-current outputs of whatever drives it (which may itself be
//     a gate that just advanced in step 2, or another wire that has not
//     yet advanced this tick — wires have no internal state dependency on
//     tick order among themselves beyond the inputs they were given).
//
// Switches have no ComputeNext/Advance effect (their signal only changes
// via an explicit toggle) but are swept harmlessly along with the other
// non-Wire nodes.
func (g *Grid) Tick() {
	g.log().Debug("grid tick", "width", g.width, "height", g.height)

	var wires []*node.Wire
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			n := g.cells[y][x]
			if n == nil {
				continue
			}
			if w, ok := n.(*node.Wire); ok {
				wires = append(wires, w)
				continue
			}
			n.ComputeNext()
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			n := g.cells[y][x]
			if n == nil {
				continue
			}
			if _, ok := n.(*node.Wire); ok {
				continue
			}
			n.Advance()
		}
	}

	seen := make(map[*node.Wire]bool, len(wires))
	for _, w := range wires {
		if seen[w] {
			continue
		}
		seen[w] = true
		w.ComputeNext()
		w.Advance()
	}
}
