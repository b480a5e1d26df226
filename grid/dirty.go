package grid

import (
	"sort"

	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/node"
)

// recalculateDirty calls RecalculateIO on every node in dirty, in a
// deterministic row-major order. Both joinWireAt and breakWireAt collect
// dirty as they flood: a non-wire node discovered touching a flooded cell
// still holds whatever IO state it last computed against the Wire pointer
// that occupied that cell before the flood — recalculating it here lets it
// re-register itself (InputAdd/InputRemove) against whichever Wire or
// fragment actually occupies that cell now, instead of staying silently
// stale until some unrelated later edit happens to touch it.
func recalculateDirty(g *Grid, dirty map[coord.Coord]node.Node) {
	if len(dirty) == 0 {
		return
	}
	coords := make([]coord.Coord, 0, len(dirty))
	for c := range dirty {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	for _, c := range coords {
		dirty[c].RecalculateIO(c, g)
	}
}
