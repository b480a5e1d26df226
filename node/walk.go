package node

import "github.com/amfl/short-circuit/coord"

// walkDirections calls fn once for every neighbor resolved from self in
// each of the four cardinal directions, after transparently walking through
// any WireBridge or Portal occupants along the way (see grid.Grid.Into). Shared
// by Nand and Switch, the two kinds whose RecalculateIO reaches out to
// register themselves on whatever node a cardinal direction ultimately
// resolves to.
func walkDirections(self coord.Coord, g Grid, fn func(delta coord.Coord, nb Neighbor)) {
	for _, delta := range coord.Deltas {
		for _, nb := range g.Into(self, delta) {
			fn(delta, nb)
		}
	}
}
