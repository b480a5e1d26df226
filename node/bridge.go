package node

import "github.com/amfl/short-circuit/coord"

// WireBridge is a stateless, transparent pass-through: it has no signal of
// its own and is never a genuine electrical endpoint. It transmits
// between the two cells on whichever axis it is approached from, and is
// invisible from the perpendicular axis, because Traverse always forwards
// using the same delta it was approached with — a bridge queried from the
// left continues rightward; one queried from above continues downward;
// the two never cross.
type WireBridge struct {
	base
}

// NewWireBridge returns a WireBridge.
func NewWireBridge() *WireBridge { return &WireBridge{} }

// Output always reports false: nothing should ever electrically depend on
// a bridge's own output, only on what lies beyond it.
func (b *WireBridge) Output() bool { return false }

// Traverse forwards to whatever occupies self+delta, a single hop;
// grid.Grid.Into is responsible for continuing the walk if that cell is itself
// transparent.
func (b *WireBridge) Traverse(g Grid, self coord.Coord, delta coord.Coord) []Neighbor {
	next := self.Add(delta)
	n := g.Get(next)
	if n == nil {
		return nil
	}
	return []Neighbor{{Coord: next, Node: n, Back: delta.Invert()}}
}

// Serialize returns '|'.
func (b *WireBridge) Serialize() byte { return glyphWireBridge }
