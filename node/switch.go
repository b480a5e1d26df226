package node

import "github.com/amfl/short-circuit/coord"

// Switch is an external signal source: a plain on/off state toggled only
// by an explicit command, never by the tick. It has no input set — a
// switch is never driven by anything.
type Switch struct {
	base

	signal bool
}

// NewSwitch returns a Switch in the given initial state.
func NewSwitch(signal bool) *Switch {
	return &Switch{signal: signal}
}

// Output returns the switch's published signal.
func (s *Switch) Output() bool { return s.signal }

// Toggle flips the switch's signal, or forces it to *value when value is
// non-nil; the nil case inverts (see DESIGN.md for why).
func (s *Switch) Toggle(value *bool) {
	if value == nil {
		s.signal = !s.signal
		return
	}
	s.signal = *value
}

// RecalculateIO registers this switch as an input on every neighbor it
// reaches (transparently, through bridges and portals) in all four
// cardinal directions — a switch always drives, in every direction, since
// it has no facing.
func (s *Switch) RecalculateIO(self coord.Coord, g Grid) {
	walkDirections(self, g, func(_ coord.Coord, nb Neighbor) {
		if nb.Node == Node(s) {
			return
		}
		nb.Node.InputAdd(s, nb.Back)
	})
}

// Traverse returns the switch itself; switches are not transparent.
func (s *Switch) Traverse(g Grid, self coord.Coord, delta coord.Coord) []Neighbor {
	return identityTraverse(s, g, self, delta)
}

// Serialize returns 'o' when on, 'x' when off.
func (s *Switch) Serialize() byte {
	if s.signal {
		return glyphSwitchOn
	}
	return glyphSwitchOff
}
