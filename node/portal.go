package node

import "github.com/amfl/short-circuit/coord"

// Portal belongs to zero or one portal group, addressed by an opaque group
// id. Portals sharing a group behave electrically as one wire cell: a
// signal entering any portal of the group appears at every other member. A
// Portal carries no signal state of its own — connectivity through it is
// realized entirely by grid.Grid.Into's transparent resolution, the same way a
// WireBridge carries no state.
type Portal struct {
	base

	group *string
}

// NewPortal returns a Portal with no assigned group.
func NewPortal() *Portal { return &Portal{} }

// Group returns the portal's assigned group id, if any.
func (p *Portal) Group() (string, bool) {
	if p.group == nil {
		return "", false
	}
	return *p.group, true
}

// SetGroup assigns the portal to group id.
func (p *Portal) SetGroup(id string) {
	g := id
	p.group = &g
}

// ClearGroup removes the portal from any group.
func (p *Portal) ClearGroup() { p.group = nil }

// Traverse treats every other member of this portal's group as if it stood
// physically where self stands: for each sibling it looks one cell further
// in direction delta, exactly as a WireBridge would from that sibling's own
// position, and reports whatever occupies that cell as a resolved neighbor.
// With no assigned group a portal is an ordinary, opaque cell. grid.Grid.Into
// performs any deeper transparent resolution beyond what is found here
// (e.g. a bridge standing just past a sibling), using its own cycle-safe
// walk rather than recursing through Traverse.
func (p *Portal) Traverse(g Grid, self coord.Coord, delta coord.Coord) []Neighbor {
	group, ok := p.Group()
	if !ok {
		return identityTraverse(p, g, self, delta)
	}
	var out []Neighbor
	for _, sibling := range g.PortalGroupMembers(group) {
		if sibling == self {
			continue
		}
		beyond := sibling.Add(delta)
		if n := g.Get(beyond); n != nil {
			out = append(out, Neighbor{Coord: beyond, Node: n, Back: delta.Invert()})
		}
	}
	return out
}

// Serialize returns 'P'.
func (p *Portal) Serialize() byte { return glyphPortal }
