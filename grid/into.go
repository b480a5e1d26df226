package grid

import "github.com/amfl/short-circuit/coord"
import "github.com/amfl/short-circuit/node"

// Into resolves the neighbor reachable from c in direction delta,
// transparently walking through any chain of WireBridge and Portal
// occupants. It is the sole caller of node.Node.Traverse: each hop calls
// Traverse on whatever occupies the current cell, and a result is treated
// as terminal only when it is exactly the identity response (a node
// reporting itself, at its own coordinate) — anything else (a bridge
// forwarding one cell further, a portal fanning out to its group) is
// expanded again. A shared visited set makes the walk safe against portal
// cycles (two portals in the same group standing adjacent to each other)
// without Traverse itself needing any notion of a walk in progress.
func (g *Grid) Into(c coord.Coord, delta coord.Coord) []node.Neighbor {
	target := c.Add(delta)
	if !g.InBounds(target) {
		return nil
	}
	first := g.Get(target)
	if first == nil {
		return nil
	}

	type pending struct {
		node  node.Node
		coord coord.Coord
	}
	visited := map[coord.Coord]bool{c: true}
	stack := []pending{{first, target}}
	var out []node.Neighbor

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur.coord] {
			continue
		}

		refs := cur.node.Traverse(g, cur.coord, delta)
		visited[cur.coord] = true

		if len(refs) == 1 && refs[0].Coord == cur.coord && refs[0].Node == cur.node {
			out = append(out, refs[0])
			continue
		}
		for _, nb := range refs {
			if !visited[nb.Coord] {
				stack = append(stack, pending{nb.Node, nb.Coord})
			}
		}
	}
	return out
}

// PortalGroupMembers returns every coordinate currently assigned to group.
// Satisfies node.Grid.
func (g *Grid) PortalGroupMembers(group string) []coord.Coord {
	members := g.portalGroups[group]
	if len(members) == 0 {
		return nil
	}
	out := make([]coord.Coord, 0, len(members))
	for c := range members {
		out = append(out, c)
	}
	return out
}

// SetPortalGroup assigns the Portal at c to group, updating both the node
// and the grid's group index. Returns false if c holds no Portal.
func (g *Grid) SetPortalGroup(c coord.Coord, group string) bool {
	p, ok := g.Get(c).(*node.Portal)
	if !ok {
		return false
	}
	g.clearPortalIndex(c, p)
	p.SetGroup(group)
	if g.portalGroups[group] == nil {
		g.portalGroups[group] = make(map[coord.Coord]struct{})
	}
	g.portalGroups[group][c] = struct{}{}
	return true
}

// ClearPortalGroup removes the Portal at c from its group, if any.
func (g *Grid) ClearPortalGroup(c coord.Coord) {
	p, ok := g.Get(c).(*node.Portal)
	if !ok {
		return
	}
	g.clearPortalIndex(c, p)
	p.ClearGroup()
}

func (g *Grid) clearPortalIndex(c coord.Coord, p *node.Portal) {
	if old, ok := p.Group(); ok {
		delete(g.portalGroups[old], c)
		if len(g.portalGroups[old]) == 0 {
			delete(g.portalGroups, old)
		}
	}
}
