// Package node defines the polymorphic family of tile occupants — Wire,
// Nand, Switch, WireBridge, and Portal — behind one Node interface: output,
// advance, compute-next, directional IO recomputation, input mutation, and
// glyph serialization.
//
// Every concrete kind embeds base, which supplies the interface's default
// behavior. A kind only overrides the methods where its behavior actually
// differs from the default, the same way core.Vertex and core.Edge in the
// teacher keep their method surface small and composed rather than
// repeating boilerplate per type.
package node

import "github.com/amfl/short-circuit/coord"

// Grid is the minimal surface a Node needs from its container to recompute
// its own IO. grid.Grid satisfies it; the interface lives here (not in
// package grid) so that node has no import-cycle dependency on grid.
type Grid interface {
	// Get returns the node occupying coord, or nil for an empty or
	// out-of-bounds cell.
	Get(c coord.Coord) Node
	// Into resolves the neighbor reachable from coord in direction delta,
	// transparently walking through WireBridge and Portal occupants.
	// Each returned Neighbor names a node and the direction a node
	// standing at that neighbor's own coordinate would use to look back
	// towards the origin of the walk.
	Into(c coord.Coord, delta coord.Coord) []Neighbor
	// PortalGroupMembers returns every coordinate currently assigned to
	// the given portal group id.
	PortalGroupMembers(group string) []coord.Coord
}

// Neighbor is one resolved endpoint of a directional walk through the grid.
type Neighbor struct {
	// Coord is where Node actually lives.
	Coord coord.Coord
	// Node is the occupant found there. Never nil (empty/out-of-bounds
	// cells are simply omitted from a walk's results).
	Node Node
	// Back is the direction a node standing at Coord would use to reach
	// back towards the walk's origin. Bridges and portals forward along
	// the same delta they were queried with, so for a direct neighbor and
	// for one resolved through a bridge or portal hop alike this is the
	// inverse of the original query delta (see grid.Grid.Into).
	Back coord.Coord
}

// Node is the uniform contract every tile occupant satisfies.
type Node interface {
	// Output returns the currently published signal.
	Output() bool
	// Advance commits a previously computed next-signal to the current
	// signal. A no-op for stateless kinds.
	Advance()
	// ComputeNext computes the next signal from the current outputs of
	// this node's own input set. A no-op for kinds with no inputs.
	ComputeNext()
	// RecalculateIO rebuilds this node's input set (if it has one) and
	// registers or withdraws itself from the input sets of neighbors it
	// drives, given its own coordinate in g.
	RecalculateIO(self coord.Coord, g Grid)
	// InputAdd attempts to add other as one of this node's inputs, where
	// delta is the direction from this node back towards other. Returns
	// false if this node refuses the connection (e.g. because delta
	// points along this node's own output direction).
	InputAdd(other Node, delta coord.Coord) bool
	// InputRemove drops other from this node's input set, if present.
	// Removing an absent input is a no-op, never an error.
	InputRemove(other Node)
	// OutputsTo reports whether this node drives a signal in direction
	// delta from its own cell.
	OutputsTo(delta coord.Coord) bool
	// Traverse returns the node a neighbor should see when looking at
	// this node's cell from direction delta — identity for most kinds,
	// transparent pass-through for WireBridge and Portal. grid.Grid.Into is
	// the only caller; most Node implementations never need to call it.
	Traverse(g Grid, self coord.Coord, delta coord.Coord) []Neighbor
	// Serialize returns this node's single-character glyph.
	Serialize() byte
}

// base supplies every Node method's default behavior. Concrete kinds embed
// it and override only what they need.
type base struct{}

func (base) Output() bool    { return false }
func (base) Advance()        {}
func (base) ComputeNext()    {}
func (base) InputRemove(Node) {}

func (base) RecalculateIO(coord.Coord, Grid) {}

func (base) InputAdd(Node, coord.Coord) bool { return false }

func (base) OutputsTo(coord.Coord) bool { return true }

// identityTraverse is the default Traverse implementation: a node is its
// own, unique neighbor when looked at directly.
func identityTraverse(self Node, g Grid, selfCoord coord.Coord, delta coord.Coord) []Neighbor {
	back := delta.Invert()
	return []Neighbor{{Coord: selfCoord, Node: self, Back: back}}
}
