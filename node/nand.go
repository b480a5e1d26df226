package node

import "github.com/amfl/short-circuit/coord"

// Nand is a two-state gate with a facing direction: exactly one neighbor
// direction is its output, the other three are candidate inputs. An empty
// input set computes true, as a special case (see ComputeNext).
type Nand struct {
	base

	signal     bool
	nextSignal bool
	facing     coord.Direction
	inputs     map[Node]struct{}
}

// NewNand returns an unpowered Nand facing Up with no inputs.
func NewNand() *Nand {
	return &Nand{inputs: make(map[Node]struct{})}
}

// Output returns the gate's currently published signal.
func (n *Nand) Output() bool { return n.signal }

// Advance commits the previously computed next signal.
func (n *Nand) Advance() { n.signal = n.nextSignal }

// ComputeNext sets the next signal to NOT(AND(inputs...)). An empty input
// set computes true directly, rather than folding an empty AND to true and
// then negating it to false.
func (n *Nand) ComputeNext() {
	if len(n.inputs) == 0 {
		n.nextSignal = true
		return
	}
	for in := range n.inputs {
		if !in.Output() {
			n.nextSignal = true
			return
		}
	}
	n.nextSignal = false
}

// Facing returns the gate's current output direction.
func (n *Nand) Facing() coord.Direction { return n.facing }

// SetFacing sets the gate's output direction directly, without recomputing
// IO. Used by deserialization, which recomputes IO globally afterwards.
func (n *Nand) SetFacing(d coord.Direction) { n.facing = d }

// SetSignal sets the published signal directly. Used by deserialization to
// restore a powered glyph's state before the first recalculation pass.
func (n *Nand) SetSignal(signal bool) { n.signal = signal }

// OutputsTo reports whether delta equals the gate's facing direction.
func (n *Nand) OutputsTo(delta coord.Coord) bool {
	return n.facing.Delta() == delta
}

// InputAdd refuses a connection along this gate's own output direction;
// otherwise it accepts other as an input.
func (n *Nand) InputAdd(other Node, delta coord.Coord) bool {
	if n.OutputsTo(delta) {
		return false
	}
	n.inputs[other] = struct{}{}
	return true
}

// InputRemove drops other from the input set if present.
func (n *Nand) InputRemove(other Node) {
	delete(n.inputs, other)
}

// RecalculateIO rebuilds the gate's input set and notifies every resolved
// neighbor of the four cardinal directions: the one equal to facing is
// driven (registered as an input on that neighbor); the other three are
// consulted for whether they output back towards this gate.
//
// The outputs set guards a tight-feedback case: a neighbor that is
// simultaneously this gate's output and (through another path) a candidate
// input must not be removed from its own input set after being added as
// one.
func (n *Nand) RecalculateIO(self coord.Coord, g Grid) {
	n.inputs = make(map[Node]struct{})
	outputs := make(map[Node]struct{})

	walkDirections(self, g, func(delta coord.Coord, nb Neighbor) {
		if nb.Node == Node(n) {
			return
		}
		if n.OutputsTo(delta) {
			if nb.Node.InputAdd(n, nb.Back) {
				outputs[nb.Node] = struct{}{}
			}
			return
		}
		if _, isOutput := outputs[nb.Node]; !isOutput {
			nb.Node.InputRemove(n)
		}
		if nb.Node.OutputsTo(nb.Back) {
			n.inputs[nb.Node] = struct{}{}
		}
	})
}

// Rotate advances facing by delta (mod 4) and recomputes IO at self's
// coordinate in g.
func (n *Nand) Rotate(delta int, self coord.Coord, g Grid) {
	n.facing = n.facing.Rotate(delta)
	n.RecalculateIO(self, g)
}

// Traverse returns the gate itself; gates are not transparent.
func (n *Nand) Traverse(g Grid, self coord.Coord, delta coord.Coord) []Neighbor {
	return identityTraverse(n, g, self, delta)
}

// Serialize returns the facing glyph, uppercased when powered.
func (n *Nand) Serialize() byte {
	glyph := nandGlyphs[n.facing]
	if n.Output() {
		return glyph - ('a' - 'A')
	}
	return glyph
}
