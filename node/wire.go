package node

import "github.com/amfl/short-circuit/coord"

// Wire is a conductor. Every cell of one connected wire group shares the
// same *Wire instance; the grid package is solely responsible for
// creating, merging, and retargeting Wire pointers — Wire itself never
// knows which cells hold it.
//
// Wire.RecalculateIO is deliberately left as base's no-op, matching
// shortcircuit/simnode.py's Wire class: a wire's input set is maintained
// by the active nodes that drive it (Nand, Switch calling InputAdd) and by
// the explicit union-of-inputs bookkeeping in grid's local wire join/break,
// never by the wire recomputing its own neighborhood.
type Wire struct {
	base

	signal     bool
	nextSignal bool
	inputs     map[Node]struct{}
}

// NewWire returns an unpowered Wire with no inputs.
func NewWire() *Wire {
	return &Wire{inputs: make(map[Node]struct{})}
}

// Output returns the wire's currently published signal.
func (w *Wire) Output() bool { return w.signal }

// Advance commits the previously computed next signal.
func (w *Wire) Advance() { w.signal = w.nextSignal }

// ComputeNext sets the next signal to the OR of every input's output.
func (w *Wire) ComputeNext() {
	w.nextSignal = false
	for in := range w.inputs {
		if in.Output() {
			w.nextSignal = true
			return
		}
	}
}

// InputAdd unconditionally accepts other as an input; a wire has no notion
// of an output-only direction to refuse.
func (w *Wire) InputAdd(other Node, _ coord.Coord) bool {
	w.inputs[other] = struct{}{}
	return true
}

// InputRemove drops other from the input set if present; removing an
// absent input is a no-op.
func (w *Wire) InputRemove(other Node) {
	delete(w.inputs, other)
}

// Inputs returns the live input set. Exported for the grid package, which
// needs to union and transplant input sets across merged wire groups
// without going through InputAdd/InputRemove one node at a time.
func (w *Wire) Inputs() map[Node]struct{} { return w.inputs }

// SetInputs replaces the input set wholesale — used when a wire join
// carries forward the union of the absorbed groups' inputs.
func (w *Wire) SetInputs(inputs map[Node]struct{}) { w.inputs = inputs }

// SetSignal forces the published signal directly, carrying forward a
// powered state across a join so placement never glitches to off for one
// tick.
func (w *Wire) SetSignal(signal bool) { w.signal = signal }

// Traverse returns the wire itself; wires are not transparent.
func (w *Wire) Traverse(g Grid, self coord.Coord, delta coord.Coord) []Neighbor {
	return identityTraverse(w, g, self, delta)
}

// Serialize returns '-'.
func (w *Wire) Serialize() byte { return glyphWire }
