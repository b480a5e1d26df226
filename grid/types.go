// Package grid treats a rectangular board of node.Node occupants as a small
// circuit: it owns cell storage, directional IO resolution through
// transparent occupants, wire-group maintenance on edit, the three-phase
// tick, and glyph/JSON serialization.
package grid

import (
	"log/slog"

	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/node"
)

// defaultRecursionLimit bounds a single local wire join or break's flood
// fill. Zero (the default before an option overrides it) means unbounded.
const defaultRecursionLimit = 0

// GridOption configures a Grid at construction time.
type GridOption func(*Grid)

// WithLogger injects a structured logger. Grid logs Set and Tick activity
// at Debug level. A nil logger (the default) falls back to slog.Default().
func WithLogger(logger *slog.Logger) GridOption {
	return func(g *Grid) { g.logger = logger }
}

// WithRecursionLimit bounds the number of cells a single local wire join or
// break may visit before it gives up and returns ErrFloodTooLarge. Zero (the
// default) means unbounded.
func WithRecursionLimit(limit int) GridOption {
	return func(g *Grid) { g.recursionLimit = limit }
}

// Grid is a fixed-size rectangular board of node.Node occupants. It is not
// safe for concurrent use from multiple goroutines: callers that need
// concurrent edits must serialize them externally (see world.World, whose
// message queue does this).
type Grid struct {
	width, height int
	cells         [][]node.Node // cells[y][x]

	// portalGroups indexes every coordinate currently assigned to a given
	// portal group id, so Portal.Traverse (via PortalGroupMembers) and the
	// JSON portal annex (serialize.go) don't need a linear board scan.
	portalGroups map[string]map[coord.Coord]struct{}
	// portalIndex carries forward each portal's ordinal position within its
	// group's JSON annex entry, purely for round-trip fidelity; it never
	// affects simulation.
	portalIndex map[coord.Coord]int

	logger         *slog.Logger
	recursionLimit int
}

// NewGrid returns an empty width x height Grid. Returns ErrDimensions if
// either dimension is not positive.
func NewGrid(width, height int, opts ...GridOption) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrDimensions
	}
	cells := make([][]node.Node, height)
	for y := range cells {
		cells[y] = make([]node.Node, width)
	}
	g := &Grid{
		width:          width,
		height:         height,
		cells:          cells,
		portalGroups:   make(map[string]map[coord.Coord]struct{}),
		portalIndex:    make(map[coord.Coord]int),
		recursionLimit: defaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// log returns the configured logger, or slog.Default() if none was set.
func (g *Grid) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c coord.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Get returns the node occupying c, or nil for an empty or out-of-bounds
// cell. Satisfies node.Grid.
func (g *Grid) Get(c coord.Coord) node.Node {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[c.Y][c.X]
}

// setCell writes n at c without bounds checking or any wire-group or IO
// bookkeeping; callers must already hold a validated, in-bounds c.
func (g *Grid) setCell(c coord.Coord, n node.Node) {
	g.cells[c.Y][c.X] = n
}
