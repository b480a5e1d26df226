package grid

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/node"
)

// Deserialize builds a Grid from a text board: one line per row, one byte
// per cell, using the glyph alphabet node.Deserialize understands. Rows
// must all share the same width, or ErrMalformedBoard is returned.
//
// Wire cells are placed first without any local join bookkeeping, then a
// single global connected-component pass (labelGrid) assigns one shared
// *node.Wire per connected group — the two-pass labeling a from-scratch
// board needs, as opposed to the incremental local join a single Set call
// performs. Every node then gets one RecalculateIO pass in row-major order
// to establish gate/switch input sets, followed by one full Tick so every
// node's published output (gates included, not just wires) is valid before
// the caller's first tick.
func Deserialize(text string, opts ...GridOption) (*Grid, error) {
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(rows) == 0 {
		return nil, ErrMalformedBoard
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrMalformedBoard
		}
	}

	g, err := NewGrid(width, len(rows), opts...)
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		for x := 0; x < width; x++ {
			n := node.Deserialize(row[x])
			if n != nil {
				g.setCell(coord.Coord{X: x, Y: y}, n)
			}
		}
	}

	g.globalWireJoin()

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := coord.Coord{X: x, Y: y}
			if n := g.Get(c); n != nil {
				n.RecalculateIO(c, g)
			}
		}
	}

	g.Tick()
	return g, nil
}

// globalWireJoin replaces every individually-deserialized Wire with one
// shared instance per connected group, determined by 4-connectivity.
func (g *Grid) globalWireJoin() {
	groupOf := labelGrid(g.width, g.height, func(c coord.Coord) bool {
		_, ok := g.Get(c).(*node.Wire)
		return ok
	})

	wires := make(map[int]*node.Wire)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := groupOf[y][x]
			if idx < 0 {
				continue
			}
			w, ok := wires[idx]
			if !ok {
				w = node.NewWire()
				wires[idx] = w
			}
			g.setCell(coord.Coord{X: x, Y: y}, w)
		}
	}
}

// Serialize renders the board back to the text glyph alphabet, one row per
// line, '.' for an empty cell.
func (g *Grid) Serialize() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			n := g.cells[y][x]
			if n == nil {
				b.WriteByte('.')
				continue
			}
			b.WriteByte(n.Serialize())
		}
	}
	return b.String()
}

// portalAnnex is the JSON shape of PortalAnnex/LoadPortalAnnex:
// {"portals": {"<group-id>": [[x, y, index], ...]}}. index is an opaque
// ordinal preserved only for byte-for-byte round-trip fidelity; it plays
// no part in simulation.
type portalAnnex struct {
	Portals map[string][][3]int `json:"portals"`
}

// PortalAnnex marshals the grid's portal group assignments to JSON.
func (g *Grid) PortalAnnex() ([]byte, error) {
	out := portalAnnex{Portals: make(map[string][][3]int, len(g.portalGroups))}
	for group, members := range g.portalGroups {
		entries := make([][3]int, 0, len(members))
		for c := range members {
			entries = append(entries, [3]int{c.X, c.Y, g.portalIndex[c]})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i][2] < entries[j][2] })
		out.Portals[group] = entries
	}
	return json.Marshal(out)
}

// LoadPortalAnnex applies a JSON portal annex produced by PortalAnnex,
// assigning each listed coordinate's Portal to its group. A malformed
// annex, or an entry naming a cell that holds no Portal, is logged at Warn
// and otherwise ignored — loading a board never fails outright over a
// stale or corrupt annex.
func (g *Grid) LoadPortalAnnex(data []byte) {
	var parsed portalAnnex
	if err := json.Unmarshal(data, &parsed); err != nil {
		g.log().Warn("malformed portal annex", "error", err)
		return
	}
	for group, entries := range parsed.Portals {
		for _, entry := range entries {
			c := coord.Coord{X: entry[0], Y: entry[1]}
			if !g.SetPortalGroup(c, group) {
				g.log().Warn("portal annex entry does not name a portal cell", "coord", c.String(), "group", group)
				continue
			}
			g.portalIndex[c] = entry[2]
		}
	}
}
