package world

import (
	"fmt"
	"os"

	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/node"
)

// ProcessOne blocks for the next queued message and dispatches it. Returns
// quit=true once a quit message has been applied; the caller should stop
// calling ProcessOne at that point.
func (w *World) ProcessOne() (quit bool, err error) {
	msg := <-w.queue
	return w.dispatch(msg)
}

func (w *World) dispatch(msg Message) (quit bool, err error) {
	switch msg.Kind {
	case KindTileSet:
		p := msg.TileSet
		w.log().Debug("world tile_set", "index", p.Index, "coord", p.Coord.String(), "glyph", string(p.Glyph))
		g, ok := w.Grid(p.Index)
		if !ok {
			return false, fmt.Errorf("tile_set: %w", ErrGridIndex)
		}
		if err := g.Set(p.Coord, node.Deserialize(p.Glyph)); err != nil {
			return false, fmt.Errorf("tile_set: %w", err)
		}

	case KindNandRotate:
		p := msg.NandRotate
		w.log().Debug("world nand_rotate", "index", p.Index, "coord", p.Coord.String(), "delta", p.Delta)
		g, ok := w.Grid(p.Index)
		if !ok {
			return false, fmt.Errorf("nand_rotate: %w", ErrGridIndex)
		}
		n := g.Get(p.Coord)
		if n == nil {
			return false, fmt.Errorf("nand_rotate: %w", ErrNoNode)
		}
		nand, ok := n.(*node.Nand)
		if !ok {
			return false, fmt.Errorf("nand_rotate: %w", ErrWrongKind)
		}
		nand.Rotate(p.Delta, p.Coord, g)

	case KindSwitchToggle:
		p := msg.SwitchToggle
		w.log().Debug("world switch_toggle", "index", p.Index, "coord", p.Coord.String())
		g, ok := w.Grid(p.Index)
		if !ok {
			return false, fmt.Errorf("switch_toggle: %w", ErrGridIndex)
		}
		n := g.Get(p.Coord)
		if n == nil {
			return false, fmt.Errorf("switch_toggle: %w", ErrNoNode)
		}
		sw, ok := n.(*node.Switch)
		if !ok {
			return false, fmt.Errorf("switch_toggle: %w", ErrWrongKind)
		}
		sw.Toggle(p.Value)

	case KindTick:
		p := msg.Tick
		count := p.Count
		if count <= 0 {
			count = 1
		}
		w.log().Debug("world tick", "count", count)
		for i := 0; i < count; i++ {
			for _, g := range w.grids {
				g.Tick()
			}
		}

	case KindCopy:
		if err := w.applyCopy(msg.Copy); err != nil {
			return false, fmt.Errorf("copy: %w", err)
		}

	case KindWriteBoard:
		p := msg.WriteBoard
		w.log().Debug("world write_board", "index", p.Index, "filepath", p.Filepath)
		g, ok := w.Grid(p.Index)
		if !ok {
			return false, fmt.Errorf("write_board: %w", ErrGridIndex)
		}
		if err := os.WriteFile(p.Filepath, []byte(g.Serialize()), 0o644); err != nil {
			return false, fmt.Errorf("write_board: %w", err)
		}

	case KindQuit:
		w.log().Debug("world quit")
		return true, nil
	}
	return false, nil
}

// applyCopy reads the Dims-sized region at From in the source grid and
// places a fresh duplicate of each non-empty cell into the destination
// grid at the matching offset from To, in row-major order — every copied
// cell goes through the ordinary Set local-join path exactly like any
// other edit, so a region that partially overlaps an existing wire group
// merges the same way an incremental edit would.
//
// Each duplicate is produced by round-tripping the source node through its
// own glyph (Serialize then node.Deserialize): wires and gates alike come
// out as brand-new objects, never aliased with the source, and a powered
// Nand's facing and signal survive the round trip because both are
// encoded in its glyph.
func (w *World) applyCopy(p *Copy) error {
	src, ok := w.Grid(p.FromIndex)
	if !ok {
		return ErrGridIndex
	}
	dst, ok := w.Grid(p.ToIndex)
	if !ok {
		return ErrGridIndex
	}

	for dy := 0; dy < p.Dims.Y; dy++ {
		for dx := 0; dx < p.Dims.X; dx++ {
			offset := coord.Coord{X: dx, Y: dy}
			from := p.From.Add(offset)
			n := src.Get(from)
			if n == nil {
				continue
			}
			to := p.To.Add(offset)
			if err := dst.Set(to, node.Deserialize(n.Serialize())); err != nil {
				return err
			}
		}
	}
	return nil
}
