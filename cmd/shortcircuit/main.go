// Command shortcircuit loads or creates a board, advances it a fixed number
// of ticks, and renders the result as a table — the batch-mode entry point
// for the tile-based digital logic sandbox. It does not implement the
// interactive terminal UI; see SPEC_FULL.md for that surface's scope.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/amfl/short-circuit/coord"
	"github.com/amfl/short-circuit/grid"
	"github.com/amfl/short-circuit/world"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"
)

func main() {
	file := flag.String("file", "", "load board state from file (otherwise creates an empty board)")
	width := flag.Int("width", 10, "width of a newly created board")
	height := flag.Int("height", 10, "height of a newly created board")
	ticks := flag.Int("ticks", 1, "number of ticks to advance before rendering")
	out := flag.String("out", "", "write the final board serialization to this file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	atexit.Register(func() { logger.Debug("shortcircuit exiting") })

	g, err := loadOrCreate(*file, *width, *height, logger)
	if err != nil {
		logger.Error("failed to load board", "error", err)
		atexit.Exit(1)
		return
	}

	w := world.NewWorld([]*grid.Grid{g}, world.WithLogger(logger))
	w.Submit(world.NewTick(*ticks))
	w.Submit(world.NewQuit())
	if err := w.Run(); err != nil {
		logger.Error("tick loop failed", "error", err)
		atexit.Exit(1)
		return
	}

	render(g)

	if *out != "" {
		if err := os.WriteFile(*out, []byte(g.Serialize()), 0o644); err != nil {
			logger.Error("failed to write board", "error", err, "path", *out)
			atexit.Exit(1)
			return
		}
	}

	atexit.Exit(0)
}

func loadOrCreate(path string, width, height int, logger *slog.Logger) (*grid.Grid, error) {
	if path == "" {
		return grid.NewGrid(width, height, grid.WithLogger(logger))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}
	return grid.Deserialize(string(data), grid.WithLogger(logger))
}

// render prints g as a bordered table, one row per board row and one column
// per cell, with '.' standing in for an empty cell.
func render(g *grid.Grid) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Board (%dx%d)", g.Width(), g.Height()))

	header := table.Row{""}
	for x := 0; x < g.Width(); x++ {
		header = append(header, x)
	}
	t.AppendHeader(header)

	for y := 0; y < g.Height(); y++ {
		row := table.Row{y}
		for x := 0; x < g.Width(); x++ {
			n := g.Get(coord.Coord{X: x, Y: y})
			if n == nil {
				row = append(row, ".")
				continue
			}
			row = append(row, string(n.Serialize()))
		}
		t.AppendRow(row)
	}

	t.Render()
}
