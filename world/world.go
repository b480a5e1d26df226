// Package world wires a message queue to one or more grid.Grid boards: it
// is the dispatch layer an external UI or script submits edits through,
// translating each tagged Message into the corresponding grid operation.
package world

import (
	"log/slog"

	"github.com/amfl/short-circuit/grid"
)

// defaultQueueCapacity is the buffered channel size used when
// WithQueueCapacity is not given.
const defaultQueueCapacity = 64

// WorldOption configures a World at construction time.
type WorldOption func(*World)

// WithLogger injects a structured logger. A nil logger (the default) falls
// back to slog.Default().
func WithLogger(logger *slog.Logger) WorldOption {
	return func(w *World) { w.logger = logger }
}

// WithQueueCapacity sets the message queue's buffer size.
func WithQueueCapacity(capacity int) WorldOption {
	return func(w *World) { w.queueCapacity = capacity }
}

// World holds an ordered set of grids and the FIFO message queue that
// drives edits into them. Like grid.Grid, its dispatch side (ProcessOne,
// Run) must run on one goroutine at a time. Submit only sends on the queue
// channel, so it is the one piece of World that accepts concurrent
// producers (an external UI submitting edits while the dispatch loop
// drains them).
type World struct {
	grids         []*grid.Grid
	queue         chan Message
	logger        *slog.Logger
	queueCapacity int
}

// NewWorld returns a World over the given grids (indexed in the order
// given, matching the "index" field every message carries).
func NewWorld(grids []*grid.Grid, opts ...WorldOption) *World {
	w := &World{grids: grids, queueCapacity: defaultQueueCapacity}
	for _, opt := range opts {
		opt(w)
	}
	w.queue = make(chan Message, w.queueCapacity)
	return w
}

func (w *World) log() *slog.Logger {
	if w.logger != nil {
		return w.logger
	}
	return slog.Default()
}

// Grid returns the grid at index, or nil and false if index is out of
// range.
func (w *World) Grid(index int) (*grid.Grid, bool) {
	if index < 0 || index >= len(w.grids) {
		return nil, false
	}
	return w.grids[index], true
}

// Submit enqueues msg. Blocks if the queue is at capacity, the same
// backpressure a bounded FIFO queue gives any producer.
func (w *World) Submit(msg Message) {
	w.queue <- msg
}

// Run drains the queue, dispatching one message at a time, until a quit
// message is processed.
func (w *World) Run() error {
	for {
		quit, err := w.ProcessOne()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
