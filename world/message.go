package world

import "github.com/amfl/short-circuit/coord"

// Kind discriminates Message's active payload, the Go realization of the
// message queue's tagged-record surface: every Message carries exactly one
// populated payload field matching its Kind, except a quit Message, which
// carries none.
type Kind int

const (
	// KindTileSet places a deserialized glyph at a coordinate.
	KindTileSet Kind = iota
	// KindNandRotate advances a Nand's facing.
	KindNandRotate
	// KindSwitchToggle sets or flips a Switch.
	KindSwitchToggle
	// KindTick advances one or more grids by a tick count.
	KindTick
	// KindCopy duplicates a rectangular region from one grid into another
	// (or the same) grid.
	KindCopy
	// KindWriteBoard persists a grid's serialization to disk.
	KindWriteBoard
	// KindQuit terminates the message loop.
	KindQuit
)

// TileSet is the tile_set payload: place the node the glyph encodes at
// Coord in grid Index.
type TileSet struct {
	Index int
	Coord coord.Coord
	Glyph byte
}

// NandRotate is the nand_rotate payload: advance the Nand at Coord in grid
// Index by Delta steps (mod 4).
type NandRotate struct {
	Index int
	Coord coord.Coord
	Delta int
}

// SwitchToggle is the switch_toggle payload: set the Switch at Coord in
// grid Index to *Value, or flip it when Value is nil.
type SwitchToggle struct {
	Index int
	Coord coord.Coord
	Value *bool
}

// Tick is the tick payload: advance every grid by Count ticks. A Count of
// zero or less advances one tick.
type Tick struct {
	Count int
}

// Copy is the copy payload: read the Dims-sized rectangular region at From
// in grid FromIndex and place a fresh duplicate of each non-empty cell into
// grid ToIndex starting at To, in row-major order.
type Copy struct {
	FromIndex int
	From      coord.Coord
	Dims      coord.Coord
	ToIndex   int
	To        coord.Coord
}

// WriteBoard is the write_board payload: serialize grid Index and write it
// to Filepath.
type WriteBoard struct {
	Index    int
	Filepath string
}

// Message is one entry on a World's queue.
type Message struct {
	Kind         Kind
	TileSet      *TileSet
	NandRotate   *NandRotate
	SwitchToggle *SwitchToggle
	Tick         *Tick
	Copy         *Copy
	WriteBoard   *WriteBoard
}

// NewTileSet builds a tile_set Message.
func NewTileSet(index int, c coord.Coord, glyph byte) Message {
	return Message{Kind: KindTileSet, TileSet: &TileSet{Index: index, Coord: c, Glyph: glyph}}
}

// NewNandRotate builds a nand_rotate Message.
func NewNandRotate(index int, c coord.Coord, delta int) Message {
	return Message{Kind: KindNandRotate, NandRotate: &NandRotate{Index: index, Coord: c, Delta: delta}}
}

// NewSwitchToggle builds a switch_toggle Message. A nil value flips the
// switch; a non-nil value forces it.
func NewSwitchToggle(index int, c coord.Coord, value *bool) Message {
	return Message{Kind: KindSwitchToggle, SwitchToggle: &SwitchToggle{Index: index, Coord: c, Value: value}}
}

// NewTick builds a tick Message advancing every grid by count ticks (one
// tick when count is zero or less).
func NewTick(count int) Message {
	return Message{Kind: KindTick, Tick: &Tick{Count: count}}
}

// NewCopy builds a copy Message.
func NewCopy(fromIndex int, from, dims coord.Coord, toIndex int, to coord.Coord) Message {
	return Message{Kind: KindCopy, Copy: &Copy{FromIndex: fromIndex, From: from, Dims: dims, ToIndex: toIndex, To: to}}
}

// NewWriteBoard builds a write_board Message.
func NewWriteBoard(index int, filepath string) Message {
	return Message{Kind: KindWriteBoard, WriteBoard: &WriteBoard{Index: index, Filepath: filepath}}
}

// NewQuit builds a quit Message.
func NewQuit() Message {
	return Message{Kind: KindQuit}
}
