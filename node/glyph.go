package node

import "github.com/amfl/short-circuit/coord"

// Glyph constants for the board text alphabet. Unknown glyphs map to empty
// cells rather than an error; a malformed board recovers silently.
const (
	glyphEmpty      = '.'
	glyphWire       = '-'
	glyphSwitchOff  = 'x'
	glyphSwitchOn   = 'o'
	glyphWireBridge = '|'
	glyphPortal     = 'P'
)

// nandGlyphs is indexed by coord.Direction (Up, Right, Down, Left), giving
// the unpowered glyph for a gate facing that direction; Serialize
// uppercases it when powered.
var nandGlyphs = [4]byte{
	coord.Up:    'u',
	coord.Right: 'r',
	coord.Down:  'd',
	coord.Left:  'l',
}

// Deserialize maps one glyph to a freshly constructed Node, or nil for an
// empty cell or an unrecognized glyph. Wire groups and IO are not
// established here — that is the grid package's job, via local or global
// wire join.
func Deserialize(glyph byte) Node {
	switch glyph {
	case glyphWire:
		return NewWire()
	case glyphSwitchOff:
		return NewSwitch(false)
	case glyphSwitchOn:
		return NewSwitch(true)
	case glyphWireBridge:
		return NewWireBridge()
	case glyphPortal:
		return NewPortal()
	}
	if d, signal, ok := nandGlyph(glyph); ok {
		n := NewNand()
		n.SetFacing(d)
		n.SetSignal(signal)
		return n
	}
	return nil
}

// nandGlyph reports the direction and powered state a NAND glyph encodes,
// case folding the uppercase "powered" variants.
func nandGlyph(glyph byte) (coord.Direction, bool, bool) {
	lower := glyph
	powered := false
	if glyph >= 'A' && glyph <= 'Z' {
		lower = glyph + ('a' - 'A')
		powered = true
	}
	for d, g := range nandGlyphs {
		if g == lower {
			return coord.Direction(d), powered, true
		}
	}
	return 0, false, false
}
