package world

import "errors"

// Sentinel errors for world message dispatch.
var (
	// ErrGridIndex indicates a message named a grid index the World does
	// not have.
	ErrGridIndex = errors.New("world: grid index out of range")
	// ErrNoNode indicates a message's coordinate holds no node.
	ErrNoNode = errors.New("world: coordinate holds no node")
	// ErrWrongKind indicates a message targeted a coordinate whose
	// occupant is not the kind that message expects (e.g. nand_rotate
	// against a cell that is not a Nand).
	ErrWrongKind = errors.New("world: node at coordinate is the wrong kind for this message")
)
