package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrCoordOutOfBounds indicates a write targeted a coordinate outside
	// the grid's width/height.
	ErrCoordOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrDimensions indicates a non-positive width or height was requested.
	ErrDimensions = errors.New("grid: width and height must be positive")
	// ErrFloodTooLarge indicates a local wire join or break touched more
	// cells than the configured recursion limit allows.
	ErrFloodTooLarge = errors.New("grid: flood fill exceeded recursion limit")
	// ErrMalformedBoard indicates a text board could not be deserialized
	// (non-rectangular rows).
	ErrMalformedBoard = errors.New("grid: board rows must all have equal width")
)
