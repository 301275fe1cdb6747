package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is wrapped by the BoundsError panics raised on grid
	// access outside the matrix.
	ErrOutOfBounds = errors.New("grid access out of bounds")
	// ErrUnknownKind marks a piece code whose sub-kind is not a known color.
	ErrUnknownKind = errors.New("unknown piece kind")
	// ErrInvalidLayout marks level data that cannot build a grid.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrInvalidTransition is returned when the state machine is asked for a
	// transition its table does not allow.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrBadScript marks an unparseable replay script.
	ErrBadScript = errors.New("bad replay script")
)

// BoundsError describes an out-of-range grid access. Grid methods panic with
// it; callers are expected to check InBounds first.
type BoundsError struct {
	Op       string
	Col, Row int
	Size     int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s(%d,%d) outside %dx%d grid: %v", e.Op, e.Col, e.Row, e.Size, e.Size, ErrOutOfBounds)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
