package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition is returned when a Setup violates a position invariant.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrIllegalMove reports a move that is not legal in the position.
	ErrIllegalMove = errors.New("illegal move")
)

// PositionError says why a Setup was rejected.
type PositionError struct {
	Reason string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPosition, e.Reason)
}

func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

func invalidf(format string, args ...any) error {
	return &PositionError{Reason: fmt.Sprintf(format, args...)}
}

// MoveError wraps a move-related failure.
type MoveError struct {
	Move Move
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s: %v", e.Move, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
