package board

import (
	"errors"
	"fmt"
)

// ErrMalformedPosition indicates a position string that does not describe
// exactly eight ranks of exactly eight squares.
var ErrMalformedPosition = errors.New("malformed position")

// PositionError carries the location of a decoding failure.
// It unwraps to ErrMalformedPosition.
type PositionError struct {
	Rank   int    // 1-based index of the rank segment in the string, 0 if not applicable
	Text   string // offending segment or character
	Reason string
}

// Error returns a message naming the rank segment when known.
func (e *PositionError) Error() string {
	if e.Rank > 0 {
		return fmt.Sprintf("%s: rank segment %d %q: %s", ErrMalformedPosition, e.Rank, e.Text, e.Reason)
	}
	if e.Text != "" {
		return fmt.Sprintf("%s: %q: %s", ErrMalformedPosition, e.Text, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedPosition, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedPosition).
func (e *PositionError) Unwrap() error {
	return ErrMalformedPosition
}
