package editor

import (
	"errors"
	"fmt"
)

// Errors returned by editor operations.
var (
	// ErrLineLimitInvalid is returned for a non-positive line limit.
	ErrLineLimitInvalid = errors.New("line limit must be greater than 0")

	// ErrCursorNegative is returned when a cursor component is negative.
	// Out-of-range non-negative positions are clamped, not rejected.
	ErrCursorNegative = errors.New("cursor components must be non-negative")

	// ErrInvalidEncoding is returned when inserted text is not valid UTF-8.
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")

	// ErrStrategyNil is returned when constructing with a nil wrap strategy.
	ErrStrategyNil = errors.New("wrap strategy must not be nil")
)

// UnsupportedCharError reports an attempt to insert a control character the
// editor rejects. Char is the first offending rune of the inserted string.
type UnsupportedCharError struct {
	Char rune
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("unsupported character: %q", e.Char)
}
