// Package editor implements the dual-coordinate text buffer at the heart
// of wrapedit: one linear buffer of Unicode scalar values, a deterministic
// soft-wrap partition driven by a configurable line limit, and a single
// absolute cursor projected on demand into wrapped and logical coordinates.
//
// Coordinate systems:
//
//   - Absolute: an offset in [0, Len()], the sole ground truth for the
//     cursor. All other views are derived on read and never stored.
//   - Wrapped: (line, column) over the flattened, document-order sequence
//     of display lines. The column may equal the display line's length only
//     on the last display line of a logical line, where it denotes the
//     cursor sitting on the newline separator.
//   - Logical: (line, column) over newline-delimited logical lines; the
//     column spans the line's full content and is not capped by the width.
//
// Every mutation of the text or the line limit recomputes the wrap
// partition before returning, so no read ever observes a partition computed
// from different state.
//
// Basic usage:
//
//	ed, err := editor.New(10, editor.WithText("Hello World!"))
//	if err != nil {
//	    // invalid limit or rejected initial text
//	}
//	ed.Insert("!")
//	ed.MoveUp()
//	lines := ed.DisplayLines()
//
// The editor performs no internal locking; a multi-goroutine host must
// serialize all calls itself. Nothing in this package blocks or touches
// external resources.
package editor
