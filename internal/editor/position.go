package editor

import "fmt"

// WrappedPosition is a cursor location over the flattened, document-order
// sequence of display lines. Line and Col are 0-indexed; Col counts Unicode
// scalar values.
type WrappedPosition struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p WrappedPosition) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// LogicalPosition is a cursor location over newline-delimited logical
// lines. Col is measured within the line's full concatenated content and
// may exceed the display width.
type LogicalPosition struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p LogicalPosition) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}
