// Package render draws the editor buffer onto a tcell screen.
//
// The layout follows the buffer's display partition: each logical line
// gets a numbered gutter on its first display line, continuation lines
// are indented under it, and the cursor cell is drawn in reverse video.
// A cursor sitting on a line separator is marked with a "/" on the
// following row.
package render
