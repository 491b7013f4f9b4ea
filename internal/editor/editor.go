package editor

import (
	"github.com/mfelton/wrapedit/internal/editor/wrap"
)

// Editor is a single-cursor text buffer with deterministic soft wrapping.
// The zero value is not usable; construct with New.
type Editor struct {
	text     []rune
	limit    int
	strategy wrap.Strategy

	// lines is the wrap partition: one entry per logical line, each a
	// non-empty sequence of display lines. It is recomputed synchronously
	// by every mutation of text or limit and is never read stale.
	lines [][][]rune

	// cursor is the absolute offset in [0, len(text)], the single source
	// of truth for the cursor position.
	cursor int
}

// New creates an editor with the given display width. The limit must be
// positive; options may seed initial text and select a wrap strategy.
func New(limit int, opts ...Option) (*Editor, error) {
	if limit <= 0 {
		return nil, ErrLineLimitInvalid
	}
	e := &Editor{
		limit:    limit,
		strategy: wrap.Greedy{},
	}
	e.rewrap()
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Text returns the full buffer content.
func (e *Editor) Text() string {
	return string(e.text)
}

// Len returns the buffer length in Unicode scalar values.
func (e *Editor) Len() int {
	return len(e.text)
}

// LineLimit returns the maximum display line width.
func (e *Editor) LineLimit() int {
	return e.limit
}

// SetLineLimit changes the display width and rewraps the buffer. Setting
// the current value is a no-op; a non-positive value is rejected.
func (e *Editor) SetLineLimit(limit int) error {
	if limit <= 0 {
		return ErrLineLimitInvalid
	}
	if limit == e.limit {
		return nil
	}
	e.limit = limit
	e.rewrap()
	return nil
}

// Clear resets the buffer to empty and the cursor to the origin, preserving
// the line limit. Safe to call repeatedly.
func (e *Editor) Clear() {
	e.text = nil
	e.cursor = 0
	e.rewrap()
}

// DisplayLines returns the flattened, document-order display lines.
func (e *Editor) DisplayLines() []string {
	out := make([]string, 0, e.displayCount())
	for _, ll := range e.lines {
		for _, dl := range ll {
			out = append(out, string(dl))
		}
	}
	return out
}

// LogicalLines returns the display lines grouped by logical line.
func (e *Editor) LogicalLines() [][]string {
	out := make([][]string, len(e.lines))
	for i, ll := range e.lines {
		group := make([]string, len(ll))
		for j, dl := range ll {
			group[j] = string(dl)
		}
		out[i] = group
	}
	return out
}

// rewrap recomputes the wrap partition from the current text and limit.
// Every mutator must call it before returning.
func (e *Editor) rewrap() {
	raw := splitLines(e.text)
	lines := make([][][]rune, len(raw))
	for i, l := range raw {
		lines[i] = e.strategy.Wrap(l, e.limit)
	}
	e.lines = lines
}

// splitLines splits text on newline separators. The separators belong to
// no line: N separators yield N+1 lines, so leading, trailing and
// consecutive newlines produce empty lines.
func splitLines(text []rune) [][]rune {
	var parts [][]rune
	start := 0
	for i, r := range text {
		if r == '\n' {
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	return append(parts, text[start:])
}
