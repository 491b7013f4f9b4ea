package editor

// displayCount returns the total number of display lines in the partition.
func (e *Editor) displayCount() int {
	n := 0
	for _, ll := range e.lines {
		n += len(ll)
	}
	return n
}

// displayLine returns the display line at the given flattened index.
func (e *Editor) displayLine(idx int) []rune {
	for _, ll := range e.lines {
		if idx < len(ll) {
			return ll[idx]
		}
		idx -= len(ll)
	}
	return nil
}

// Cursor returns the wrapped view of the cursor.
func (e *Editor) Cursor() WrappedPosition {
	return e.absoluteToWrapped(e.cursor)
}

// SetCursor moves the cursor to a wrapped position. A column beyond the
// line limit folds into following display lines using a virtual width of
// limit+1, the extra unit being the on-separator position. Out-of-range
// values clamp to the nearest valid location; negative components are
// rejected.
func (e *Editor) SetCursor(pos WrappedPosition) error {
	if pos.Line < 0 || pos.Col < 0 {
		return ErrCursorNegative
	}
	e.setWrapped(pos.Line, pos.Col)
	return nil
}

// LogicalCursor returns the cursor as a logical line and unbounded column.
func (e *Editor) LogicalCursor() LogicalPosition {
	return e.wrappedToLogical(e.absoluteToWrapped(e.cursor))
}

// setWrapped normalizes a non-negative wrapped position and stores the
// resulting absolute offset.
func (e *Editor) setWrapped(line, col int) {
	width := e.limit + 1
	line += col / width
	col %= width

	total := e.displayCount()
	if line >= total {
		line = total - 1
		col = len(e.displayLine(line))
	} else if n := len(e.displayLine(line)); col > n {
		col = n
	}
	e.cursor = e.wrappedToAbsolute(line, col)
}

// wrappedToAbsolute converts a normalized wrapped position into an absolute
// offset. It walks whole logical lines, charging one rune for the separator
// after each fully consumed one and nothing between display lines of the
// same logical line.
func (e *Editor) wrappedToAbsolute(line, col int) int {
	if len(e.text) == 0 {
		return 0
	}
	abs := 0
	remaining := line
	for _, ll := range e.lines {
		if remaining < len(ll) {
			for _, dl := range ll[:remaining] {
				abs += len(dl)
			}
			break
		}
		for _, dl := range ll {
			abs += len(dl)
		}
		remaining -= len(ll)
		abs++ // the separator after a fully consumed logical line
	}
	abs += col
	if abs > len(e.text) {
		abs = len(e.text)
	}
	return abs
}

// absoluteToWrapped converts an absolute offset into a wrapped position.
// An offset just past the last display line of a logical line reports as
// that line's end: the cursor sits on the separator. The same offset past a
// non-final display line belongs to the start of the next one.
func (e *Editor) absoluteToWrapped(abs int) WrappedPosition {
	if abs < 0 {
		abs = 0
	}
	if abs > len(e.text) {
		abs = len(e.text)
	}

	idx := 0
	running := 0
	for _, ll := range e.lines {
		for i, dl := range ll {
			start := running
			end := start + len(dl)
			last := i == len(ll)-1

			if abs < end {
				return WrappedPosition{Line: idx, Col: abs - start}
			}
			if abs == end && last {
				return WrappedPosition{Line: idx, Col: len(dl)}
			}

			running = end
			if last {
				running++ // separator
			}
			idx++
		}
	}

	// Unreachable for a consistent partition; clamp to the very end.
	lastLine := e.displayLine(idx - 1)
	return WrappedPosition{Line: idx - 1, Col: len(lastLine)}
}

// wrappedToLogical projects a wrapped position into logical coordinates by
// accumulating display line lengths within the logical line.
func (e *Editor) wrappedToLogical(w WrappedPosition) LogicalPosition {
	idx := 0
	for i, ll := range e.lines {
		chars := 0
		for _, dl := range ll {
			if idx == w.Line {
				return LogicalPosition{Line: i, Col: chars + w.Col}
			}
			chars += len(dl)
			idx++
		}
	}

	last := len(e.lines) - 1
	n := 0
	for _, dl := range e.lines[last] {
		n += len(dl)
	}
	return LogicalPosition{Line: last, Col: n}
}

// LogicalToWrapped converts a logical position into the wrapped position of
// the same buffer location, clamping out-of-range values. Use it with
// SetCursor to address the cursor in logical coordinates.
func (e *Editor) LogicalToWrapped(p LogicalPosition) WrappedPosition {
	line, col := p.Line, p.Col
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	if line >= len(e.lines) {
		line = len(e.lines) - 1
		ll := e.lines[line]
		col = 0
		for _, dl := range ll {
			col += len(dl)
		}
	}

	base := 0
	for _, ll := range e.lines[:line] {
		base += len(ll)
	}
	ll := e.lines[line]
	for i, dl := range ll {
		if i == len(ll)-1 {
			if col > len(dl) {
				col = len(dl)
			}
			return WrappedPosition{Line: base + i, Col: col}
		}
		if col < len(dl) {
			return WrappedPosition{Line: base + i, Col: col}
		}
		col -= len(dl)
	}
	return WrappedPosition{Line: base, Col: 0}
}
