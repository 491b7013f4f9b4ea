package editor

// Movement operations adjust the cursor only; none of them mutate the
// buffer, and all are no-ops at the document boundaries.

// MoveLeft moves the cursor one scalar value left.
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the cursor one scalar value right.
func (e *Editor) MoveRight() {
	if e.cursor < len(e.text) {
		e.cursor++
	}
}

// MoveUp moves the cursor one display line up, keeping the column where
// possible. A cursor resting on the wrap boundary (column == limit) already
// denotes the position before the next line, so it first normalizes to
// column 0 one line down before stepping.
func (e *Editor) MoveUp() {
	pos := e.Cursor()
	pos.Line--
	if pos.Col == e.limit {
		pos.Col = 0
		pos.Line++
	}
	if pos.Line < 0 {
		pos.Line = 0
		pos.Col = 0
	}
	e.setWrapped(pos.Line, pos.Col)
}

// MoveDown moves the cursor one display line down, keeping the column where
// possible. The wrap-boundary column normalizes the same way as in MoveUp.
func (e *Editor) MoveDown() {
	pos := e.Cursor()
	if pos.Col == e.limit {
		pos.Col = 0
	}
	pos.Line++
	e.setWrapped(pos.Line, pos.Col)
}

// MoveHome places the cursor at the start of the document.
func (e *Editor) MoveHome() {
	e.cursor = 0
}

// MoveEnd places the cursor at the end of the document.
func (e *Editor) MoveEnd() {
	e.cursor = len(e.text)
}
