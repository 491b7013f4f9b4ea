package editor

import "unicode/utf8"

// unsupported is the fixed set of control characters Insert rejects.
var unsupported = map[rune]bool{
	'\a': true, // BEL
	'\b': true, // BS
	'\f': true, // FF
	'\r': true, // CR
	'\v': true, // VT
}

// Insert splices s into the buffer at the cursor and advances the cursor
// past it. Validation is atomic: if s is not valid UTF-8 or contains a rune
// from the unsupported set, the error reports the first offending rune in
// scan order and nothing changes. An empty string is a no-op.
func (e *Editor) Insert(s string) error {
	if s == "" {
		return nil
	}
	if !utf8.ValidString(s) {
		return ErrInvalidEncoding
	}
	for _, r := range s {
		if unsupported[r] {
			return &UnsupportedCharError{Char: r}
		}
	}

	runes := []rune(s)
	text := make([]rune, 0, len(e.text)+len(runes))
	text = append(text, e.text[:e.cursor]...)
	text = append(text, runes...)
	text = append(text, e.text[e.cursor:]...)
	e.text = text
	e.cursor += len(runes)
	e.rewrap()
	return nil
}

// Delete removes the scalar value immediately ahead of the cursor; the
// cursor itself does not move. Deleting a separator merges the two logical
// lines. No-op at the end of the buffer.
func (e *Editor) Delete() {
	if e.cursor == len(e.text) {
		return
	}
	e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
	e.rewrap()
}

// Backspace removes the scalar value behind the cursor. No-op at offset 0.
func (e *Editor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.MoveLeft()
	e.Delete()
}
