package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/mfelton/wrapedit/internal/editor"
)

// View renders an editor buffer. The zero value is not usable; use
// NewView.
type View struct {
	style  tcell.Style
	cursor tcell.Style
}

// NewView creates a view with default styles.
func NewView() *View {
	return &View{
		style:  tcell.StyleDefault,
		cursor: tcell.StyleDefault.Reverse(true),
	}
}

// Draw renders the buffer and its cursor onto the screen. The caller
// is responsible for committing the frame with Show.
func (v *View) Draw(s tcell.Screen, ed *editor.Editor) {
	s.Clear()

	cur := ed.Cursor()
	row := 0
	display := 0

	for lineNr, group := range ed.LogicalLines() {
		gutter := fmt.Sprintf("%d: ", lineNr)
		v.drawText(s, 0, row, v.style, gutter)
		offset := runewidth.StringWidth(gutter)

		for subNr, sub := range group {
			if display == cur.Line {
				row = v.drawCursorLine(s, offset, row, sub, cur.Col,
					subNr == len(group)-1, ed.LineLimit())
			} else {
				v.drawText(s, offset, row, v.style, sub)
			}
			row++
			display++
		}
	}

	v.drawText(s, 0, row+1, v.style, fmt.Sprintf("Cursor: %s", ed.LogicalCursor()))
}

// drawCursorLine renders the display line holding the cursor and
// returns the row the line ends on. A separator cursor adds a marker
// row below the last display line of its logical line.
func (v *View) drawCursorLine(s tcell.Screen, offset, row int, sub string, col int, lastSub bool, limit int) int {
	runes := []rune(sub)

	switch {
	case col < len(runes):
		x := v.drawText(s, offset, row, v.style, string(runes[:col]))
		x = v.drawRune(s, x, row, v.cursor, runes[col])
		v.drawText(s, x, row, v.style, string(runes[col+1:]))

	case col == limit:
		// On the separator after an exactly-full line: mark the break
		// on the next row.
		v.drawText(s, offset, row, v.style, sub)
		v.drawRune(s, offset, row+1, v.cursor, '/')
		if lastSub {
			row++
		}

	default:
		// Past the end of the line: highlight the empty cell.
		x := v.drawText(s, offset, row, v.style, sub)
		v.drawRune(s, x, row, v.cursor, ' ')
	}

	return row
}

// drawText writes a string starting at (x, y) and returns the x after
// the last cell, advancing by display width per rune.
func (v *View) drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		x = v.drawRune(s, x, y, style, r)
	}
	return x
}

func (v *View) drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) int {
	s.SetContent(x, y, r, nil, style)
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return x + w
}
