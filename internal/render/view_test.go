package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/mfelton/wrapedit/internal/editor"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	s.SetSize(40, 12)
	t.Cleanup(s.Fini)
	return s
}

func mustEditor(t *testing.T, limit int, opts ...editor.Option) *editor.Editor {
	t.Helper()
	ed, err := editor.New(limit, opts...)
	if err != nil {
		t.Fatalf("editor.New failed: %v", err)
	}
	return ed
}

// rowText reads a screen row back as a string, trailing blanks trimmed.
func rowText(s tcell.SimulationScreen, y int) string {
	width, _ := s.Size()
	var b strings.Builder
	for x := 0; x < width; {
		r, _, _, w := s.GetContent(x, y)
		b.WriteRune(r)
		if w < 1 {
			w = 1
		}
		x += w
	}
	return strings.TrimRight(b.String(), " ")
}

func isReversed(s tcell.SimulationScreen, x, y int) bool {
	_, _, style, _ := s.GetContent(x, y)
	_, _, attrs := style.Decompose()
	return attrs&tcell.AttrReverse != 0
}

func draw(s tcell.SimulationScreen, v *View, ed *editor.Editor) {
	v.Draw(s, ed)
	s.Show()
}

func TestDrawSingleLine(t *testing.T) {
	s := newScreen(t)
	ed := mustEditor(t, 20, editor.WithText("Welcome!"))

	draw(s, NewView(), ed)

	if got := rowText(s, 0); got != "0: Welcome!" {
		t.Errorf("row 0 = %q, want %q", got, "0: Welcome!")
	}
	// Cursor sits past the end of the line: a reversed blank cell.
	if !isReversed(s, 11, 0) {
		t.Error("expected reversed cursor cell after line end")
	}
	if got := rowText(s, 2); got != "Cursor: (0:8)" {
		t.Errorf("status row = %q, want %q", got, "Cursor: (0:8)")
	}
}

func TestDrawWrappedLineGutterAndIndent(t *testing.T) {
	s := newScreen(t)
	ed := mustEditor(t, 5, editor.WithText("Hello World!"))

	draw(s, NewView(), ed)

	rows := []string{"0: Hello", "    Worl", "   d!"}
	for y, want := range rows {
		if got := rowText(s, y); got != want {
			t.Errorf("row %d = %q, want %q", y, got, want)
		}
	}

	// The cursor follows the end of the last display line.
	if !isReversed(s, 5, 2) {
		t.Error("expected reversed cursor cell at the end of the last display line")
	}
	if got := rowText(s, 4); got != "Cursor: (0:12)" {
		t.Errorf("status row = %q, want %q", got, "Cursor: (0:12)")
	}
}

func TestDrawCursorInsideLine(t *testing.T) {
	s := newScreen(t)
	ed := mustEditor(t, 10, editor.WithText("Hello"))
	if err := ed.SetCursor(editor.WrappedPosition{Line: 0, Col: 1}); err != nil {
		t.Fatalf("SetCursor failed: %v", err)
	}

	draw(s, NewView(), ed)

	if got := rowText(s, 0); got != "0: Hello" {
		t.Errorf("row 0 = %q, want %q", got, "0: Hello")
	}
	r, _, _, _ := s.GetContent(4, 0)
	if r != 'e' {
		t.Errorf("cursor cell rune = %q, want 'e'", r)
	}
	if !isReversed(s, 4, 0) {
		t.Error("expected reversed cell under the cursor")
	}
	if isReversed(s, 3, 0) || isReversed(s, 5, 0) {
		t.Error("cells around the cursor must not be reversed")
	}
}

func TestDrawSeparatorMarker(t *testing.T) {
	s := newScreen(t)
	ed := mustEditor(t, 5, editor.WithText("Hello\nWorld"))
	if err := ed.SetCursor(editor.WrappedPosition{Line: 0, Col: 5}); err != nil {
		t.Fatalf("SetCursor failed: %v", err)
	}

	draw(s, NewView(), ed)

	if got := rowText(s, 0); got != "0: Hello" {
		t.Errorf("row 0 = %q, want %q", got, "0: Hello")
	}
	// The separator cursor is marked with "/" on the row below, and the
	// next logical line starts beneath it.
	r, _, _, _ := s.GetContent(3, 1)
	if r != '/' {
		t.Errorf("marker rune = %q, want '/'", r)
	}
	if !isReversed(s, 3, 1) {
		t.Error("expected reversed separator marker")
	}
	if got := rowText(s, 2); got != "1: World" {
		t.Errorf("row 2 = %q, want %q", got, "1: World")
	}
	if got := rowText(s, 4); got != "Cursor: (0:5)" {
		t.Errorf("status row = %q, want %q", got, "Cursor: (0:5)")
	}
}

func TestDrawWideRunes(t *testing.T) {
	s := newScreen(t)
	ed := mustEditor(t, 4, editor.WithText("你好"))

	draw(s, NewView(), ed)

	r, _, _, w := s.GetContent(3, 0)
	if r != '你' || w != 2 {
		t.Errorf("cell (3,0) = %q width %d, want '你' width 2", r, w)
	}
	r, _, _, _ = s.GetContent(5, 0)
	if r != '好' {
		t.Errorf("cell (5,0) = %q, want '好'", r)
	}
	// Cursor cell advances by display width, not rune count.
	if !isReversed(s, 7, 0) {
		t.Error("expected reversed cursor cell after the wide runes")
	}
}

func TestDrawEmptyBuffer(t *testing.T) {
	s := newScreen(t)
	ed := mustEditor(t, 10)

	draw(s, NewView(), ed)

	if got := rowText(s, 0); got != "0:" {
		t.Errorf("row 0 = %q, want %q", got, "0:")
	}
	if !isReversed(s, 3, 0) {
		t.Error("expected reversed cursor cell on the empty line")
	}
	if got := rowText(s, 2); got != "Cursor: (0:0)" {
		t.Errorf("status row = %q, want %q", got, "Cursor: (0:0)")
	}
}
