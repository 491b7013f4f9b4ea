package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mfelton/wrapedit/internal/editor"
)

// Action applies a key binding to the editor.
type Action func(ed *editor.Editor) error

// Keymap maps special keys to editor actions. Rune keys are not in the
// map; Handle routes them to Insert.
type Keymap map[tcell.Key]Action

// DefaultKeymap returns the standard editing bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		tcell.KeyLeft:  func(ed *editor.Editor) error { ed.MoveLeft(); return nil },
		tcell.KeyRight: func(ed *editor.Editor) error { ed.MoveRight(); return nil },
		tcell.KeyUp:    func(ed *editor.Editor) error { ed.MoveUp(); return nil },
		tcell.KeyDown:  func(ed *editor.Editor) error { ed.MoveDown(); return nil },
		tcell.KeyHome:  func(ed *editor.Editor) error { ed.MoveHome(); return nil },
		tcell.KeyEnd:   func(ed *editor.Editor) error { ed.MoveEnd(); return nil },
		tcell.KeyBackspace: func(ed *editor.Editor) error {
			ed.Backspace()
			return nil
		},
		tcell.KeyBackspace2: func(ed *editor.Editor) error {
			ed.Backspace()
			return nil
		},
		tcell.KeyDelete: func(ed *editor.Editor) error {
			ed.Delete()
			return nil
		},
		tcell.KeyEnter: func(ed *editor.Editor) error {
			return ed.Insert("\n")
		},
		tcell.KeyTab: func(ed *editor.Editor) error {
			return ed.Insert("\t")
		},
	}
}

// Handle applies a key event to the editor. It reports whether the
// event requests quitting; an error means the keystroke was rejected
// by the buffer and nothing changed.
func (km Keymap) Handle(ev *tcell.EventKey, ed *editor.Editor) (quit bool, err error) {
	switch {
	case ev.Key() == tcell.KeyEscape:
		return true, nil
	case ev.Key() == tcell.KeyRune:
		return false, ed.Insert(string(ev.Rune()))
	default:
		if action, ok := km[ev.Key()]; ok {
			return false, action(ed)
		}
	}
	return false, nil
}
