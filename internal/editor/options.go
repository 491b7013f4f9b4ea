package editor

import "github.com/mfelton/wrapedit/internal/editor/wrap"

// Option is a functional option for configuring an Editor at construction.
type Option func(*Editor) error

// WithText inserts initial content, leaving the cursor at its end. The text
// passes through the same validation as Insert, so a disallowed character
// fails construction.
func WithText(s string) Option {
	return func(e *Editor) error {
		return e.Insert(s)
	}
}

// WithStrategy selects the wrapping strategy. The default is wrap.Greedy.
func WithStrategy(s wrap.Strategy) Option {
	return func(e *Editor) error {
		if s == nil {
			return ErrStrategyNil
		}
		e.strategy = s
		e.rewrap()
		return nil
	}
}
