package config

import (
	"fmt"

	"github.com/mfelton/wrapedit/internal/editor/wrap"
)

// Wrap mode names accepted in configuration.
const (
	WrapGreedy = "greedy"
	WrapWord   = "word"
)

// Config is the editor's startup configuration.
type Config struct {
	// LineLimit is the display line width in runes. Must be positive.
	LineLimit int

	// Wrap selects the wrap strategy: "greedy" or "word".
	Wrap string

	// Text is the initial buffer content.
	Text string

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LineLimit: 20,
		Wrap:      WrapGreedy,
		Text:      "Welcome!",
		LogLevel:  "info",
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.LineLimit <= 0 {
		return fmt.Errorf("%w: %d", ErrLineLimitInvalid, c.LineLimit)
	}
	switch c.Wrap {
	case WrapGreedy, WrapWord:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWrapMode, c.Wrap)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}
	return nil
}

// Strategy returns the wrap strategy selected by the configuration.
func (c Config) Strategy() (wrap.Strategy, error) {
	switch c.Wrap {
	case WrapGreedy:
		return wrap.Greedy{}, nil
	case WrapWord:
		return wrap.Word{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWrapMode, c.Wrap)
	}
}
