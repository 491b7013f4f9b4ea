package app

import "github.com/mfelton/wrapedit/internal/config"

// Options carries command-line settings into the application. Zero
// values mean "not set"; TextSet disambiguates an explicitly empty
// initial text from an unset flag.
type Options struct {
	// ConfigPath is the path to a Lua rc file.
	ConfigPath string

	// LineLimit overrides the display line width when positive.
	LineLimit int

	// Wrap overrides the wrap strategy when non-empty.
	Wrap string

	// Text overrides the initial buffer content when TextSet is true.
	Text    string
	TextSet bool

	// LogLevel overrides the log level when non-empty.
	LogLevel string

	// Debug forces debug-level logging.
	Debug bool
}

// apply layers the options over a configuration. Flags win over the rc
// file, which won over the defaults.
func (o Options) apply(cfg config.Config) config.Config {
	if o.LineLimit > 0 {
		cfg.LineLimit = o.LineLimit
	}
	if o.Wrap != "" {
		cfg.Wrap = o.Wrap
	}
	if o.TextSet {
		cfg.Text = o.Text
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg
}
