package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/mfelton/wrapedit/internal/config"
	"github.com/mfelton/wrapedit/internal/editor"
	"github.com/mfelton/wrapedit/internal/input"
	"github.com/mfelton/wrapedit/internal/render"
)

// Application owns the editor buffer and drives the event loop.
type Application struct {
	cfg    config.Config
	logger *Logger
	editor *editor.Editor
	view   *render.View
	keymap input.Keymap

	screen tcell.Screen

	shutdownOnce sync.Once
}

// New builds an application from defaults, the optional rc file and
// the command-line options, in that order.
func New(opts Options) (*Application, error) {
	cfg := config.Default()

	if opts.ConfigPath != "" {
		loaded, err := config.LoadFile(opts.ConfigPath, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg = opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, err
	}

	ed, err := editor.New(cfg.LineLimit,
		editor.WithStrategy(strategy),
		editor.WithText(cfg.Text),
	)
	if err != nil {
		return nil, fmt.Errorf("app: creating editor: %w", err)
	}

	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.LogLevel),
		Prefix: "wrapedit",
	})

	return &Application{
		cfg:    cfg,
		logger: logger,
		editor: ed,
		view:   render.NewView(),
		keymap: input.DefaultKeymap(),
	}, nil
}

// SetScreen attaches and initializes the terminal screen.
func (a *Application) SetScreen(s tcell.Screen) error {
	if err := s.Init(); err != nil {
		return fmt.Errorf("app: initializing screen: %w", err)
	}
	a.screen = s
	return nil
}

// SetLogger replaces the application logger.
func (a *Application) SetLogger(l *Logger) {
	a.logger = l
}

// Editor returns the underlying buffer.
func (a *Application) Editor() *editor.Editor {
	return a.editor
}

// Config returns the effective configuration.
func (a *Application) Config() config.Config {
	return a.cfg
}

// Run drives the draw-poll-dispatch loop until the user quits. A
// normal exit returns ErrQuit.
func (a *Application) Run() error {
	if a.screen == nil {
		return ErrNoScreen
	}

	a.logger.Info("starting: limit=%d wrap=%s", a.cfg.LineLimit, a.cfg.Wrap)

	for {
		a.view.Draw(a.screen, a.editor)
		a.screen.Show()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			quit, err := a.keymap.Handle(ev, a.editor)
			if err != nil {
				// Rejected keystrokes are discarded; the buffer is
				// untouched.
				a.logger.WithComponent("input").Debug("keystroke rejected: %v", err)
				continue
			}
			if quit {
				a.logger.Info("quit requested")
				return ErrQuit
			}

		case *tcell.EventResize:
			a.screen.Sync()

		case nil:
			// Screen was finalized under us (signal-driven shutdown).
			return ErrQuit
		}
	}
}

// Shutdown releases the terminal. Safe to call more than once and
// from a signal handler.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.screen != nil {
			a.screen.Fini()
		}
		a.logger.Info("shut down")
	})
}
