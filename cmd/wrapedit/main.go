// Package main is the entry point for the wrapedit editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/mfelton/wrapedit/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure the terminal is restored on all exit paths
	defer application.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := application.SetScreen(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set screen: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		// A normal quit comes back as ErrQuit
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to a Lua configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to a Lua configuration file (shorthand)")
	flag.IntVar(&opts.LineLimit, "limit", 0, "Display line width in runes")
	flag.IntVar(&opts.LineLimit, "l", 0, "Display line width in runes (shorthand)")
	flag.StringVar(&opts.Wrap, "wrap", "", "Wrap strategy (greedy, word)")
	flag.StringVar(&opts.Wrap, "w", "", "Wrap strategy (shorthand)")
	flag.StringVar(&opts.Text, "text", "", "Initial buffer content")
	flag.StringVar(&opts.Text, "t", "", "Initial buffer content (shorthand)")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug mode")
	flag.BoolVar(&opts.Debug, "d", false, "Enable debug mode (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Wrapedit - wrapping text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wrapedit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wrapedit                      Open with the default buffer\n")
		fmt.Fprintf(os.Stderr, "  wrapedit -l 40 -w word        Word wrap at 40 columns\n")
		fmt.Fprintf(os.Stderr, "  wrapedit -t \"\"                Start with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  wrapedit -c ~/.wrapeditrc.lua Load a configuration file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Wrapedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// An explicitly empty -text must override the configured text, so
	// record whether the flag was set at all.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "text" || f.Name == "t" {
			opts.TextSet = true
		}
	})

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	return opts
}
