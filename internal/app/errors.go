package app

import "errors"

var (
	// ErrQuit signals a normal, user-requested exit.
	ErrQuit = errors.New("quit")

	// ErrNoScreen indicates Run was called before a screen was attached.
	ErrNoScreen = errors.New("no screen attached")
)
