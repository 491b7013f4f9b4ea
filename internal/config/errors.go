package config

import "errors"

// Configuration validation errors.
var (
	// ErrLineLimitInvalid indicates a non-positive line limit.
	ErrLineLimitInvalid = errors.New("config: line limit must be positive")

	// ErrUnknownWrapMode indicates a wrap mode other than "greedy" or "word".
	ErrUnknownWrapMode = errors.New("config: unknown wrap mode")

	// ErrUnknownLogLevel indicates an unrecognized log level name.
	ErrUnknownLogLevel = errors.New("config: unknown log level")
)
