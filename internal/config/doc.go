// Package config holds the editor's startup configuration.
//
// Configuration is layered: built-in defaults, then an optional Lua rc
// file, then command-line flags. Later layers win. The rc file runs in
// a sandboxed Lua state and communicates settings through globals.
package config
