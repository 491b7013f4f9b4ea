// Package app wires the editor buffer, keymap and renderer into a
// running terminal application.
package app
