// Package input translates terminal key events into editor operations.
package input
