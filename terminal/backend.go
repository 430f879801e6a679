package terminal

import (
	"errors"
	"io"
)

// ErrNotTerminal is returned when stdin or stdout is not attached to a terminal
var ErrNotTerminal = errors.New("terminal: stdin/stdout is not a terminal")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	io.Writer

	// Init saves the current line discipline and disables canonical mode and echo
	Init() error

	// Fini restores the saved line discipline
	Fini()

	// Size returns the current dimensions, 80x24 when the query fails
	Size() (width, height int)

	// Read blocks until input is available, the stop channel is closed, or an error occurs.
	// A nil slice with nil error means stop or end of input
	Read(stopCh <-chan struct{}) ([]byte, error)
}
