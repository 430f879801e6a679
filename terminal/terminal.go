package terminal

import (
	"io"
	"os"
	"sync"
)

// Options controls the terminal lifecycle
type Options struct {
	// NoAltScreen keeps drawing on the primary screen buffer
	NoAltScreen bool
	// DisableMouse skips enabling SGR mouse reporting
	DisableMouse bool
	// ColorMode selects how RGB colors are emitted
	ColorMode ColorMode
}

// Terminal owns the backend and the output writer and scopes the raw mode and
// alternate screen. Stop is idempotent and safe to call from any exit path
type Terminal struct {
	backend Backend
	output  *Output
	opts    Options

	mu      sync.Mutex
	started bool
	stopped bool
	mouseOn bool
}

// New creates a terminal on stdin/stdout
func New(opts Options) *Terminal {
	return NewWithBackend(NewBackend(), opts)
}

// NewWithBackend creates a terminal over an explicit backend
func NewWithBackend(b Backend, opts Options) *Terminal {
	return &Terminal{
		backend: b,
		output:  NewOutput(b, opts.ColorMode),
		opts:    opts,
	}
}

// Output returns the cell writer
func (t *Terminal) Output() *Output {
	return t.output
}

// Size returns the current terminal dimensions
func (t *Terminal) Size() (width, height int) {
	return t.backend.Size()
}

// Read blocks for the next input chunk, see Backend.Read
func (t *Terminal) Read(stopCh <-chan struct{}) ([]byte, error) {
	return t.backend.Read(stopCh)
}

// Start disables canonical mode and echo, enters the alternate screen, clears,
// hides the cursor and enables mouse reporting
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return err
	}

	o := t.output
	if !t.opts.NoAltScreen {
		o.WriteRaw(seqAltScreenEnter)
	}
	o.Clear()
	o.WriteRaw(seqCursorHide)
	if !t.opts.DisableMouse {
		o.WriteRaw(seqMouseOn)
		t.mouseOn = true
	}

	t.started = true
	return o.Flush()
}

// Stop reverses Start. Safe to call multiple times
func (t *Terminal) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.stopped {
		return
	}
	t.stopped = true

	o := t.output
	if t.mouseOn {
		o.WriteRaw(seqMouseOff)
	}
	o.ResetStyle()
	if !t.opts.NoAltScreen {
		o.WriteRaw(seqAltScreenExit)
	}
	o.WriteRaw(seqCursorShow)
	o.Flush()

	t.backend.Fini()
}

// Started reports whether Start succeeded and Stop has not run
func (t *Terminal) Started() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started && !t.stopped
}

// EmergencyReset writes every restoring sequence without consulting state.
// Used on crash paths where the Terminal may be unavailable
func EmergencyReset(w io.Writer) {
	io.WriteString(w, seqMouseOff)
	io.WriteString(w, seqCursorShow)
	io.WriteString(w, seqAltScreenExit)
	w.Write(sgrReset)
	io.WriteString(w, seqAutoWrapOn)
	io.WriteString(w, seqRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
