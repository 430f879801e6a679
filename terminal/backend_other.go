//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"os"
	"os/signal"
)

// unsupportedBackend reports ErrNotTerminal so callers exit before starting a loop
type unsupportedBackend struct{}

// NewBackend returns a backend that refuses to start on this platform
func NewBackend() Backend { return unsupportedBackend{} }

// IsTerminal is always false on unsupported platforms
func IsTerminal() bool { return false }

func (unsupportedBackend) Init() error                          { return ErrNotTerminal }
func (unsupportedBackend) Fini()                                {}
func (unsupportedBackend) Size() (int, int)                     { return 80, 24 }
func (unsupportedBackend) Write(p []byte) (int, error)          { return os.Stdout.Write(p) }
func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error) { return nil, nil }

// NotifyResize is a no-op without SIGWINCH
func NotifyResize(chan<- os.Signal) {}

// NotifyInterrupt relays os.Interrupt to c
func NotifyInterrupt(c chan<- os.Signal) {
	signal.Notify(c, os.Interrupt)
}

func resetTerminalMode() {}
