//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// NotifyResize relays SIGWINCH to c
func NotifyResize(c chan<- os.Signal) {
	signal.Notify(c, syscall.SIGWINCH)
}

// NotifyInterrupt relays SIGINT and SIGTERM to c
func NotifyInterrupt(c chan<- os.Signal) {
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
}
