package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/retui/terminal"
)

var (
	crashMu       sync.Mutex
	crashTeardown func()
	exitFunc      = osExit
)

var osExit = os.Exit

// SetCrashTeardown registers the function that restores the terminal on a crash.
// Pass nil to fall back to terminal.EmergencyReset
func SetCrashTeardown(fn func()) {
	crashMu.Lock()
	crashTeardown = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	teardown := crashTeardown
	crashMu.Unlock()

	// Restore terminal to sane state immediately
	if teardown != nil {
		teardown()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	// Use \r\n in case the line discipline is still raw
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	ReportPanic(&PanicError{Op: "crash", Value: r, StackTrace: string(debug.Stack())})

	exitFunc(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
