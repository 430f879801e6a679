package core

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrorKind identifies the category of an error
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTerminal
	KindInput
	KindRender
	KindPanic
	KindBuild
	KindInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindInput:
		return "input"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Error is a structured error reported through the global handler
type Error struct {
	// Op is the operation that failed, e.g. "app.resize"
	Op        string
	Kind      ErrorKind
	Err       error
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError represents a failure while computing a view body
type BuildError struct {
	// View is the type name of the description that failed
	View       string
	Recovered  any
	Err        error
	StackTrace string
	Timestamp  time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Body(): %v", e.View, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Body(): %v", e.View, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Body()", e.View)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives reported errors
type ErrorHandler interface {
	HandleError(err *Error)
	HandlePanic(err *PanicError)
	HandleBuildError(err *BuildError)
}

// LogHandler reports errors to a structured logger. Without a Logger reports are
// dropped: the terminal is in raw mode and stderr shares the screen
type LogHandler struct {
	Logger *log.Logger
	// Verbose adds stack traces
	Verbose bool
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return discardLogger
}

var discardLogger = log.New(io.Discard)

func (h *LogHandler) HandleError(err *Error) {
	h.logger().Error(err.Op, "kind", err.Kind, "err", err.Err)
}

func (h *LogHandler) HandlePanic(err *PanicError) {
	if h.Verbose {
		h.logger().Error("panic", "op", err.Op, "value", err.Value, "stack", err.StackTrace)
		return
	}
	h.logger().Error("panic", "op", err.Op, "value", err.Value)
}

func (h *LogHandler) HandleBuildError(err *BuildError) {
	if h.Verbose {
		h.logger().Error("build failed", "view", err.View, "err", err.Error(), "stack", err.StackTrace)
		return
	}
	h.logger().Error("build failed", "view", err.View, "err", err.Error())
}

var (
	handlerMu      sync.RWMutex
	defaultHandler ErrorHandler = &LogHandler{}
)

// SetHandler configures the global error handler. Pass nil to restore the default
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = &LogHandler{}
	} else {
		defaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Report sends an error to the global handler
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandleError(err)
}

// ReportPanic sends a recovered panic to the global handler
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandlePanic(err)
}

// ReportBuildError sends a build failure to the global handler
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandleBuildError(err)
}

// CaptureStack returns the stack above the function that calls it. Called from a
// deferred recover it starts at the panic
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
