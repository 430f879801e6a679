// Package app runs a view tree against a terminal: it owns the event loop, the
// reconciliation scheduler, the window and the renderer
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/retui/config"
	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/core"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/input"
	"github.com/lixenwraith/retui/render"
	"github.com/lixenwraith/retui/status"
	"github.com/lixenwraith/retui/terminal"
	"github.com/lixenwraith/retui/view"
	"github.com/lixenwraith/retui/widget"
)

// ErrNotTerminal is returned by Run when stdin or stdout is not a terminal
var ErrNotTerminal = terminal.ErrNotTerminal

// postQueueSize bounds closures waiting for the loop
const postQueueSize = 64

// Application hosts one view tree. Every method except Post and Stop must be called
// on the loop goroutine
type Application struct {
	cfg       *config.Config
	logger    *log.Logger
	globalKey func(rune)
	keyTable  *input.KeyTable
	headless  io.Writer
	fixedSize geom.Size
	backend   terminal.Backend
	needsTTY  bool

	term     *terminal.Terminal
	out      *terminal.Output
	window   *control.Window
	sched    *view.Scheduler
	root     *view.Node
	renderer *render.Renderer
	dispatch *input.Dispatcher
	decoder  terminal.Decoder
	runes    []rune
	stats    *status.Registry

	// Tasks run after the current handler returns
	deferred     []func()
	updateQueued bool
	wake         chan struct{}

	posted   chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New builds the tree for root. root is wrapped in a VStack so the window always
// has a root element
func New(root view.View, opts ...Option) *Application {
	a := &Application{
		wake:   make(chan struct{}, 1),
		posted: make(chan func(), postQueueSize),
		stopCh: make(chan struct{}),
		stats:  status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cfg == nil {
		a.cfg = config.Default()
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	// Build errors and failed assertions go to the application log
	core.SetHandler(&core.LogHandler{Logger: a.logger})

	var size geom.Size
	if a.headless != nil {
		a.out = terminal.NewOutput(a.headless, a.cfg.ColorMode())
		size = a.fixedSize
		if size.IsEmpty() {
			size = geom.Sz(80, 24)
		}
	} else {
		if a.backend == nil {
			a.backend = terminal.NewBackend()
			a.needsTTY = true
		}
		a.term = terminal.NewWithBackend(a.backend, a.cfg.TerminalOptions())
		a.out = a.term.Output()
		size = geom.Sz(a.term.Size())
	}

	a.sched = view.NewScheduler(a.scheduleUpdate, a.logger)
	a.root = view.NewRoot(widget.VStack{root}, a.sched)

	a.window = control.NewWindow()
	a.window.SetSize(size)
	a.window.SetRoot(a.root.Element())
	a.window.Layer().SetInvalidateHook(a.scheduleUpdate)

	ropts := []render.Option{
		render.WithLogger(a.logger),
		render.WithASCIISnapshot(a.cfg.ASCIISnapshot),
		render.WithStats(a.stats),
	}
	if a.cfg.FocusHighlight {
		ropts = append(ropts, render.WithFocusHighlight(a.window.FocusFrame))
	}
	a.renderer = render.NewRenderer(a.window.Layer(), a.out, ropts...)
	a.stats.Bools.Get(status.TerminalColor).Store(a.out.ColorMode() == terminal.ColorModeTrueColor)

	a.dispatch = input.NewDispatcher(a.window, a.logger)
	a.dispatch.Global = a.globalKey
	if a.keyTable != nil {
		a.dispatch.SetKeyTable(a.keyTable)
	}

	a.layout()
	a.window.FocusFirst()
	a.window.Layer().Invalidate()
	return a
}

// Window returns the window holding the element tree
func (a *Application) Window() *control.Window {
	return a.window
}

// Root returns the root node of the view tree
func (a *Application) Root() *view.Node {
	return a.root
}

// Size returns the current screen size
func (a *Application) Size() geom.Size {
	return a.window.Size()
}

// Stats returns the engine counters. They may be sampled from any goroutine
func (a *Application) Stats() *status.Registry {
	return a.stats
}

// FocusFirst focuses the first selectable element
func (a *Application) FocusFirst() {
	a.window.FocusFirst()
	a.scheduleUpdate()
}

// FocusLast focuses the last selectable element
func (a *Application) FocusLast() {
	a.window.FocusLast()
	a.scheduleUpdate()
}

// Run takes over the terminal and processes input, signals and posted work until Stop,
// EOT, q outside a text input, SIGINT/SIGTERM or ctx cancellation. The terminal is
// restored on every exit path
func (a *Application) Run(ctx context.Context) error {
	if a.term == nil || a.needsTTY && !terminal.IsTerminal() {
		return ErrNotTerminal
	}

	// Signals are caught before raw mode so an early SIGINT still restores the terminal
	resize := make(chan os.Signal, 1)
	interrupt := make(chan os.Signal, 1)
	terminal.NotifyResize(resize)
	terminal.NotifyInterrupt(interrupt)
	defer signal.Stop(resize)
	defer signal.Stop(interrupt)

	core.SetCrashTeardown(a.term.Stop)
	defer core.SetCrashTeardown(nil)

	if err := a.term.Start(); err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	defer a.term.Stop()

	chunks := make(chan []byte)
	readErr := make(chan error, 1)
	core.Go(func() { a.readLoop(chunks, readErr) })

	a.resize()

	for {
		select {
		case <-ctx.Done():
			a.Stop()
			return ctx.Err()
		case <-a.stopCh:
			return nil
		case chunk, ok := <-chunks:
			if !ok {
				a.logger.Info("input closed")
				a.endInput()
				a.Stop()
				return nil
			}
			a.HandleInput(chunk)
		case err := <-readErr:
			a.Stop()
			return fmt.Errorf("reading input: %w", err)
		case <-resize:
			a.resize()
		case sig := <-interrupt:
			a.logger.Info("interrupted", "signal", sig)
			a.Stop()
			return nil
		case fn := <-a.posted:
			fn()
		case <-a.wake:
			a.runDeferred()
		}
	}
}

// readLoop moves stdin chunks to the loop; it does no decoding
func (a *Application) readLoop(chunks chan<- []byte, errc chan<- error) {
	defer close(chunks)
	for {
		b, err := a.term.Read(a.stopCh)
		if err != nil {
			errc <- err
			return
		}
		if b == nil {
			return
		}
		chunk := make([]byte, len(b))
		copy(chunk, b)
		select {
		case chunks <- chunk:
		case <-a.stopCh:
			return
		}
	}
}

// Stop ends Run. Safe to call more than once and from any goroutine
func (a *Application) Stop() {
	a.stopOnce.Do(func() { close(a.stopCh) })
}

// Stopped reports whether Stop has been called
func (a *Application) Stopped() bool {
	select {
	case <-a.stopCh:
		return true
	default:
		return false
	}
}

// Post runs fn on the loop goroutine. It is the only method safe to call from other goroutines
func (a *Application) Post(fn func()) {
	select {
	case a.posted <- fn:
	case <-a.stopCh:
	}
}

// HandleInput decodes and dispatches one chunk of raw input, then flushes if anything
// became invalid and queues one coalesced follow-up update
func (a *Application) HandleInput(chunk []byte) {
	a.runes = a.decoder.Decode(a.runes[:0], chunk)
	a.logger.Debug("input", "bytes", len(chunk), "runes", len(a.runes))
	a.stats.Ints.Get(status.InputRunes).Add(int64(len(a.runes)))
	if a.dispatch.DispatchAll(a.runes) {
		a.stats.Bools.Get(status.InputQuit).Store(true)
		a.Stop()
	}
	if _, invalid := a.window.Layer().Invalidated(); invalid || a.sched.HasPending() {
		a.update()
	}
	a.scheduleUpdate()
}

// endInput dispatches a sequence left incomplete when input closed, as replacement characters
func (a *Application) endInput() {
	a.runes = a.decoder.Flush(a.runes[:0])
	if len(a.runes) == 0 {
		return
	}
	a.dispatch.DispatchAll(a.runes)
	if err := a.Flush(); err != nil {
		a.logger.Error("update failed", "err", err)
	}
}

// Flush runs posted and deferred work and brings the screen up to date
func (a *Application) Flush() error {
	for drained := false; !drained; {
		select {
		case fn := <-a.posted:
			fn()
		default:
			drained = true
		}
	}
	a.runDeferred()
	return a.update()
}

// enqueue defers fn until the current handler returns
func (a *Application) enqueue(fn func()) {
	a.deferred = append(a.deferred, fn)
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *Application) runDeferred() {
	for len(a.deferred) > 0 {
		tasks := a.deferred
		a.deferred = nil
		for _, fn := range tasks {
			fn()
		}
	}
}

// scheduleUpdate queues one update for all invalidations raised before it runs
func (a *Application) scheduleUpdate() {
	if a.updateQueued {
		return
	}
	a.updateQueued = true
	a.enqueue(func() {
		a.updateQueued = false
		if err := a.update(); err != nil {
			a.logger.Error("update failed", "err", err)
		}
	})
}

func (a *Application) layout() {
	if root := a.window.Root(); root != nil {
		root.Layout(a.window.Size())
	}
}

// update applies pending state changes, lays the tree out and draws what changed
func (a *Application) update() error {
	rebuilt := a.sched.Flush()
	if rebuilt {
		a.stats.Ints.Get(status.ViewRebuilds).Add(1)
	}
	a.layout()
	a.window.Validate()
	a.stats.Bools.Get(status.FocusPresent).Store(a.window.FirstResponder() != nil)
	if _, invalid := a.window.Layer().Invalidated(); rebuilt && !invalid {
		a.window.Layer().Invalidate()
	}
	return a.renderer.Update()
}

// resize adopts the terminal's current size and repaints everything
func (a *Application) resize() {
	size := geom.Sz(a.term.Size())
	a.logger.Debug("resize", "size", size.String())
	a.window.SetSize(size)
	a.renderer.SetCache(size)
	a.out.Clear()
	a.window.Layer().Invalidate()
	if err := a.update(); err != nil {
		a.logger.Error("update failed", "err", err)
	}
}
