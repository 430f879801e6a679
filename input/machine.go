package input

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
)

// Dispatcher routes decoded runes to the window's first responder.
// Escape sequences are fed through the arrow and mouse parsers; reserved keys
// act on focus and containers; everything else reaches the global handler and the responder
type Dispatcher struct {
	window   *control.Window
	keyTable *KeyTable
	arrows   ArrowKeyParser
	mouse    MouseParser
	logger   *log.Logger

	// Global receives Enter and ordinary keys before the first responder
	Global func(r rune)
}

// NewDispatcher creates a dispatcher over w with the default key table
func NewDispatcher(w *control.Window, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{
		window:   w,
		keyTable: DefaultKeyTable(),
		logger:   logger,
	}
}

// SetKeyTable replaces the reserved key table
func (d *Dispatcher) SetKeyTable(t *KeyTable) {
	d.keyTable = t
}

// Reset clears partial escape sequences
func (d *Dispatcher) Reset() {
	d.arrows.Reset()
	d.mouse.Reset()
}

// DispatchAll dispatches runes in order and stops at the first quit
func (d *Dispatcher) DispatchAll(runes []rune) bool {
	for _, r := range runes {
		if d.Dispatch(r).Type == IntentQuit {
			return true
		}
	}
	return false
}

// Dispatch processes one rune and returns what it did
func (d *Dispatcher) Dispatch(r rune) Intent {
	fr := d.window.FirstResponder()

	if r == CR || r == LF {
		if fr != nil {
			fr.HandleEvent(LF)
		}
		d.global(LF)
		return Intent{Type: IntentEnter, Rune: LF, Target: fr}
	}

	arrowConsumed := d.arrows.Parse(r)
	if dir, ok := d.arrows.Key(); ok {
		// The mouse parser also saw the sequence prefix
		d.mouse.Reset()
		return d.arrow(dir)
	}

	mouseConsumed := d.mouse.Parse(r)
	if ev, ok := d.mouse.Event(); ok {
		return d.mouseEvent(ev)
	}

	if arrowConsumed || mouseConsumed {
		return Intent{Type: IntentConsumed}
	}

	textInput := control.IsTextInput(fr)
	if entry, ok := d.keyTable.Lookup(r); ok {
		switch entry.Behavior {
		case BehaviorQuit:
			if entry.Always || !textInput {
				return Intent{Type: IntentQuit}
			}
			return d.deliver(fr, r)
		case BehaviorMove:
			if textInput {
				return d.deliver(fr, r)
			}
			if d.window.Move(entry.Direction) {
				return Intent{Type: IntentMove, Direction: entry.Direction, Target: d.window.FirstResponder()}
			}
			return Intent{Type: IntentNone}
		case BehaviorTab:
			if !textInput && fr != nil && control.SelectTab(fr, entry.Next) {
				return Intent{Type: IntentTab, Target: fr}
			}
		case BehaviorPop:
			if textInput {
				return d.deliver(fr, r)
			}
			if fr != nil && control.NavigationPop(fr) {
				return Intent{Type: IntentPop, Target: fr}
			}
			return Intent{Type: IntentNone}
		}
	}

	d.global(r)
	return d.deliver(fr, r)
}

func (d *Dispatcher) arrow(dir control.Direction) Intent {
	if d.window.Move(dir) {
		return Intent{Type: IntentMove, Direction: dir, Target: d.window.FirstResponder()}
	}
	fr := d.window.FirstResponder()
	if fr == nil {
		return Intent{Type: IntentNone, Direction: dir}
	}
	lines, columns := scrollDelta(dir)
	if control.ScrollBy(fr, lines, columns) {
		return Intent{Type: IntentScroll, Direction: dir, Target: fr}
	}

	fallback := d.keyTable.ArrowFallback
	if control.IsTextInput(fr) {
		fallback = d.keyTable.TextArrowFallback
	}
	if r, ok := fallback[dir]; ok {
		return d.deliver(fr, r)
	}
	return Intent{Type: IntentNone, Direction: dir}
}

func (d *Dispatcher) mouseEvent(ev MouseEvent) Intent {
	d.logger.Debug("mouse", "event", ev.String())
	root := d.window.Root()
	if root == nil {
		return Intent{Type: IntentConsumed}
	}
	pos := geom.Pos(ev.Column, ev.Line)

	switch ev.Kind {
	case MouseWheel:
		from := control.DeepestAt(root, pos)
		if from == nil {
			from = d.window.FirstResponder()
		}
		if from != nil && control.ScrollBy(from, ev.DY, ev.DX) {
			return Intent{Type: IntentScroll, Target: from}
		}
		return Intent{Type: IntentConsumed}
	case MousePress:
		if ev.Button != ButtonLeft {
			return Intent{Type: IntentConsumed}
		}
		if target := control.HitTest(root, pos); target != nil {
			d.window.SetFirstResponder(target)
			return Intent{Type: IntentFocus, Target: target}
		}
	case MouseRelease:
		if ev.Button != ButtonLeft {
			return Intent{Type: IntentConsumed}
		}
		if fr := d.window.FirstResponder(); fr != nil {
			fr.HandleEvent(LF)
			return Intent{Type: IntentEnter, Rune: LF, Target: fr}
		}
	}
	return Intent{Type: IntentConsumed}
}

func (d *Dispatcher) deliver(fr control.Element, r rune) Intent {
	if fr != nil {
		fr.HandleEvent(r)
	}
	return Intent{Type: IntentKey, Rune: r, Target: fr}
}

func (d *Dispatcher) global(r rune) {
	if d.Global != nil {
		d.Global(r)
	}
}

// scrollDelta maps an arrow to a (lines, columns) scroll step
func scrollDelta(dir control.Direction) (int, int) {
	switch dir {
	case control.Up:
		return -1, 0
	case control.Down:
		return 1, 0
	case control.Left:
		return 0, -1
	default:
		return 0, 1
	}
}
