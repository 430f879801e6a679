package input

import (
	"fmt"
)

// MouseKind is the action of a mouse event
type MouseKind uint8

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseWheel
)

// MouseButtonID identifies the button of a press or release
type MouseButtonID uint8

const (
	ButtonLeft MouseButtonID = iota
	ButtonMiddle
	ButtonRight
	ButtonOther
)

// MouseEvent is a decoded SGR mouse report. Coordinates are 0-based
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButtonID
	Column int
	Line   int
	// Wheel deltas: DY > 0 scrolls down, DX > 0 scrolls right
	DX int
	DY int
}

func (e MouseEvent) String() string {
	switch e.Kind {
	case MouseWheel:
		return fmt.Sprintf("wheel(%d,%d)@%d,%d", e.DX, e.DY, e.Column, e.Line)
	case MouseRelease:
		return fmt.Sprintf("release(%d)@%d,%d", e.Button, e.Column, e.Line)
	default:
		return fmt.Sprintf("press(%d)@%d,%d", e.Button, e.Column, e.Line)
	}
}

// wheelBit marks wheel reports in the SGR button code
const wheelBit = 64

// MouseParser recognizes SGR (1006) reports: ESC [ < b ; x ; y (M|m)
type MouseParser struct {
	state MouseState
	acc   int
	digit bool
	b     int
	x     int
	event MouseEvent
	ready bool
}

// Parse feeds one rune and reports whether the parser consumed it
func (p *MouseParser) Parse(r rune) bool {
	switch p.state {
	case MouseIdle:
		if r == ESC {
			p.state = MouseEsc
			return true
		}
		return false
	case MouseEsc:
		if r == '[' {
			p.state = MouseBracket
			return true
		}
	case MouseBracket:
		if r == '<' {
			p.state = MouseButton
			p.acc, p.digit = 0, false
			return true
		}
	case MouseButton, MouseX, MouseY:
		if r >= '0' && r <= '9' {
			p.acc = p.acc*10 + int(r-'0')
			p.digit = true
			return true
		}
		switch {
		case r == ';' && p.state == MouseButton:
			p.b = p.acc
			p.state = MouseX
			p.acc, p.digit = 0, false
			return true
		case r == ';' && p.state == MouseX:
			p.x = p.coord()
			p.state = MouseY
			p.acc, p.digit = 0, false
			return true
		case (r == 'M' || r == 'm') && p.state == MouseY:
			p.complete(r == 'M', p.x, p.coord())
			return true
		}
	}
	p.Reset()
	return false
}

// coord converts the accumulated 1-based value to 0-based, floored at 0
func (p *MouseParser) coord() int {
	v := 1
	if p.digit {
		v = p.acc
	}
	return max(0, v-1)
}

func (p *MouseParser) complete(press bool, column, line int) {
	ev := MouseEvent{Column: column, Line: line}
	if p.b&wheelBit != 0 {
		ev.Kind = MouseWheel
		ev.Button = ButtonOther
		switch p.b & 3 {
		case 0:
			ev.DY = -1
		case 1:
			ev.DY = 1
		case 2:
			ev.DX = -1
		case 3:
			ev.DX = 1
		}
	} else {
		ev.Kind = MouseRelease
		if press {
			ev.Kind = MousePress
		}
		ev.Button = MouseButtonID(p.b & 3)
	}
	p.Reset()
	p.event = ev
	p.ready = true
}

// Event returns the completed event and clears it
func (p *MouseParser) Event() (MouseEvent, bool) {
	if !p.ready {
		return MouseEvent{}, false
	}
	p.ready = false
	return p.event, true
}

// State returns the current parser state
func (p *MouseParser) State() MouseState {
	return p.state
}

// Reset returns to idle and drops any completed event
func (p *MouseParser) Reset() {
	p.state = MouseIdle
	p.acc, p.digit = 0, false
	p.b, p.x = 0, 0
	p.ready = false
}
