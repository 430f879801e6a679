package input

import (
	"github.com/lixenwraith/retui/control"
)

// ArrowKeyParser recognizes CSI and SS3 arrow sequences one rune at a time.
// CSI parameters (digits and ;) are skipped, so modified arrows map to plain directions
type ArrowKeyParser struct {
	state ArrowState
	key   control.Direction
	ready bool
}

// Parse feeds one rune and reports whether the parser consumed it
func (p *ArrowKeyParser) Parse(r rune) bool {
	switch p.state {
	case ArrowIdle:
		if r == ESC {
			p.state = ArrowEsc
			return true
		}
	case ArrowEsc:
		switch r {
		case '[':
			p.state = ArrowCSI
			return true
		case 'O':
			p.state = ArrowSS3
			return true
		}
	case ArrowCSI:
		if r >= '0' && r <= '9' || r == ';' {
			return true
		}
		if p.finish(r) {
			return true
		}
	case ArrowSS3:
		if p.finish(r) {
			return true
		}
	}
	p.Reset()
	return false
}

func (p *ArrowKeyParser) finish(r rune) bool {
	var dir control.Direction
	switch r {
	case 'A':
		dir = control.Up
	case 'B':
		dir = control.Down
	case 'C':
		dir = control.Right
	case 'D':
		dir = control.Left
	default:
		return false
	}
	p.key = dir
	p.ready = true
	p.state = ArrowIdle
	return true
}

// Key returns the completed arrow and clears it
func (p *ArrowKeyParser) Key() (control.Direction, bool) {
	if !p.ready {
		return 0, false
	}
	p.ready = false
	return p.key, true
}

// State returns the current parser state
func (p *ArrowKeyParser) State() ArrowState {
	return p.state
}

// Reset returns to idle and drops any completed key
func (p *ArrowKeyParser) Reset() {
	p.state = ArrowIdle
	p.ready = false
}
