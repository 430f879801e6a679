package input

import (
	"github.com/lixenwraith/retui/control"
)

// KeyBehavior classifies how a reserved key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorQuit                // Stop the application
	BehaviorMove                // Move focus in Direction
	BehaviorTab                 // Select previous or next tab
	BehaviorPop                 // Pop a navigation level
)

// KeyEntry describes a reserved key.
// Text inputs receive the rune instead unless Always is set; Tab entries fall through to
// ordinary delivery when a text input has focus or no TabSelector handles them
type KeyEntry struct {
	Behavior  KeyBehavior
	Direction control.Direction
	Next      bool // BehaviorTab: ] selects the next tab
	Always    bool // Applies even inside text inputs
}

// KeyTable maps reserved runes to behaviors
type KeyTable struct {
	Runes map[rune]KeyEntry

	// Runes forwarded to the first responder when an arrow key neither moves nor scrolls
	ArrowFallback     map[control.Direction]rune
	TextArrowFallback map[control.Direction]rune
}

// DefaultKeyTable returns the default reserved keys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]KeyEntry{
			EOT: {Behavior: BehaviorQuit, Always: true},
			'q': {Behavior: BehaviorQuit},
			'j': {Behavior: BehaviorMove, Direction: control.Down},
			'k': {Behavior: BehaviorMove, Direction: control.Up},
			'h': {Behavior: BehaviorMove, Direction: control.Left},
			'l': {Behavior: BehaviorMove, Direction: control.Right},
			'[': {Behavior: BehaviorTab},
			']': {Behavior: BehaviorTab, Next: true},
			DEL: {Behavior: BehaviorPop},
			BS:  {Behavior: BehaviorPop},
		},
		ArrowFallback: map[control.Direction]rune{
			control.Left:  'h',
			control.Right: 'l',
			control.Up:    'k',
			control.Down:  'j',
		},
		TextArrowFallback: map[control.Direction]rune{
			control.Left:  CtrlB,
			control.Right: CtrlF,
		},
	}
}

// Lookup returns the entry for r
func (t *KeyTable) Lookup(r rune) (KeyEntry, bool) {
	e, ok := t.Runes[r]
	return e, ok
}
