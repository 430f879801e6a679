package input

import (
	"github.com/lixenwraith/retui/control"
)

// IntentType discriminates what the dispatcher did with a rune
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit     // EOT, q outside text inputs
	IntentConsumed // Rune swallowed by an escape-sequence parser

	// Focus
	IntentMove  // Arrow or h,j,k,l moved the first responder
	IntentFocus // Mouse press focused the hit element

	// Containers
	IntentScroll // Arrow or wheel scrolled an enclosing Scrollable
	IntentTab    // [ or ] switched tabs
	IntentPop    // DEL or BS popped a navigation level

	// Delivery
	IntentKey   // Rune delivered to the first responder (and global handler)
	IntentEnter // CR/LF or mouse release delivered as \n
)

var intentNames = [...]string{
	IntentNone:     "none",
	IntentQuit:     "quit",
	IntentConsumed: "consumed",
	IntentMove:     "move",
	IntentFocus:    "focus",
	IntentScroll:   "scroll",
	IntentTab:      "tab",
	IntentPop:      "pop",
	IntentKey:      "key",
	IntentEnter:    "enter",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is the outcome of dispatching one rune
type Intent struct {
	Type      IntentType
	Direction control.Direction // IntentMove, arrow IntentScroll
	Rune      rune              // Rune delivered for IntentKey
	Target    control.Element   // Element that received the action, if any
}
