package control

// Direction is a focus movement direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Scrollable is implemented by elements that can move their content.
// ScrollBy returns false when the offset cannot change in the requested direction
type Scrollable interface {
	ScrollBy(lines, columns int) bool
}

// TextInput is implemented by elements that consume printable characters and
// editing keys themselves
type TextInput interface {
	IsTextInput() bool
}

// NavigationPopper is implemented by navigation containers
type NavigationPopper interface {
	NavigationPop() bool
}

// TabSelector is implemented by tab containers
type TabSelector interface {
	SelectPreviousTab() bool
	SelectNextTab() bool
}
