package control

import (
	"github.com/lixenwraith/retui/geom"
)

// Root returns the topmost ancestor of e
func Root(e Element) Element {
	for e.Parent() != nil {
		e = e.Parent()
	}
	return e
}

// IsDescendant reports whether e is root or lies below it
func IsDescendant(root, e Element) bool {
	for ; e != nil; e = e.Parent() {
		if e == root {
			return true
		}
	}
	return false
}

// AbsoluteFrame returns the frame of e in the coordinates of its root's parent space
func AbsoluteFrame(e Element) geom.Rect {
	f := e.Layer().Frame()
	for p := e.Parent(); p != nil; p = p.Parent() {
		f = f.Offset(p.Layer().Frame().Position)
	}
	return f
}

// Walk visits e and its descendants depth first in paint order
func Walk(e Element, fn func(Element)) {
	fn(e)
	for _, c := range e.Children() {
		Walk(c, fn)
	}
}

// FirstSelectable returns the first selectable element in a depth-first traversal
func FirstSelectable(e Element) Element {
	if e.Selectable() {
		return e
	}
	for _, c := range e.Children() {
		if found := FirstSelectable(c); found != nil {
			return found
		}
	}
	return nil
}

// LastSelectable returns the last selectable element in a depth-first right-to-left traversal
func LastSelectable(e Element) Element {
	kids := e.Children()
	for i := len(kids) - 1; i >= 0; i-- {
		if found := LastSelectable(kids[i]); found != nil {
			return found
		}
	}
	if e.Selectable() {
		return e
	}
	return nil
}

// HitTest returns the deepest selectable element whose frame contains pos.
// pos is in the coordinate space root's frame is expressed in; later children are on top
func HitTest(root Element, pos geom.Position) Element {
	frame := root.Layer().Frame()
	if !frame.Contains(pos) {
		return nil
	}
	local := pos.Sub(frame.Position)
	kids := root.Children()
	for i := len(kids) - 1; i >= 0; i-- {
		if found := HitTest(kids[i], local); found != nil {
			return found
		}
	}
	if root.Selectable() {
		return root
	}
	return nil
}

// Navigate returns the nearest selectable element from `from` in direction dir.
// Candidates must lie strictly in the half-plane on that side of from's center; the
// distance along the axis decides and the orthogonal distance breaks ties
func Navigate(from Element, dir Direction) Element {
	if from == nil {
		return nil
	}
	fc, fl := AbsoluteFrame(from).Center()
	fromCol, fromLine := fc.Int(), fl.Int()

	var (
		best      Element
		bestMain  int
		bestCross int
	)
	Walk(Root(from), func(e Element) {
		if e == from || !e.Selectable() {
			return
		}
		c, l := AbsoluteFrame(e).Center()
		col, line := c.Int(), l.Int()

		var main, cross int
		switch dir {
		case Up:
			main, cross = fromLine-line, col-fromCol
		case Down:
			main, cross = line-fromLine, col-fromCol
		case Left:
			main, cross = fromCol-col, line-fromLine
		case Right:
			main, cross = col-fromCol, line-fromLine
		}
		if main <= 0 {
			return
		}
		if cross < 0 {
			cross = -cross
		}
		if best == nil || main < bestMain || (main == bestMain && cross < bestCross) {
			best, bestMain, bestCross = e, main, cross
		}
	})
	return best
}

// ScrollBy offers the scroll to from and then each ancestor; the first Scrollable that moves consumes it
func ScrollBy(from Element, lines, columns int) bool {
	for e := from; e != nil; e = e.Parent() {
		if s, ok := e.(Scrollable); ok && s.ScrollBy(lines, columns) {
			return true
		}
	}
	return false
}

// NavigationPop asks from and then each ancestor to pop a navigation level
func NavigationPop(from Element) bool {
	for e := from; e != nil; e = e.Parent() {
		if p, ok := e.(NavigationPopper); ok && p.NavigationPop() {
			return true
		}
	}
	return false
}

// SelectTab asks from and then each ancestor to switch tabs
func SelectTab(from Element, next bool) bool {
	for e := from; e != nil; e = e.Parent() {
		s, ok := e.(TabSelector)
		if !ok {
			continue
		}
		if next && s.SelectNextTab() || !next && s.SelectPreviousTab() {
			return true
		}
	}
	return false
}

// IsTextInput reports whether e consumes editing keys itself
func IsTextInput(e Element) bool {
	if e == nil {
		return false
	}
	t, ok := e.(TextInput)
	return ok && t.IsTextInput()
}

// DeepestAt returns the deepest element whose frame contains pos, selectable or not
func DeepestAt(root Element, pos geom.Position) Element {
	frame := root.Layer().Frame()
	if !frame.Contains(pos) {
		return nil
	}
	local := pos.Sub(frame.Position)
	kids := root.Children()
	for i := len(kids) - 1; i >= 0; i-- {
		if found := DeepestAt(kids[i], local); found != nil {
			return found
		}
	}
	return root
}
