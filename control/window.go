package control

import (
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/render"
)

// Window owns the root element and tracks the first responder
type Window struct {
	layer          *render.Layer
	root           Element
	firstResponder Element
}

// NewWindow creates a window whose layer hosts the root element's layer
func NewWindow() *Window {
	return &Window{layer: render.NewLayer(nil)}
}

// Layer returns the window layer the renderer paints
func (w *Window) Layer() *render.Layer {
	return w.layer
}

// Root returns the root element
func (w *Window) Root() Element {
	return w.root
}

// SetRoot installs the root element, replacing any previous one
func (w *Window) SetRoot(e Element) {
	if w.root != nil {
		w.layer.RemoveLayer(w.root.Layer())
	}
	w.root = e
	if e != nil {
		w.layer.AddLayer(e.Layer(), 0)
	}
}

// Size returns the window size
func (w *Window) Size() geom.Size {
	return w.layer.Frame().Size
}

// SetSize resizes the window layer
func (w *Window) SetSize(s geom.Size) {
	w.layer.SetFrame(geom.Rect{Size: s})
}

// FirstResponder returns the focused element or nil
func (w *Window) FirstResponder() Element {
	return w.firstResponder
}

// SetFirstResponder moves focus to e. The current responder resigns before e becomes
// first responder, so at most one element is focused at any time
func (w *Window) SetFirstResponder(e Element) {
	if e == w.firstResponder {
		return
	}
	if old := w.firstResponder; old != nil {
		old.base().focused = false
		w.firstResponder = nil
		old.ResignFirstResponder()
	}
	w.firstResponder = e
	if e != nil {
		e.base().focused = true
		e.BecomeFirstResponder()
	}
}

// Move focuses the nearest selectable element in dir and reports whether focus moved
func (w *Window) Move(dir Direction) bool {
	if w.firstResponder == nil {
		return false
	}
	next := Navigate(w.firstResponder, dir)
	if next == nil {
		return false
	}
	w.SetFirstResponder(next)
	return true
}

// FocusFirst focuses the first selectable element of the tree
func (w *Window) FocusFirst() {
	if w.root == nil {
		return
	}
	if first := FirstSelectable(w.root); first != nil {
		w.SetFirstResponder(first)
	}
}

// FocusLast focuses the last selectable element of the tree
func (w *Window) FocusLast() {
	if w.root == nil {
		return
	}
	if last := LastSelectable(w.root); last != nil {
		w.SetFirstResponder(last)
	}
}

// Validate drops a responder that left the tree or stopped being selectable and
// falls back to the first selectable element
func (w *Window) Validate() {
	fr := w.firstResponder
	if fr != nil && (!IsDescendant(w.root, fr) || !fr.Selectable()) {
		w.SetFirstResponder(nil)
		fr = nil
	}
	if fr == nil {
		w.FocusFirst()
	}
}

// FocusFrame returns the absolute frame of the first responder
func (w *Window) FocusFrame() (geom.Rect, bool) {
	if w.firstResponder == nil {
		return geom.Rect{}, false
	}
	return AbsoluteFrame(w.firstResponder).Offset(w.layer.Frame().Position), true
}
