package render

import (
	"slices"

	"github.com/lixenwraith/retui/core"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/terminal"
)

// Content supplies a layer's own cells in local coordinates
type Content interface {
	Cell(at geom.Position) (terminal.Cell, bool)
}

// ContentFunc adapts a function to Content
type ContentFunc func(at geom.Position) (terminal.Cell, bool)

func (f ContentFunc) Cell(at geom.Position) (terminal.Cell, bool) { return f(at) }

// Layer composites its content with child layers offset by each child's frame.
// Each layer keeps one dirty rectangle covering everything invalidated in its subtree
type Layer struct {
	content  Content
	frame    geom.Rect
	parent   *Layer
	children []*Layer

	invalidated    geom.Rect
	hasInvalidated bool

	// Root only: called when the dirty rectangle grows
	onInvalidate func()
}

// NewLayer creates a detached layer over content; content may be nil
func NewLayer(content Content) *Layer {
	return &Layer{content: content}
}

// SetContent replaces the content source
func (l *Layer) SetContent(c Content) {
	l.content = c
}

// Frame returns the position in the parent and the size
func (l *Layer) Frame() geom.Rect {
	return l.frame
}

// SetFrame moves or resizes the layer, invalidating both the vacated and the new area
func (l *Layer) SetFrame(r geom.Rect) {
	if r == l.frame {
		return
	}
	old := l.frame
	l.frame = r
	if l.parent != nil && !old.IsEmpty() {
		l.parent.InvalidateRect(old)
	}
	l.Invalidate()
}

// Parent returns the enclosing layer or nil
func (l *Layer) Parent() *Layer {
	return l.parent
}

// Children returns child layers bottom to top
func (l *Layer) Children() []*Layer {
	return l.children
}

// AddLayer inserts child at index (clamped to the valid range) and invalidates its area
func (l *Layer) AddLayer(child *Layer, index int) {
	if child.parent != nil {
		child.parent.RemoveLayer(child)
	}
	index = max(0, min(index, len(l.children)))
	l.children = slices.Insert(l.children, index, child)
	child.parent = l
	child.Invalidate()
}

// RemoveLayer detaches child and invalidates the area it covered
func (l *Layer) RemoveLayer(child *Layer) {
	i := slices.Index(l.children, child)
	if i < 0 {
		return
	}
	l.children = slices.Delete(l.children, i, i+1)
	child.parent = nil
	if !child.frame.IsEmpty() {
		l.InvalidateRect(child.frame)
	}
}

// SetInvalidateHook registers the root notification used by the render scheduler
func (l *Layer) SetInvalidateHook(fn func()) {
	l.onInvalidate = fn
}

// Invalidate marks the whole layer dirty
func (l *Layer) Invalidate() {
	l.InvalidateRect(geom.Rect{Size: l.frame.Size})
}

// InvalidateRect merges r (local coordinates) into the dirty rectangle and propagates to the root
func (l *Layer) InvalidateRect(r geom.Rect) {
	if r.IsEmpty() {
		return
	}
	if l.hasInvalidated {
		l.invalidated = l.invalidated.Union(r)
	} else {
		l.invalidated = r
		l.hasInvalidated = true
	}
	if l.parent != nil {
		l.parent.InvalidateRect(r.Offset(l.frame.Position))
		return
	}
	if l.onInvalidate != nil {
		l.onInvalidate()
	}
}

// Invalidated returns the dirty rectangle, if any
func (l *Layer) Invalidated() (geom.Rect, bool) {
	return l.invalidated, l.hasInvalidated
}

// ClearInvalidated resets the dirty rectangle of the whole subtree; only a render pass calls this
func (l *Layer) ClearInvalidated() {
	l.hasInvalidated = false
	l.invalidated = geom.Rect{}
	for _, c := range l.children {
		c.ClearInvalidated()
	}
}

// Cell resolves the visible cell at a local position: own content first, then children topmost first
func (l *Layer) Cell(at geom.Position) (terminal.Cell, bool) {
	core.Assert(geom.Rect{Size: l.frame.Size}.Contains(at), "layer: cell %v outside committed size %v", at, l.frame.Size)

	if l.content != nil {
		if c, ok := l.content.Cell(at); ok {
			return c, true
		}
	}
	for i := len(l.children) - 1; i >= 0; i-- {
		child := l.children[i]
		if !child.frame.Contains(at) {
			continue
		}
		if c, ok := child.Cell(at.Sub(child.frame.Position)); ok {
			return c, true
		}
	}
	return terminal.Cell{}, false
}
