// Package control holds the mutable element tree: layout negotiation, focus transfer,
// event consumption, hit-testing, directional navigation and scroll delegation.
package control

import (
	"slices"

	"github.com/lixenwraith/retui/core"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/render"
	"github.com/lixenwraith/retui/terminal"
)

// Element is a unit of layout and interaction. Implementations embed Base and call Init
type Element interface {
	// Size answers what size the element would take for a proposal; it must not mutate state.
	// Either proposed dimension may be geom.Infinity
	Size(proposed geom.Size) geom.Size
	// Layout commits the size and positions children
	Layout(size geom.Size)

	// HandleEvent consumes one decoded character
	HandleEvent(r rune)

	BecomeFirstResponder()
	ResignFirstResponder()
	DescendantBecameFirstResponder(e Element)
	DescendantResignedFirstResponder(e Element)

	// Cell returns the element's own content in local coordinates
	Cell(at geom.Position) (terminal.Cell, bool)

	Parent() Element
	Children() []Element
	Layer() *render.Layer
	Selectable() bool
	IsFocused() bool

	base() *Base
}

// Base carries the state shared by every element and the default behaviors
type Base struct {
	self       Element
	parent     Element
	children   []Element
	layer      *render.Layer
	selectable bool
	focused    bool
}

// Init binds the base to the element that embeds it and creates its layer
func (b *Base) Init(self Element) {
	b.self = self
	b.layer = render.NewLayer(render.ContentFunc(self.Cell))
}

func (b *Base) base() *Base { return b }

// Parent returns the owning element; nil for a root or a detached element
func (b *Base) Parent() Element { return b.parent }

// Children returns subviews in paint order
func (b *Base) Children() []Element { return b.children }

// Layer returns the element's composition layer
func (b *Base) Layer() *render.Layer { return b.layer }

// Selectable reports whether the element can become first responder
func (b *Base) Selectable() bool { return b.selectable }

// SetSelectable marks the element as able to receive focus
func (b *Base) SetSelectable(on bool) { b.selectable = on }

// IsFocused reports whether the element is the window's first responder
func (b *Base) IsFocused() bool { return b.focused }

// Invalidate marks the element's whole layer dirty
func (b *Base) Invalidate() {
	b.layer.Invalidate()
}

// Size defaults to taking nothing
func (b *Base) Size(proposed geom.Size) geom.Size {
	return geom.Size{}
}

// Layout defaults to committing the size, keeping the origin set by the parent
func (b *Base) Layout(size geom.Size) {
	f := b.layer.Frame()
	f.Size = size
	b.layer.SetFrame(f)
}

func (b *Base) HandleEvent(rune) {}

// BecomeFirstResponder notifies every ancestor
func (b *Base) BecomeFirstResponder() {
	core.Assert(b.self != nil, "control: element used before Init")
	for p := b.parent; p != nil; p = p.Parent() {
		p.DescendantBecameFirstResponder(b.self)
	}
}

// ResignFirstResponder notifies every ancestor
func (b *Base) ResignFirstResponder() {
	core.Assert(b.self != nil, "control: element used before Init")
	for p := b.parent; p != nil; p = p.Parent() {
		p.DescendantResignedFirstResponder(b.self)
	}
}

func (b *Base) DescendantBecameFirstResponder(Element)   {}
func (b *Base) DescendantResignedFirstResponder(Element) {}

func (b *Base) Cell(geom.Position) (terminal.Cell, bool) { return terminal.Cell{}, false }

// AddSubview inserts child at index (clamped), detaching it from any previous parent
func (b *Base) AddSubview(child Element, index int) {
	cb := child.base()
	if cb.parent != nil {
		cb.parent.base().RemoveSubview(child)
	}
	index = max(0, min(index, len(b.children)))
	b.children = slices.Insert(b.children, index, child)
	cb.parent = b.self
	b.layer.AddLayer(cb.layer, index)
}

// RemoveSubview detaches child; the vacated area is invalidated
func (b *Base) RemoveSubview(child Element) {
	i := slices.Index(b.children, child)
	if i < 0 {
		return
	}
	b.RemoveSubviewAt(i)
}

// RemoveSubviewAt detaches the child at index
func (b *Base) RemoveSubviewAt(index int) {
	child := b.children[index]
	b.children = slices.Delete(b.children, index, index+1)
	cb := child.base()
	cb.parent = nil
	b.layer.RemoveLayer(cb.layer)
}

// SetSubviews replaces the children with elems, keeping the ones that stay in place
func (b *Base) SetSubviews(elems []Element) {
	if slices.Equal(b.children, elems) {
		return
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		if !slices.Contains(elems, b.children[i]) {
			b.RemoveSubviewAt(i)
		}
	}
	for i, e := range elems {
		if i < len(b.children) && b.children[i] == e {
			continue
		}
		b.AddSubview(e, i)
	}
}

// SetOrigin moves e within its parent without changing its size
func SetOrigin(e Element, p geom.Position) {
	l := e.Layer()
	f := l.Frame()
	f.Position = p
	l.SetFrame(f)
}

// SetSubviews replaces the children of e
func SetSubviews(e Element, elems []Element) {
	e.base().SetSubviews(elems)
}

// Detach removes e from its parent, if any
func Detach(e Element) {
	if p := e.Parent(); p != nil {
		p.base().RemoveSubview(e)
	}
}
