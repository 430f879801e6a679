package widget

import (
	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/view"
)

// Navigator pushes and pops pages of the nearest NavigationStack
type Navigator struct {
	push func(view.View)
	pop  func() bool
}

// Push shows v on top of the current page
func (n *Navigator) Push(v view.View) {
	if n != nil && n.push != nil {
		n.push(v)
	}
}

// Pop returns to the previous page and reports whether there was one
func (n *Navigator) Pop() bool {
	return n != nil && n.pop != nil && n.pop()
}

// NavigatorKey exposes the enclosing stack's Navigator to descendants
var NavigatorKey = view.NewKey[*Navigator]("navigator", nil)

// NavigationStack shows the top page of a stack that starts at Root.
// Descendants push with NavigationLink or the Navigator; DEL or BS pops
type NavigationStack struct {
	Root view.View
}

func (s NavigationStack) Body(ctx *view.Context) view.View {
	pages := view.NamedState[[]view.View](ctx, "pages", nil)
	nav := &Navigator{
		push: func(v view.View) {
			pages.Update(func(p []view.View) []view.View {
				return append(p[:len(p):len(p)], v)
			})
		},
		pop: func() bool {
			p := pages.Get()
			if len(p) == 0 {
				return false
			}
			pages.Set(p[:len(p)-1])
			return true
		},
	}
	top := s.Root
	if p := pages.Get(); len(p) > 0 {
		top = p[len(p)-1]
	}
	return view.WithValue(navContainer{top: top, depth: len(pages.Get()), nav: nav}, NavigatorKey, nav)
}

// navContainer owns the element that hosts the top page
type navContainer struct {
	top   view.View
	depth int
	nav   *Navigator
}

func (c navContainer) MakeElement(ctx *view.Context) control.Element {
	e := &navElement{}
	e.Init(e)
	c.UpdateElement(ctx, e)
	return e
}

func (c navContainer) UpdateElement(_ *view.Context, el control.Element) {
	e := el.(*navElement)
	e.nav = c.nav
	if e.depth != c.depth {
		e.depth = c.depth
		e.Invalidate()
	}
}

func (c navContainer) Content() []view.View {
	return []view.View{c.top}
}

type navElement struct {
	control.Base
	nav   *Navigator
	depth int
}

func (e *navElement) NavigationPop() bool {
	return e.nav.Pop()
}

// Size fills bounded proposals and otherwise takes the page's size
func (e *navElement) Size(proposed geom.Size) geom.Size {
	var s geom.Size
	for _, c := range e.Children() {
		cs := c.Size(proposed)
		s.Width = s.Width.Max(cs.Width)
		s.Height = s.Height.Max(cs.Height)
	}
	if !proposed.Width.IsInfinite() {
		s.Width = proposed.Width
	}
	if !proposed.Height.IsInfinite() {
		s.Height = proposed.Height
	}
	return s
}

func (e *navElement) Layout(size geom.Size) {
	e.Base.Layout(size)
	for _, c := range e.Children() {
		c.Layout(c.Size(size))
		control.SetOrigin(c, geom.Zero)
	}
}

// NavigationLink is a button that pushes Destination onto the enclosing NavigationStack
type NavigationLink struct {
	Label       string
	Destination view.View
}

func (l NavigationLink) Body(ctx *view.Context) view.View {
	nav := NavigatorKey.Get(ctx.Environment())
	dest := l.Destination
	return Button{
		Label:    l.Label,
		Action:   func() { nav.Push(dest) },
		Disabled: nav == nil,
	}
}
