package widget

import (
	"slices"

	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/view"
)

// VStack arranges its content top to bottom, leading-aligned
type VStack []view.View

func (s VStack) MakeElement(*view.Context) control.Element    { return newStackElement(Vertical) }
func (s VStack) UpdateElement(*view.Context, control.Element) {}

// Content marks the children with the stack axis so Spacers expand along it
func (s VStack) Content() []view.View {
	return []view.View{view.WithValue(view.Group(s), stackAxisKey, Vertical)}
}

// HStack arranges its content left to right, top-aligned
type HStack []view.View

func (s HStack) MakeElement(*view.Context) control.Element    { return newStackElement(Horizontal) }
func (s HStack) UpdateElement(*view.Context, control.Element) {}

func (s HStack) Content() []view.View {
	return []view.View{view.WithValue(view.Group(s), stackAxisKey, Horizontal)}
}

// stackElement distributes its primary extent among children, least flexible first.
// Flexibility is how much a child grows between an empty and the full proposal. Each
// child is offered an equal share of what remains and keeps at most the remainder
type stackElement struct {
	control.Base
	axis Axis
}

func newStackElement(axis Axis) *stackElement {
	e := &stackElement{axis: axis}
	e.Init(e)
	return e
}

// main and cross split a size along the stack axis
func (e *stackElement) split(s geom.Size) (main, cross geom.Extended) {
	if e.axis == Vertical {
		return s.Height, s.Width
	}
	return s.Width, s.Height
}

func (e *stackElement) join(main, cross geom.Extended) geom.Size {
	if e.axis == Vertical {
		return geom.Size{Width: cross, Height: main}
	}
	return geom.Size{Width: main, Height: cross}
}

// childSizes negotiates a size for every child within proposed
func (e *stackElement) childSizes(proposed geom.Size) []geom.Size {
	kids := e.Children()
	sizes := make([]geom.Size, len(kids))
	if len(kids) == 0 {
		return sizes
	}
	mainLimit, cross := e.split(proposed)

	flex := make([]geom.Extended, len(kids))
	for i, c := range kids {
		lo, _ := e.split(c.Size(e.join(0, cross)))
		hi, _ := e.split(c.Size(e.join(mainLimit, cross)))
		flex[i] = hi.Sub(lo)
	}
	order := make([]int, len(kids))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case flex[a] < flex[b]:
			return -1
		case flex[a] > flex[b]:
			return 1
		}
		return 0
	})

	remaining := mainLimit
	left := len(kids)
	for _, i := range order {
		share := remaining.Div(geom.Extended(left))
		s := kids[i].Size(e.join(share, cross))
		m, c := e.split(s)
		m = max(0, m.Min(remaining))
		c = max(0, c.Min(cross))
		sizes[i] = e.join(m, c)
		remaining = remaining.Sub(m)
		left--
	}
	return sizes
}

func (e *stackElement) Size(proposed geom.Size) geom.Size {
	var main, cross geom.Extended
	for _, s := range e.childSizes(proposed) {
		m, c := e.split(s)
		main = main.Add(m)
		cross = cross.Max(c)
	}
	return e.join(main, cross)
}

func (e *stackElement) Layout(size geom.Size) {
	e.Base.Layout(size)
	var offset geom.Extended
	for i, s := range e.childSizes(size) {
		c := e.Children()[i]
		c.Layout(s)
		if e.axis == Vertical {
			control.SetOrigin(c, geom.Position{Line: offset})
		} else {
			control.SetOrigin(c, geom.Position{Column: offset})
		}
		m, _ := e.split(s)
		offset = offset.Add(m)
	}
}

// Spacer expands along the enclosing stack's axis. It takes MinLength when the
// proposal is unbounded
type Spacer struct {
	MinLength int
}

func (s Spacer) MakeElement(ctx *view.Context) control.Element {
	e := &spacerElement{}
	e.Init(e)
	s.UpdateElement(ctx, e)
	return e
}

func (s Spacer) UpdateElement(ctx *view.Context, el control.Element) {
	e := el.(*spacerElement)
	e.axis = stackAxisKey.Get(ctx.Environment())
	e.minLength = geom.Extended(max(0, s.MinLength))
}

type spacerElement struct {
	control.Base
	axis      Axis
	minLength geom.Extended
}

func (e *spacerElement) Size(proposed geom.Size) geom.Size {
	extent := func(p geom.Extended) geom.Extended {
		if p.IsInfinite() {
			return e.minLength
		}
		return e.minLength.Max(p)
	}
	if e.axis == Horizontal {
		return geom.Size{Width: extent(proposed.Width)}
	}
	return geom.Size{Height: extent(proposed.Height)}
}
