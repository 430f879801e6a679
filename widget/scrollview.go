package widget

import (
	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/view"
)

// ScrollView shows a window onto Views stacked along Axis. It follows the focused
// descendant and scrolls on arrows or the mouse wheel when focus cannot move
type ScrollView struct {
	Axis  Axis
	Views []view.View
}

func (s ScrollView) MakeElement(*view.Context) control.Element {
	e := &scrollElement{axis: s.Axis}
	e.Init(e)
	return e
}

func (s ScrollView) UpdateElement(_ *view.Context, el control.Element) {
	e := el.(*scrollElement)
	if e.axis != s.Axis {
		e.axis = s.Axis
		e.offset = 0
		e.Invalidate()
	}
}

func (s ScrollView) Content() []view.View {
	if s.Axis == Horizontal {
		return []view.View{HStack(s.Views)}
	}
	return []view.View{VStack(s.Views)}
}

type scrollElement struct {
	control.Base
	axis   Axis
	offset geom.Extended
}

// content returns the stack holding the scrolled views
func (e *scrollElement) content() control.Element {
	if kids := e.Children(); len(kids) > 0 {
		return kids[0]
	}
	return nil
}

// contentSize asks the content for its extent with the scroll axis unbounded
func (e *scrollElement) contentSize(viewport geom.Size) geom.Size {
	c := e.content()
	if c == nil {
		return geom.Size{}
	}
	proposal := viewport
	if e.axis == Vertical {
		proposal.Height = geom.Infinity
	} else {
		proposal.Width = geom.Infinity
	}
	s := c.Size(proposal)
	if s.Width.IsInfinite() {
		s.Width = viewport.Width
	}
	if s.Height.IsInfinite() {
		s.Height = viewport.Height
	}
	return s
}

func (e *scrollElement) Size(proposed geom.Size) geom.Size {
	s := e.contentSize(proposed)
	// The viewport takes the whole scrolled extent it is offered
	if e.axis == Vertical && !proposed.Height.IsInfinite() {
		s.Height = proposed.Height
	}
	if e.axis == Horizontal && !proposed.Width.IsInfinite() {
		s.Width = proposed.Width
	}
	return s.Min(proposed)
}

func (e *scrollElement) Layout(size geom.Size) {
	e.Base.Layout(size)
	c := e.content()
	if c == nil {
		return
	}
	cs := e.contentSize(size)
	c.Layout(cs)
	e.offset = e.clamp(e.offset)
	e.place()
}

// extent returns the content length along the axis
func (e *scrollElement) extent() geom.Extended {
	c := e.content()
	if c == nil {
		return 0
	}
	s := c.Layer().Frame().Size
	if e.axis == Vertical {
		return s.Height
	}
	return s.Width
}

// clamp keeps the last content line (or column) reachable at the top of the viewport
func (e *scrollElement) clamp(off geom.Extended) geom.Extended {
	return max(0, min(off, e.extent()-1))
}

func (e *scrollElement) place() {
	c := e.content()
	if e.axis == Vertical {
		control.SetOrigin(c, geom.Position{Line: -e.offset})
	} else {
		control.SetOrigin(c, geom.Position{Column: -e.offset})
	}
}

// ScrollBy moves the viewport along its axis and reports whether it moved
func (e *scrollElement) ScrollBy(lines, columns int) bool {
	if e.content() == nil {
		return false
	}
	delta := geom.Extended(lines)
	if e.axis == Horizontal {
		delta = geom.Extended(columns)
	}
	if delta == 0 {
		return false
	}
	off := e.clamp(e.offset.Add(delta))
	if off == e.offset {
		return false
	}
	e.offset = off
	e.place()
	return true
}

// DescendantBecameFirstResponder scrolls the newly focused element into view
func (e *scrollElement) DescendantBecameFirstResponder(d control.Element) {
	c := e.content()
	if c == nil {
		return
	}
	pos := control.AbsoluteFrame(d).Position.Sub(control.AbsoluteFrame(c).Position)
	dest, viewport := pos.Line, e.Layer().Frame().Size.Height
	if e.axis == Horizontal {
		dest, viewport = pos.Column, e.Layer().Frame().Size.Width
	}
	if viewport <= 0 {
		return
	}
	off := e.offset
	if off > dest {
		off = dest
	} else if off < dest-viewport+1 {
		off = dest - viewport + 1
	}
	if off = e.clamp(off); off != e.offset {
		e.offset = off
		e.place()
	}
}
