package widget

import (
	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/terminal"
	"github.com/lixenwraith/retui/view"
)

// Button runs Action on Enter or space. It draws inverted while focused
type Button struct {
	Label  string
	Action func()
	// Disabled buttons are drawn faint and cannot take focus
	Disabled bool
}

func (b Button) MakeElement(ctx *view.Context) control.Element {
	e := &buttonElement{}
	e.Init(e)
	b.UpdateElement(ctx, e)
	return e
}

func (b Button) UpdateElement(ctx *view.Context, el control.Element) {
	e := el.(*buttonElement)
	e.action = b.Action
	st := styleOf(ctx)
	if b.Disabled {
		st.attrs |= terminal.AttrFaint
	}
	if b.Label != e.label || st != e.style || b.Disabled == e.Selectable() || e.cols == nil {
		e.label = b.Label
		e.cols = glyphs(b.Label)
		e.style = st
		e.Invalidate()
	}
	e.SetSelectable(!b.Disabled)
}

type buttonElement struct {
	control.Base
	label  string
	cols   []rune
	style  style
	action func()
}

func (e *buttonElement) Size(proposed geom.Size) geom.Size {
	return geom.Size{
		Width:  geom.Extended(len(e.cols)).Min(proposed.Width),
		Height: geom.Extended(1).Min(proposed.Height),
	}
}

func (e *buttonElement) HandleEvent(r rune) {
	if !e.Selectable() || e.action == nil {
		return
	}
	if r == '\n' || r == ' ' {
		e.action()
	}
}

func (e *buttonElement) BecomeFirstResponder() {
	e.Base.BecomeFirstResponder()
	e.Invalidate()
}

func (e *buttonElement) ResignFirstResponder() {
	e.Base.ResignFirstResponder()
	e.Invalidate()
}

func (e *buttonElement) Cell(at geom.Position) (terminal.Cell, bool) {
	col := at.Column.Int()
	if at.Line != 0 || col < 0 || col >= len(e.cols) || e.cols[col] == 0 {
		return terminal.Cell{}, false
	}
	c := e.style.cell(e.cols[col])
	if e.IsFocused() {
		c = c.WithAttrs(c.Attrs | terminal.AttrInverted)
	}
	return c, true
}
