package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/terminal"
)

// ErrorView is the placeholder rendered where a body failed
type ErrorView struct {
	Err error
}

func (v ErrorView) text() []rune {
	if v.Err == nil {
		return []rune("! error")
	}
	return []rune("! " + v.Err.Error())
}

func (v ErrorView) MakeElement(*Context) control.Element {
	e := &errorElement{text: v.text()}
	e.Init(e)
	return e
}

func (v ErrorView) UpdateElement(_ *Context, el control.Element) {
	e := el.(*errorElement)
	if text := v.text(); string(text) != string(e.text) {
		e.text = text
		e.Invalidate()
	}
}

type errorElement struct {
	control.Base
	text []rune
}

func (e *errorElement) Size(proposed geom.Size) geom.Size {
	return geom.Size{
		Width:  geom.Extended(len(e.text)).Min(proposed.Width),
		Height: geom.Extended(1).Min(proposed.Height),
	}
}

func (e *errorElement) Cell(at geom.Position) (terminal.Cell, bool) {
	if at.Line != 0 || at.Column.Int() >= len(e.text) {
		return terminal.Cell{}, false
	}
	return terminal.Styled(e.text[at.Column.Int()], tcell.ColorRed, tcell.ColorDefault, terminal.AttrBold), true
}
