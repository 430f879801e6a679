package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/terminal"
	"github.com/lixenwraith/retui/view"
)

// Text shows a single line of text
type Text string

func (t Text) MakeElement(ctx *view.Context) control.Element {
	e := &textElement{}
	e.Init(e)
	e.set(string(t), styleOf(ctx))
	return e
}

func (t Text) UpdateElement(ctx *view.Context, el control.Element) {
	el.(*textElement).set(string(t), styleOf(ctx))
}

// glyphs maps a string onto display columns. Wide runes take their first column; the
// continuation column holds 0
func glyphs(s string) []rune {
	cols := make([]rune, 0, len(s))
	for _, r := range s {
		switch runewidth.RuneWidth(r) {
		case 0:
			continue
		case 2:
			cols = append(cols, r, 0)
		default:
			cols = append(cols, r)
		}
	}
	return cols
}

type textElement struct {
	control.Base
	text  string
	cols  []rune
	style style
}

func (e *textElement) set(text string, st style) {
	if text == e.text && st == e.style && e.cols != nil {
		return
	}
	e.text = text
	e.cols = glyphs(text)
	e.style = st
	e.Invalidate()
}

func (e *textElement) Size(proposed geom.Size) geom.Size {
	return geom.Size{
		Width:  geom.Extended(len(e.cols)).Min(proposed.Width),
		Height: geom.Extended(1).Min(proposed.Height),
	}
}

func (e *textElement) Cell(at geom.Position) (terminal.Cell, bool) {
	col := at.Column.Int()
	if at.Line != 0 || col < 0 || col >= len(e.cols) || e.cols[col] == 0 {
		return terminal.Cell{}, false
	}
	return e.style.cell(e.cols[col]), true
}
