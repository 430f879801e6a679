package widget

import (
	"slices"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/input"
	"github.com/lixenwraith/retui/terminal"
	"github.com/lixenwraith/retui/view"
)

// PlaceholderColorKey colors the placeholder of an empty TextField
var PlaceholderColorKey = view.NewKey[tcell.Color]("placeholderColor", tcell.ColorGray)

// TextField edits Text in place. Left and right arrows (delivered as CTRL-B and CTRL-F)
// move the caret, DEL or BS deletes before it and Enter calls OnCommit
type TextField struct {
	Placeholder string
	Text        view.Binding[string]
	OnCommit    func(text string)
}

func (f TextField) MakeElement(ctx *view.Context) control.Element {
	e := &textFieldElement{}
	e.Init(e)
	e.SetSelectable(true)
	f.UpdateElement(ctx, e)
	e.caret = len([]rune(e.text.Get()))
	return e
}

func (f TextField) UpdateElement(ctx *view.Context, el control.Element) {
	e := el.(*textFieldElement)
	e.text = f.Text
	e.onCommit = f.OnCommit
	e.placeholder = []rune(f.Placeholder)
	e.style = styleOf(ctx)
	e.placeholderColor = PlaceholderColorKey.Get(ctx.Environment())
	e.caret = min(e.caret, len([]rune(e.text.Get())))
	e.Invalidate()
}

type textFieldElement struct {
	control.Base
	text             view.Binding[string]
	onCommit         func(string)
	placeholder      []rune
	placeholderColor tcell.Color
	style            style
	caret            int
}

func (e *textFieldElement) IsTextInput() bool { return true }

func (e *textFieldElement) runes() []rune { return []rune(e.text.Get()) }

func (e *textFieldElement) Size(proposed geom.Size) geom.Size {
	w := max(len(e.runes()), len(e.placeholder)) + 1
	return geom.Size{
		Width:  geom.Extended(w).Min(proposed.Width),
		Height: geom.Extended(1).Min(proposed.Height),
	}
}

func (e *textFieldElement) HandleEvent(r rune) {
	text := e.runes()
	e.caret = min(e.caret, len(text))
	switch {
	case r == input.LF || r == input.CR:
		if e.onCommit != nil {
			e.onCommit(string(text))
		}
	case r == input.DEL || r == input.BS:
		if e.caret == 0 {
			return
		}
		text = slices.Delete(text, e.caret-1, e.caret)
		e.caret--
		e.text.Set(string(text))
	case r == input.CtrlB:
		if e.caret > 0 {
			e.caret--
		}
	case r == input.CtrlF:
		if e.caret < len(text) {
			e.caret++
		}
	case unicode.IsPrint(r):
		text = slices.Insert(text, e.caret, r)
		e.caret++
		e.text.Set(string(text))
	default:
		return
	}
	e.Invalidate()
}

func (e *textFieldElement) BecomeFirstResponder() {
	e.Base.BecomeFirstResponder()
	e.Invalidate()
}

func (e *textFieldElement) ResignFirstResponder() {
	e.Base.ResignFirstResponder()
	e.Invalidate()
}

func (e *textFieldElement) Cell(at geom.Position) (terminal.Cell, bool) {
	if at.Line != 0 {
		return terminal.Cell{}, false
	}
	col := at.Column.Int()
	text := e.runes()
	caret := e.IsFocused() && col == min(e.caret, len(text))

	var c terminal.Cell
	switch {
	case len(text) == 0 && col < len(e.placeholder):
		c = terminal.Styled(e.placeholder[col], e.placeholderColor, tcell.ColorDefault, e.style.attrs)
	case col < len(text):
		c = e.style.cell(text[col])
	default:
		c = terminal.Blank
	}
	if caret {
		c = c.WithAttrs(c.Attrs | terminal.AttrUnderline)
	}
	return c, true
}
