// Package widget provides a small set of descriptions built on the view and control contracts
package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retui/terminal"
	"github.com/lixenwraith/retui/view"
)

// Axis is the primary direction of a stack or scroll view
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

var (
	// ForegroundKey holds the text color inherited by Text, Button and TextField
	ForegroundKey = view.NewKey[tcell.Color]("foreground", tcell.ColorDefault)
	// AttrsKey holds extra attributes inherited by text-drawing widgets
	AttrsKey = view.NewKey[terminal.Attr]("attrs", terminal.AttrNone)

	// stackAxisKey tells a Spacer which way to expand
	stackAxisKey = view.NewKey[Axis]("stackAxis", Vertical)
)

// Foreground colors content's text. name is any color tcell knows: a W3C name or #rrggbb
func Foreground(content view.View, name string) view.View {
	return view.WithValue(content, ForegroundKey, tcell.GetColor(name))
}

// Bold draws content's text bold
func Bold(content view.View) view.View {
	return view.WithEnvironment(content, func(env view.Environment) {
		AttrsKey.Set(env, AttrsKey.Get(env)|terminal.AttrBold)
	})
}

// Underline draws content's text underlined
func Underline(content view.View) view.View {
	return view.WithEnvironment(content, func(env view.Environment) {
		AttrsKey.Set(env, AttrsKey.Get(env)|terminal.AttrUnderline)
	})
}

// style is the inherited text style
type style struct {
	fg    tcell.Color
	attrs terminal.Attr
}

func styleOf(ctx *view.Context) style {
	env := ctx.Environment()
	return style{fg: ForegroundKey.Get(env), attrs: AttrsKey.Get(env)}
}

func (s style) cell(ch rune) terminal.Cell {
	return terminal.Styled(ch, s.fg, tcell.ColorDefault, s.attrs)
}
