package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrFaint         Attr = 1 << 1
	AttrItalic        Attr = 1 << 2
	AttrUnderline     Attr = 1 << 3
	AttrStrikethrough Attr = 1 << 4
	AttrInverted      Attr = 1 << 5
)

// Normalize applies the intensity rule: bold and faint are exclusive and bold wins
func (a Attr) Normalize() Attr {
	if a&AttrBold != 0 {
		return a &^ AttrFaint
	}
	return a
}

// Has reports whether every bit of f is set
func (a Attr) Has(f Attr) bool {
	return a&f == f
}

// Cell represents a single terminal cell. Cells compare structurally with ==
type Cell struct {
	Char  rune
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs Attr
}

// Blank is a space with default colors and no attributes
var Blank = Cell{Char: ' '}

// NewCell returns a cell showing ch with default colors
func NewCell(ch rune) Cell {
	return Cell{Char: ch}
}

// Styled returns a cell with the given colors and normalized attributes
func Styled(ch rune, fg, bg tcell.Color, attrs Attr) Cell {
	return Cell{Char: ch, Fg: fg, Bg: bg, Attrs: attrs.Normalize()}
}

// WithAttrs returns a copy with attrs replaced and normalized
func (c Cell) WithAttrs(attrs Attr) Cell {
	c.Attrs = attrs.Normalize()
	return c
}

// WithFg returns a copy with the foreground replaced
func (c Cell) WithFg(fg tcell.Color) Cell {
	c.Fg = fg
	return c
}

// WithBg returns a copy with the background replaced
func (c Cell) WithBg(bg tcell.Color) Cell {
	c.Bg = bg
	return c
}
