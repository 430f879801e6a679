package terminal

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Output writes cells to the terminal, emitting only the state changes since the
// last write: cursor position, foreground, background and each attribute toggle
type Output struct {
	writer    *bufio.Writer
	colorMode ColorMode

	cursorX     int
	cursorY     int
	cursorValid bool

	lastFg    tcell.Color
	lastBg    tcell.Color
	lastAttr  Attr
	lastValid bool
}

// NewOutput creates an output writer over w
func NewOutput(w io.Writer, colorMode ColorMode) *Output {
	return &Output{
		writer:    bufio.NewWriterSize(w, 65536),
		colorMode: colorMode,
	}
}

// ColorMode returns the color mode used for RGB colors
func (o *Output) ColorMode() ColorMode {
	return o.colorMode
}

// MoveTo positions the cursor (0-indexed) unless it is already there
func (o *Output) MoveTo(x, y int) {
	if o.cursorValid && x == o.cursorX && y == o.cursorY {
		return
	}
	writeCursorPos(o.writer, x, y)
	o.cursorX = x
	o.cursorY = y
	o.cursorValid = true
}

// SetStyle emits the color and attribute sequences that differ from the last emission
func (o *Output) SetStyle(fg, bg tcell.Color, attr Attr) {
	w := o.writer
	attr = attr.Normalize()

	if !o.lastValid {
		// Unknown terminal state: reset to a known baseline first
		w.Write(sgrReset)
		o.lastFg = tcell.ColorDefault
		o.lastBg = tcell.ColorDefault
		o.lastAttr = AttrNone
		o.lastValid = true
	}

	if fg != o.lastFg {
		writeColor(w, fg, true, o.colorMode)
		o.lastFg = fg
	}
	if bg != o.lastBg {
		writeColor(w, bg, false, o.colorMode)
		o.lastBg = bg
	}
	if attr != o.lastAttr {
		o.writeAttrToggles(attr)
		o.lastAttr = attr
	}
}

// writeAttrToggles emits individual on/off sequences; bold and faint are handled as one
// intensity pair since SGR 22 clears both
func (o *Output) writeAttrToggles(attr Attr) {
	w := o.writer
	last := o.lastAttr

	intensity := AttrBold | AttrFaint
	if attr&intensity != last&intensity {
		if last&intensity != 0 {
			w.Write(sgrIntensityOff)
		}
		if attr&AttrBold != 0 {
			w.Write(sgrBold)
		} else if attr&AttrFaint != 0 {
			w.Write(sgrFaint)
		}
	}

	toggle := func(bit Attr, on, off []byte) {
		if attr&bit == last&bit {
			return
		}
		if attr&bit != 0 {
			w.Write(on)
		} else {
			w.Write(off)
		}
	}
	toggle(AttrItalic, sgrItalicOn, sgrItalicOff)
	toggle(AttrUnderline, sgrUnderlineOn, sgrUnderlineOff)
	toggle(AttrStrikethrough, sgrStrikeOn, sgrStrikeOff)
	toggle(AttrInverted, sgrInvertedOn, sgrInvertedOff)
}

// Put writes a glyph at the cursor and advances the tracked cursor by its display width.
// Glyphs that are not one column wide leave the cursor position unknown
func (o *Output) Put(ch rune) {
	w := o.writer
	if ch == 0 {
		ch = ' '
	}
	if ch < 0x80 {
		w.WriteByte(byte(ch))
	} else {
		w.WriteRune(ch)
	}
	if runewidth.RuneWidth(ch) == 1 {
		o.cursorX++
	} else {
		o.cursorValid = false
	}
}

// WriteCell moves to (x, y), applies the cell style and writes its glyph
func (o *Output) WriteCell(x, y int, c Cell) {
	o.MoveTo(x, y)
	o.SetStyle(c.Fg, c.Bg, c.Attrs)
	o.Put(c.Char)
}

// WriteRaw writes a control sequence; the caller states what it invalidates
func (o *Output) WriteRaw(seq string) {
	o.writer.WriteString(seq)
}

// Clear erases the screen and homes the cursor with default style
func (o *Output) Clear() {
	w := o.writer
	w.Write(sgrReset)
	w.Write(cursorHomeAndCLS)
	o.lastFg = tcell.ColorDefault
	o.lastBg = tcell.ColorDefault
	o.lastAttr = AttrNone
	o.lastValid = true
	o.cursorX, o.cursorY = 0, 0
	o.cursorValid = true
}

// ResetStyle returns the terminal to default style
func (o *Output) ResetStyle() {
	o.writer.Write(sgrReset)
	o.lastFg = tcell.ColorDefault
	o.lastBg = tcell.ColorDefault
	o.lastAttr = AttrNone
	o.lastValid = true
}

// Invalidate forgets the tracked cursor and style, forcing the next write to re-emit them
func (o *Output) Invalidate() {
	o.cursorValid = false
	o.lastValid = false
}

// Buffered returns the number of bytes waiting for Flush
func (o *Output) Buffered() int {
	return o.writer.Buffered()
}

// Flush writes buffered output to the terminal
func (o *Output) Flush() error {
	return o.writer.Flush()
}
