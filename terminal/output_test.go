package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestOutput() (*Output, *bytes.Buffer) {
	var buf bytes.Buffer
	o := NewOutput(&buf, ColorModeTrueColor)
	o.Clear()
	o.Flush()
	buf.Reset()
	return o, &buf
}

func TestOutputCursorSkipsAdjacentWrites(t *testing.T) {
	o, buf := newTestOutput()

	o.WriteCell(3, 2, NewCell('a'))
	o.WriteCell(4, 2, NewCell('b'))
	o.Flush()

	if got := strings.Count(buf.String(), "H"); got != 1 {
		t.Errorf("Expected one cursor move for adjacent writes, got %d in %q", got, buf.String())
	}
	if !strings.HasSuffix(buf.String(), "ab") {
		t.Errorf("Expected glyphs written back to back, got %q", buf.String())
	}
}

func TestOutputCursorMovesOnGap(t *testing.T) {
	o, buf := newTestOutput()

	o.WriteCell(0, 0, NewCell('a'))
	o.WriteCell(2, 0, NewCell('b'))
	o.Flush()

	if buf.String() != "a\x1b[1;3Hb" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestOutputWideGlyphInvalidatesCursor(t *testing.T) {
	o, buf := newTestOutput()

	o.WriteCell(0, 0, NewCell('世'))
	o.WriteCell(2, 0, NewCell('x'))
	o.Flush()

	if !strings.Contains(buf.String(), "\x1b[1;3H") {
		t.Errorf("Expected explicit move after a wide glyph, got %q", buf.String())
	}
}

func TestOutputColorsEmittedOnlyOnChange(t *testing.T) {
	o, buf := newTestOutput()
	red := tcell.PaletteColor(1)

	o.WriteCell(0, 0, NewCell('a').WithFg(red))
	o.WriteCell(1, 0, NewCell('b').WithFg(red))
	o.Flush()

	if buf.String() != "\x1b[31mab" {
		t.Errorf("Expected a single fg sequence, got %q", buf.String())
	}

	buf.Reset()
	o.WriteCell(2, 0, NewCell('c'))
	o.Flush()
	if buf.String() != "\x1b[39mc" {
		t.Errorf("Expected default fg reset, got %q", buf.String())
	}
}

func TestWriteColorForms(t *testing.T) {
	tests := []struct {
		name string
		c    tcell.Color
		fg   bool
		mode ColorMode
		want string
	}{
		{"default fg", tcell.ColorDefault, true, ColorModeTrueColor, "\x1b[39m"},
		{"default bg", tcell.ColorDefault, false, ColorModeTrueColor, "\x1b[49m"},
		{"basic fg", tcell.PaletteColor(2), true, ColorMode256, "\x1b[32m"},
		{"bright bg", tcell.PaletteColor(9), false, ColorMode256, "\x1b[101m"},
		{"indexed fg", tcell.PaletteColor(200), true, ColorMode256, "\x1b[38;5;200m"},
		{"rgb truecolor", tcell.NewRGBColor(1, 2, 3), true, ColorModeTrueColor, "\x1b[38;2;1;2;3m"},
		{"rgb downsampled", tcell.NewRGBColor(255, 0, 0), false, ColorMode256, "\x1b[48;5;196m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			o := NewOutput(&buf, tt.mode)
			writeColor(o.writer, tt.c, tt.fg, tt.mode)
			o.Flush()
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestAttrTogglesIndividually(t *testing.T) {
	tests := []struct {
		name string
		from Attr
		to   Attr
		want string
	}{
		{"bold on", AttrNone, AttrBold, "\x1b[1m"},
		{"bold off", AttrBold, AttrNone, "\x1b[22m"},
		{"bold to faint", AttrBold, AttrFaint, "\x1b[22m\x1b[2m"},
		{"bold wins over faint", AttrNone, AttrBold | AttrFaint, "\x1b[1m"},
		{"italic and underline", AttrNone, AttrItalic | AttrUnderline, "\x1b[3m\x1b[4m"},
		{"strike off inverted on", AttrStrikethrough, AttrInverted, "\x1b[29m\x1b[7m"},
		{"unchanged", AttrItalic, AttrItalic, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, buf := newTestOutput()
			o.SetStyle(tcell.ColorDefault, tcell.ColorDefault, tt.from)
			o.Flush()
			buf.Reset()

			o.SetStyle(tcell.ColorDefault, tcell.ColorDefault, tt.to)
			o.Flush()
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestOutputInvalidateResetsBaseline(t *testing.T) {
	o, buf := newTestOutput()
	o.Invalidate()

	o.WriteCell(0, 0, NewCell('a'))
	o.Flush()

	if buf.String() != "\x1b[1;1H\x1b[0ma" {
		t.Errorf("Expected move and reset after invalidation, got %q", buf.String())
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    int
	}{
		{0, 0, 0, 16},
		{255, 255, 255, 231},
		{255, 0, 0, 196},
		{128, 128, 128, 244},
	}
	for _, tt := range tests {
		if got := rgbTo256(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("rgbTo256(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}
