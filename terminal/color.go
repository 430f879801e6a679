package terminal

import (
	"bufio"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ParseColorMode maps a config value to a mode; "auto" and unknown values detect from the environment
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, v := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		if os.Getenv(v) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func nearestCube(v int) int {
	best := 0
	for j := 1; j < 6; j++ {
		if abs(v-cubeValues[j]) < abs(v-cubeValues[best]) {
			best = j
		}
	}
	return best
}

// rgbTo256 finds the nearest xterm-256 palette index for an RGB value
func rgbTo256(r, g, b int) int {
	cr, cg, cb := nearestCube(r), nearestCube(g), nearestCube(b)
	cubeDist := abs(r-cubeValues[cr]) + abs(g-cubeValues[cg]) + abs(b-cubeValues[cb])

	// Grayscale ramp 232-255 covers luminance 8..238 in steps of 10
	gray := (r + g + b) / 3
	if gray >= 4 && gray <= 243 {
		idx := min(232+(gray-8)/10, 255)
		level := 8 + (idx-232)*10
		if abs(r-level)+abs(g-level)+abs(b-level) < cubeDist {
			return idx
		}
	}
	return 16 + 36*cr + 6*cg + cb
}

// paletteIndex returns the palette index of a non-RGB color
func paletteIndex(c tcell.Color) int {
	return int(c&^(tcell.ColorValid|tcell.ColorSpecial)) & 0xff
}

// writeColor emits a complete SGR color sequence. Default colors reset to the terminal default
func writeColor(w *bufio.Writer, c tcell.Color, fg bool, mode ColorMode) {
	w.Write(csi)
	switch {
	case !c.Valid():
		if fg {
			w.WriteString("39")
		} else {
			w.WriteString("49")
		}
	case c.IsRGB():
		r, g, b := c.RGB()
		if mode == ColorModeTrueColor {
			if fg {
				w.WriteString("38;2;")
			} else {
				w.WriteString("48;2;")
			}
			writeInt(w, int(r))
			w.WriteByte(';')
			writeInt(w, int(g))
			w.WriteByte(';')
			writeInt(w, int(b))
		} else {
			writeIndexed(w, rgbTo256(int(r), int(g), int(b)), fg)
		}
	default:
		writeIndexed(w, paletteIndex(c), fg)
	}
	w.WriteByte('m')
}

// writeIndexed writes palette parameters, using the short 16-color forms where they exist
func writeIndexed(w *bufio.Writer, idx int, fg bool) {
	base := 30
	if !fg {
		base = 40
	}
	switch {
	case idx < 8:
		writeInt(w, base+idx)
	case idx < 16:
		writeInt(w, base+60+idx-8)
	default:
		writeInt(w, base+8)
		w.WriteString(";5;")
		writeInt(w, idx)
	}
}
