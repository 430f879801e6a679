package terminal

import (
	"bufio"

	"github.com/charmbracelet/x/ansi"
)

// Pre-allocated ANSI sequence fragments for the paint path
var (
	csi = []byte("\x1b[")

	sgrBold          = []byte("\x1b[1m")
	sgrFaint         = []byte("\x1b[2m")
	sgrIntensityOff  = []byte("\x1b[22m")
	sgrItalicOn      = []byte("\x1b[3m")
	sgrItalicOff     = []byte("\x1b[23m")
	sgrUnderlineOn   = []byte("\x1b[4m")
	sgrUnderlineOff  = []byte("\x1b[24m")
	sgrStrikeOn      = []byte("\x1b[9m")
	sgrStrikeOff     = []byte("\x1b[29m")
	sgrInvertedOn    = []byte("\x1b[7m")
	sgrInvertedOff   = []byte("\x1b[27m")
	sgrReset         = []byte("\x1b[0m")
	cursorHomeAndCLS = []byte(ansi.EraseEntireScreen + ansi.CursorHomePosition)
)

// Lifecycle sequences
const (
	seqAltScreenEnter = ansi.SetAltScreenSaveCursorMode
	seqAltScreenExit  = ansi.ResetAltScreenSaveCursorMode
	seqCursorHide     = ansi.HideCursor
	seqCursorShow     = ansi.ShowCursor
	seqAutoWrapOn     = ansi.SetAutoWrapMode
	seqMouseOn        = ansi.SetSgrExtMouseMode + ansi.SetNormalMouseMode
	seqMouseOff       = ansi.ResetNormalMouseMode + ansi.ResetSgrExtMouseMode
	seqRIS            = "\x1bc" // Reset to Initial State (emergency)
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
