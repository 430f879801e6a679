package input

// Control characters the dispatcher recognizes
const (
	CtrlB = '\x02' // Caret left in text inputs
	EOT   = '\x04' // Ctrl-D
	CtrlF = '\x06' // Caret right in text inputs
	BS    = '\x08'
	LF    = '\n'
	CR    = '\r'
	ESC   = '\x1b'
	DEL   = '\x7f'
)
