package input

// ArrowState tracks the arrow-key parser state machine
type ArrowState uint8

const (
	ArrowIdle ArrowState = iota // Awaiting ESC
	ArrowEsc                    // After ESC, awaiting [ or O
	ArrowCSI                    // After ESC [, skipping digits and ; until a final byte
	ArrowSS3                    // After ESC O, awaiting the final byte
)

// MouseState tracks the SGR mouse parser state machine
type MouseState uint8

const (
	MouseIdle    MouseState = iota // Awaiting ESC
	MouseEsc                       // After ESC, awaiting [
	MouseBracket                   // After ESC [, awaiting <
	MouseButton                    // Accumulating the button code until ;
	MouseX                         // Accumulating the 1-based column until ;
	MouseY                         // Accumulating the 1-based line until M or m
)
