package app

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/retui/config"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/input"
	"github.com/lixenwraith/retui/terminal"
)

// Option configures an Application
type Option func(*Application)

// WithLogger routes engine diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(a *Application) { a.logger = l }
}

// WithConfig applies startup options; the default is config.Default
func WithConfig(c *config.Config) Option {
	return func(a *Application) { a.cfg = c }
}

// WithOutput draws into w instead of a terminal. Run is unavailable; input is fed
// through HandleInput and drawing happens on Flush
func WithOutput(w io.Writer) Option {
	return func(a *Application) { a.headless = w }
}

// WithBackend runs the terminal lifecycle over b instead of stdin/stdout. Run then
// skips the tty check
func WithBackend(b terminal.Backend) Option {
	return func(a *Application) { a.backend = b }
}

// WithSize fixes the screen size for WithOutput
func WithSize(width, height int) Option {
	return func(a *Application) { a.fixedSize = geom.Sz(width, height) }
}

// WithGlobalKeyHandler receives Enter and every key no reserved shortcut consumed,
// before the focused element
func WithGlobalKeyHandler(fn func(r rune)) Option {
	return func(a *Application) { a.globalKey = fn }
}

// WithKeyTable replaces the reserved shortcuts; the default is input.DefaultKeyTable
func WithKeyTable(t *input.KeyTable) Option {
	return func(a *Application) { a.keyTable = t }
}
