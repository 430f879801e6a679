package render

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/status"
	"github.com/lixenwraith/retui/terminal"
)

// FocusFunc reports the absolute frame of the first responder
type FocusFunc func() (geom.Rect, bool)

// Option configures a Renderer
type Option func(*Renderer)

// WithASCIISnapshot renders space cells with a non-default background as full blocks
func WithASCIISnapshot(on bool) Option {
	return func(r *Renderer) { r.asciiSnapshot = on }
}

// WithFocusHighlight draws an inverted box on the border of the focused frame
func WithFocusHighlight(focus FocusFunc) Option {
	return func(r *Renderer) { r.focus = focus }
}

// WithLogger sets the renderer logger
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithStats records frame, cell and byte counts into reg
func WithStats(reg *status.Registry) Option {
	return func(r *Renderer) {
		r.frames = reg.Ints.Get(status.RenderFrames)
		r.cells = reg.Ints.Get(status.RenderCells)
		r.bytes = reg.Ints.Get(status.RenderBytes)
		r.lastMs = reg.Floats.Get(status.RenderLastMs)
	}
}

// Renderer paints the root layer into the terminal, emitting only cells that differ
// from what was last painted at each position
type Renderer struct {
	layer *Layer
	out   *terminal.Output
	cache *CacheBuffer

	asciiSnapshot bool
	focus         FocusFunc
	lastFocus     geom.Rect
	hasLastFocus  bool

	logger *log.Logger

	// Cached metrics, nil without WithStats
	frames *atomic.Int64
	cells  *atomic.Int64
	bytes  *atomic.Int64
	lastMs *status.AtomicFloat
}

// NewRenderer creates a renderer for the root layer with a cache sized to its frame
func NewRenderer(layer *Layer, out *terminal.Output, opts ...Option) *Renderer {
	r := &Renderer{
		layer:  layer,
		out:    out,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.SetCache(layer.Frame().Size)
	return r
}

// SetCache reallocates the cache for a new screen size; every position repaints on the next draw
func (r *Renderer) SetCache(size geom.Size) {
	if r.cache == nil {
		r.cache = NewCacheBuffer(size.Width.Int(), size.Height.Int())
	} else {
		r.cache.Resize(size.Width.Int(), size.Height.Int())
	}
	r.hasLastFocus = false
}

// Update draws the invalidated rectangle and clears it. Nothing is written when nothing is invalid
func (r *Renderer) Update() error {
	dirty, ok := r.layer.Invalidated()
	dirty = dirty.Offset(r.layer.Frame().Position)
	dirty, ok = r.mergeFocusChange(dirty, ok)
	if !ok {
		return nil
	}
	r.layer.ClearInvalidated()
	return r.paint(dirty)
}

// Draw repaints the whole grid
func (r *Renderer) Draw() error {
	r.layer.ClearInvalidated()
	r.mergeFocusChange(geom.Rect{}, false)
	return r.paint(geom.Rect{Size: r.cache.Size()})
}

func (r *Renderer) paint(rect geom.Rect) error {
	start := time.Now()
	emitted := r.drawRect(rect)
	if r.frames != nil {
		r.frames.Add(1)
		r.cells.Add(int64(emitted))
		r.bytes.Add(int64(r.out.Buffered()))
		r.lastMs.Set(float64(time.Since(start).Microseconds()) / 1000)
	}
	return r.out.Flush()
}

// mergeFocusChange adds the old and new highlight boxes to the dirty area when focus moved
func (r *Renderer) mergeFocusChange(dirty geom.Rect, ok bool) (geom.Rect, bool) {
	if r.focus == nil {
		return dirty, ok
	}
	cur, has := r.focus()
	if has == r.hasLastFocus && cur == r.lastFocus {
		return dirty, ok
	}
	add := func(rect geom.Rect) {
		if rect.IsEmpty() {
			return
		}
		if ok {
			dirty = dirty.Union(rect)
		} else {
			dirty, ok = rect, true
		}
	}
	if r.hasLastFocus {
		add(r.lastFocus)
	}
	if has {
		add(cur)
	}
	r.lastFocus, r.hasLastFocus = cur, has
	return dirty, ok
}

// continuation is cached for the column right of a wide glyph. It never equals a
// resolved cell, so the column repaints once the glyph goes away
var continuation = terminal.Cell{}

func isWide(c terminal.Cell) bool {
	return runewidth.RuneWidth(c.Char) == 2
}

// drawRect writes the cells of rect that differ from the cache and returns how many
func (r *Renderer) drawRect(rect geom.Rect) int {
	screen := geom.Rect{Size: r.cache.Size()}
	area, ok := rect.Intersection(screen)
	if !ok {
		return 0
	}

	emitted := 0
	first, last := area.MinColumn().Int(), area.MaxColumn().Int()
	for line := area.MinLine().Int(); line <= area.MaxLine().Int(); line++ {
		// A wide glyph left of the area still covers its first column
		covered := first > 0 && isWide(r.cellAt(geom.Pos(first-1, line)))
		for column := first; column <= last; column++ {
			if covered {
				covered = false
				r.cache.Swap(column, line, continuation)
				continue
			}
			c := r.cellAt(geom.Pos(column, line))
			covered = isWide(c)
			if !r.cache.Swap(column, line, c) {
				continue
			}
			r.out.WriteCell(column, line, c)
			emitted++
			if covered && column == last {
				r.cache.Swap(column+1, line, continuation)
			}
		}
	}
	r.logger.Debug("draw", "rect", area, "cells", emitted)
	return emitted
}

func (r *Renderer) cellAt(pos geom.Position) terminal.Cell {
	c := terminal.Blank
	frame := r.layer.Frame()
	if frame.Contains(pos) {
		if lc, ok := r.layer.Cell(pos.Sub(frame.Position)); ok {
			c = lc
		}
	}
	if c.Char == 0 {
		c.Char = ' '
	}
	if r.hasLastFocus {
		if box, ok := borderCell(r.lastFocus, pos); ok {
			c = box
		}
	}
	if r.asciiSnapshot && c.Char == ' ' && c.Bg != tcell.ColorDefault {
		c.Char = '█'
	}
	return c
}

// borderCell returns the highlight glyph when pos lies on the border of frame
func borderCell(frame geom.Rect, pos geom.Position) (terminal.Cell, bool) {
	if !frame.Contains(pos) {
		return terminal.Cell{}, false
	}
	top := pos.Line == frame.MinLine()
	bottom := pos.Line == frame.MaxLine()
	left := pos.Column == frame.MinColumn()
	right := pos.Column == frame.MaxColumn()

	var ch rune
	switch {
	case top && left:
		ch = '┌'
	case top && right:
		ch = '┐'
	case bottom && left:
		ch = '└'
	case bottom && right:
		ch = '┘'
	case top || bottom:
		ch = '─'
	case left || right:
		ch = '│'
	default:
		return terminal.Cell{}, false
	}
	return terminal.Styled(ch, tcell.ColorDefault, tcell.ColorDefault, terminal.AttrInverted), true
}
