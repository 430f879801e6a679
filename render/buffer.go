package render

import (
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/terminal"
)

// CacheBuffer holds the last painted cell per screen position with painted tracking.
// An unpainted position never compares equal, so its first draw is always emitted
type CacheBuffer struct {
	cells   []terminal.Cell
	painted []bool
	width   int
	height  int
}

// NewCacheBuffer creates a buffer with the specified dimensions
func NewCacheBuffer(width, height int) *CacheBuffer {
	b := &CacheBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CacheBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
		b.painted = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.painted = b.painted[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear forgets every painted cell using exponential copy
func (b *CacheBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{}
	b.painted[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.painted); filled *= 2 {
		copy(b.painted[filled:], b.painted[:filled])
	}
}

// Size returns the buffer dimensions
func (b *CacheBuffer) Size() geom.Size {
	return geom.Sz(b.width, b.height)
}

// inBounds returns true if in screen bounds
func (b *CacheBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cached cell and whether the position has been painted
func (b *CacheBuffer) Get(x, y int) (terminal.Cell, bool) {
	if !b.inBounds(x, y) {
		return terminal.Cell{}, false
	}
	idx := y*b.width + x
	return b.cells[idx], b.painted[idx]
}

// Swap stores c and reports whether it differs from what was painted before
func (b *CacheBuffer) Swap(x, y int, c terminal.Cell) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.width + x
	if b.painted[idx] && b.cells[idx] == c {
		return false
	}
	b.cells[idx] = c
	b.painted[idx] = true
	return true
}
