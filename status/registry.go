// Package status holds lock-free engine counters. Components cache metric pointers
// once and update them from the loop goroutine; readers may sample from any goroutine
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric names recorded by the engine
const (
	RenderFrames  = "render.frames"  // Updates that painted at least one rect
	RenderCells   = "render.cells"   // Cells emitted, cumulative
	RenderBytes   = "render.bytes"   // Bytes flushed to the terminal, cumulative
	RenderLastMs  = "render.last_ms" // Duration of the last paint
	ViewRebuilds  = "view.rebuilds"  // Scheduler flushes that rebuilt nodes
	InputRunes    = "input.runes"    // Runes dispatched
	InputQuit     = "input.quit"     // A quit key was seen
	FocusPresent  = "focus.present"  // The window has a first responder
	TerminalColor = "terminal.truecolor"
)

// Registry groups metrics by value type
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// KeyVals flattens every metric into alternating key and value pairs in sorted key
// order per type, for structured logging
func (r *Registry) KeyVals() []any {
	kv := make([]any, 0, 2*r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		kv = append(kv, key, ptr.Load())
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		kv = append(kv, key, ptr.Load())
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		kv = append(kv, key, fmt.Sprintf("%.3f", ptr.Get()))
	})
	return kv
}
