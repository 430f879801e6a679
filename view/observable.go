package view

import (
	"maps"
	"slices"
)

// Observable is a source of change notifications. Implementations must be comparable
// (typically pointers) since nodes index their subscriptions by observable
type Observable interface {
	Subscribe(fn func()) (cancel func())
}

// Publisher is an explicit callback registry. It is not goroutine-safe: publish on the
// event loop, e.g. through Application.Post
type Publisher struct {
	next int
	subs map[int]func()
}

// Subscribe registers fn and returns a function that removes it
func (p *Publisher) Subscribe(fn func()) func() {
	if p.subs == nil {
		p.subs = make(map[int]func())
	}
	id := p.next
	p.next++
	p.subs[id] = fn
	return func() { delete(p.subs, id) }
}

// Publish calls every subscriber in subscription order
func (p *Publisher) Publish() {
	ids := slices.Sorted(maps.Keys(p.subs))
	for _, id := range ids {
		if fn, ok := p.subs[id]; ok {
			fn()
		}
	}
}

// Subscribers returns the number of active subscriptions
func (p *Publisher) Subscribers() int {
	return len(p.subs)
}

// Value is an observable holder; Set publishes to subscribers
type Value[T any] struct {
	Publisher
	v T
}

// NewValue creates an observable value
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	return v.v
}

// Set stores x and notifies subscribers
func (v *Value[T]) Set(x T) {
	v.v = x
	v.Publish()
}

// Binding returns two-way access to the value
func (v *Value[T]) Binding() Binding[T] {
	return Binding[T]{get: v.Get, set: v.Set}
}

// Observe subscribes the node being built to obs. Subscriptions that a build does not
// renew are cancelled when the build finishes
func Observe(ctx *Context, obs Observable) {
	n := ctx.node
	if ctx.observed == nil {
		ctx.observed = make(map[Observable]struct{})
	}
	ctx.observed[obs] = struct{}{}
	if _, ok := n.subs[obs]; ok {
		return
	}
	if n.subs == nil {
		n.subs = make(map[Observable]func())
	}
	n.subs[obs] = obs.Subscribe(n.Invalidate)
}
