package view

import (
	"strconv"
)

// State is a storage slot owned by a node. It survives description recreation while the node survives
type State[T any] struct {
	node  *Node
	value T
}

// UseState returns the slot for the next declaration in the current body, creating it with
// initial on first use. Slots are keyed by declaration order, so a body must declare them
// unconditionally and in the same order each time
func UseState[T any](ctx *Context, initial T) *State[T] {
	name := "#" + strconv.Itoa(ctx.slot)
	ctx.slot++
	return NamedState(ctx, name, initial)
}

// NamedState returns the slot with an explicit name. A slot redeclared with a different type is reset
func NamedState[T any](ctx *Context, name string, initial T) *State[T] {
	n := ctx.node
	if s, ok := n.state[name].(*State[T]); ok {
		return s
	}
	if n.state == nil {
		n.state = make(map[string]any)
	}
	s := &State[T]{node: n, value: initial}
	n.state[name] = s
	return s
}

// Get returns the stored value
func (s *State[T]) Get() T {
	return s.value
}

// Set stores v and marks the owning node pending
func (s *State[T]) Set(v T) {
	s.value = v
	s.node.Invalidate()
}

// Update replaces the value with fn applied to it
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Binding returns two-way access to the slot
func (s *State[T]) Binding() Binding[T] {
	return Binding[T]{get: s.Get, set: s.Set}
}

// Binding is a getter/setter pair giving access to a value owned elsewhere
type Binding[T any] struct {
	get func() T
	set func(T)
}

// NewBinding creates a binding from accessor functions
func NewBinding[T any](get func() T, set func(T)) Binding[T] {
	return Binding[T]{get: get, set: set}
}

// Constant is a read-only binding; Set is ignored
func Constant[T any](v T) Binding[T] {
	return Binding[T]{get: func() T { return v }}
}

// Get reads the bound value; a zero Binding yields the zero value
func (b Binding[T]) Get() T {
	if b.get == nil {
		var zero T
		return zero
	}
	return b.get()
}

// Set writes the bound value
func (b Binding[T]) Set(v T) {
	if b.set != nil {
		b.set(v)
	}
}

// Map derives a binding onto part of the value
func Map[T, U any](b Binding[T], get func(T) U, set func(T, U) T) Binding[U] {
	return Binding[U]{
		get: func() U { return get(b.Get()) },
		set: func(u U) { b.Set(set(b.Get(), u)) },
	}
}
