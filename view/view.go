// Package view reconciles immutable UI descriptions against a persistent node tree.
//
// A description's kind is its dynamic Go type. Nodes are matched to descriptions by
// position among their siblings: while the kind at a position is unchanged the node and
// its state survive, and a kind change destroys and rebuilds the subtree.
package view

import (
	"github.com/lixenwraith/retui/control"
)

// View is an immutable, cheaply recreated UI description
type View interface{}

// Primitive descriptions own an element
type Primitive interface {
	MakeElement(ctx *Context) control.Element
	UpdateElement(ctx *Context, e control.Element)
}

// Container primitives also yield child descriptions whose elements become subviews
// of the container's element
type Container interface {
	Primitive
	Content() []View
}

// Composite descriptions are built from other descriptions and own no element
type Composite interface {
	Body(ctx *Context) View
}

// Group lists sibling descriptions without an element of its own
type Group []View

// Empty shows nothing. It keeps sibling positions stable for omitted branches
type Empty struct{}

// If yields then when cond holds and Empty otherwise
func If(cond bool, then View) View {
	if cond {
		return then
	}
	return Empty{}
}

// IfElse yields then or otherwise. The two branches are different kinds when their types differ
func IfElse(cond bool, then, otherwise View) View {
	if cond {
		return then
	}
	return otherwise
}

// modifier descriptions configure their node and wrap a single content description
type modifier interface {
	wrapped() View
	apply(n *Node)
}

type environmentModifier struct {
	content View
	mutate  func(Environment)
}

func (m environmentModifier) wrapped() View { return m.content }
func (m environmentModifier) apply(n *Node) { n.envMutator = m.mutate }

// WithEnvironment applies mutate to the environment seen by content and its descendants
func WithEnvironment(content View, mutate func(Environment)) View {
	return environmentModifier{content: content, mutate: mutate}
}

// WithValue sets key to value for content and its descendants
func WithValue[T any](content View, key *Key[T], value T) View {
	return WithEnvironment(content, func(env Environment) { key.Set(env, value) })
}

type disappearModifier struct {
	content View
	action  func()
}

func (m disappearModifier) wrapped() View { return m.content }
func (m disappearModifier) apply(n *Node) { n.onDisappear = m.action }

// OnDisappear runs action when content's node is destroyed
func OnDisappear(content View, action func()) View {
	return disappearModifier{content: content, action: action}
}
