package view

import (
	"fmt"
	"reflect"

	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/core"
)

// Context is handed to Body, MakeElement and UpdateElement. It scopes state slot
// declaration and observable subscription to one build of one node
type Context struct {
	node     *Node
	slot     int
	observed map[Observable]struct{}
}

// Environment returns the environment seen by the node being built
func (c *Context) Environment() Environment {
	return c.node.Environment()
}

// Node returns the node being built
func (c *Context) Node() *Node {
	return c.node
}

// Node is the persistent counterpart of a description
type Node struct {
	view     View
	parent   *Node
	children []*Node

	state map[string]any
	subs  map[Observable]func()

	envMutator  func(Environment)
	onDisappear func()

	element   control.Element
	scheduler *Scheduler
	destroyed bool
}

// NewRoot builds the tree for v
func NewRoot(v View, s *Scheduler) *Node {
	n := &Node{view: v, scheduler: s}
	n.run(true)
	return n
}

// View returns the last description the node was built with
func (n *Node) View() View {
	return n.view
}

// Parent returns the parent node or nil for the root
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns child nodes in position order
func (n *Node) Children() []*Node {
	return n.children
}

// Element returns the element this node owns, if any
func (n *Node) Element() control.Element {
	return n.element
}

// Elements returns the node's element, or else the flattened elements of its descendants
func (n *Node) Elements() []control.Element {
	if n.element != nil {
		return []control.Element{n.element}
	}
	var out []control.Element
	for _, c := range n.children {
		out = append(out, c.Elements()...)
	}
	return out
}

// Invalidate marks the node pending in its scheduler
func (n *Node) Invalidate() {
	if n.destroyed || n.scheduler == nil {
		return
	}
	n.scheduler.InvalidateNode(n)
}

// Environment applies every mutator from the root down to n
func (n *Node) Environment() Environment {
	var chain []*Node
	for p := n; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	env := Environment{}
	for i := len(chain) - 1; i >= 0; i-- {
		if m := chain[i].envMutator; m != nil {
			m(env)
		}
	}
	return env
}

// Update reconciles the subtree against v; a different kind rebuilds it. Afterwards the
// nearest element-owning ancestor resynchronises its subviews
func (n *Node) Update(v View) {
	if n.destroyed {
		return
	}
	if sameKind(n.view, v) {
		n.view = v
		n.run(false)
	} else {
		n.teardown()
		n.destroyed = false
		n.view = v
		n.run(true)
	}
	for p := n.parent; p != nil; p = p.parent {
		if p.element != nil {
			p.syncSubviews()
			return
		}
	}
}

func (n *Node) depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

func (n *Node) newChild(v View) *Node {
	c := &Node{view: v, parent: n, scheduler: n.scheduler}
	c.run(true)
	return c
}

// run computes the node's description for this cycle and reconciles its children
func (n *Node) run(first bool) {
	if n.view == nil {
		n.view = Empty{}
	}
	ctx := &Context{node: n}

	switch v := n.view.(type) {
	case Empty:
		n.reconcile(nil)
	case Group:
		n.reconcile(v)
	case modifier:
		v.apply(n)
		n.reconcile([]View{v.wrapped()})
	case Container:
		n.primitive(ctx, v, first)
		n.reconcile(v.Content())
		n.syncSubviews()
	case Primitive:
		n.primitive(ctx, v, first)
		n.reconcile(nil)
	case Composite:
		body := n.body(ctx, v)
		n.reconcile([]View{body})
	default:
		core.Report(&core.Error{Op: "view.run", Kind: core.KindBuild, Err: fmt.Errorf("unsupported description %s", kindName(v))})
		n.reconcile(nil)
	}
	n.pruneSubscriptions(ctx)
}

func (n *Node) primitive(ctx *Context, p Primitive, first bool) {
	if first || n.element == nil {
		n.element = p.MakeElement(ctx)
		return
	}
	p.UpdateElement(ctx, n.element)
}

// body calls Body, turning a panic into an ErrorView placeholder
func (n *Node) body(ctx *Context, c Composite) (v View) {
	defer func() {
		if r := recover(); r != nil {
			err := &core.BuildError{
				View:       kindName(c),
				Recovered:  r,
				StackTrace: core.CaptureStack(),
			}
			core.ReportBuildError(err)
			v = ErrorView{Err: err}
		}
	}()
	return c.Body(ctx)
}

// reconcile matches views to child nodes by position
func (n *Node) reconcile(views []View) {
	for i, v := range views {
		if v == nil {
			v = Empty{}
		}
		if i >= len(n.children) {
			n.children = append(n.children, n.newChild(v))
			continue
		}
		child := n.children[i]
		if sameKind(child.view, v) {
			child.view = v
			child.run(false)
			continue
		}
		child.destroy()
		n.children[i] = n.newChild(v)
	}
	for i := len(views); i < len(n.children); i++ {
		n.children[i].destroy()
	}
	n.children = n.children[:len(views)]
}

// syncSubviews makes the flattened child elements the subviews of a container's element
func (n *Node) syncSubviews() {
	if n.element == nil {
		return
	}
	if _, ok := n.view.(Container); !ok {
		return
	}
	var elems []control.Element
	for _, c := range n.children {
		elems = append(elems, c.Elements()...)
	}
	control.SetSubviews(n.element, elems)
}

func (n *Node) pruneSubscriptions(ctx *Context) {
	for obs, cancel := range n.subs {
		if _, ok := ctx.observed[obs]; !ok {
			cancel()
			delete(n.subs, obs)
		}
	}
}

// destroy releases the subtree: state slots, subscriptions, elements, then disappear hooks
func (n *Node) destroy() {
	n.teardown()
	n.parent = nil
}

func (n *Node) teardown() {
	for _, c := range n.children {
		c.destroy()
	}
	n.children = nil
	for _, cancel := range n.subs {
		cancel()
	}
	n.subs = nil
	n.state = nil
	n.envMutator = nil
	if n.element != nil {
		control.Detach(n.element)
		n.element = nil
	}
	n.destroyed = true
	if fn := n.onDisappear; fn != nil {
		n.onDisappear = nil
		fn()
	}
}

func sameKind(a, b View) bool {
	if a == nil {
		a = Empty{}
	}
	if b == nil {
		b = Empty{}
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

func kindName(v View) string {
	if v == nil {
		return "view.Empty"
	}
	return reflect.TypeOf(v).String()
}
