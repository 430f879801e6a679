package control

import (
	"testing"

	"github.com/lixenwraith/retui/geom"
)

// box is a fixed-frame element that records focus hooks
type box struct {
	Base
	name       string
	became     []Element
	resigned   []Element
	focusCalls int
	scroll     func(lines, columns int) bool

	// Set in BecomeFirstResponder: whether peer was still focused at that moment
	peer        *box
	peerFocused bool
}

func newBox(name string, selectable bool, frame geom.Rect) *box {
	b := &box{name: name}
	b.Init(b)
	b.SetSelectable(selectable)
	b.Layer().SetFrame(frame)
	return b
}

func (b *box) BecomeFirstResponder() {
	b.focusCalls++
	if b.peer != nil {
		b.peerFocused = b.peer.IsFocused()
	}
	b.Base.BecomeFirstResponder()
}

func (b *box) DescendantBecameFirstResponder(e Element)   { b.became = append(b.became, e) }
func (b *box) DescendantResignedFirstResponder(e Element) { b.resigned = append(b.resigned, e) }

// scrollBox consumes scrolls through its callback
type scrollBox struct {
	*box
}

func (s scrollBox) ScrollBy(lines, columns int) bool { return s.scroll(lines, columns) }

// grid builds a root holding a 2x2 grid of selectable boxes, each 4x1 with a one-column gap
func grid() (root, tl, tr, bl, br *box) {
	root = newBox("root", false, geom.R(0, 0, 9, 2))
	tl = newBox("tl", true, geom.R(0, 0, 4, 1))
	tr = newBox("tr", true, geom.R(5, 0, 4, 1))
	bl = newBox("bl", true, geom.R(0, 1, 4, 1))
	br = newBox("br", true, geom.R(5, 1, 4, 1))
	for i, b := range []*box{tl, tr, bl, br} {
		root.AddSubview(b, i)
	}
	return
}

func TestWindowFocusInvariant(t *testing.T) {
	root, tl, tr, _, _ := grid()
	w := NewWindow()
	w.SetRoot(root)

	w.FocusFirst()
	if w.FirstResponder() != tl || !tl.IsFocused() {
		t.Fatalf("Expected tl focused first")
	}

	// Resign before assign: when tr's hook runs, tl must already be unfocused
	root.became = nil
	tr.peer = tl
	w.SetFirstResponder(tr)
	if tr.peerFocused || tl.IsFocused() {
		t.Error("Expected previous responder unfocused before the new one becomes first responder")
	}
	focused := 0
	Walk(root, func(e Element) {
		if e.IsFocused() {
			focused++
		}
	})
	if focused != 1 {
		t.Errorf("Expected exactly one focused element, got %d", focused)
	}
	if len(root.resigned) == 0 || root.resigned[len(root.resigned)-1] != tl {
		t.Error("Expected ancestor notified of resignation")
	}
	if len(root.became) != 1 || root.became[0] != tr {
		t.Error("Expected ancestor notified of new responder")
	}

	// Same responder is a no-op
	calls := tr.focusCalls
	w.SetFirstResponder(tr)
	if tr.focusCalls != calls {
		t.Error("Expected no hook for unchanged responder")
	}
}

func TestNavigate(t *testing.T) {
	_, tl, tr, bl, br := grid()

	tests := []struct {
		name string
		from *box
		dir  Direction
		want Element
	}{
		{"right", tl, Right, tr},
		{"down", tl, Down, bl},
		{"left from br", br, Left, bl},
		{"up from br", br, Up, tr},
		{"no left from tl", tl, Left, nil},
		{"no up from tr", tr, Up, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Navigate(tt.from, tt.dir)
			if got != tt.want {
				t.Errorf("Navigate(%s, %v) = %v, want %v", tt.from.name, tt.dir, got, tt.want)
			}
		})
	}
}

func TestNavigateTieBreaksOnOrthogonalDistance(t *testing.T) {
	root := newBox("root", false, geom.R(0, 0, 20, 3))
	from := newBox("from", true, geom.R(0, 0, 2, 1))
	far := newBox("far", true, geom.R(10, 2, 2, 1))
	near := newBox("near", true, geom.R(1, 2, 2, 1))
	root.AddSubview(from, 0)
	root.AddSubview(far, 1)
	root.AddSubview(near, 2)

	if got := Navigate(from, Down); got != near {
		t.Errorf("Expected orthogonally nearer candidate, got %v", got)
	}
}

func TestHitTest(t *testing.T) {
	root, _, _, bl, _ := grid()
	root.Layer().SetFrame(geom.R(2, 3, 9, 2))

	if got := HitTest(root, geom.Pos(3, 4)); got != bl {
		t.Errorf("Expected bl at (3,4), got %v", got)
	}
	if got := HitTest(root, geom.Pos(6, 4)); got != nil {
		t.Errorf("Expected gap to miss, got %v", got)
	}
	if got := HitTest(root, geom.Pos(0, 0)); got != nil {
		t.Errorf("Expected outside point to miss, got %v", got)
	}
}

func TestHitTestPrefersTopmost(t *testing.T) {
	root := newBox("root", false, geom.R(0, 0, 4, 1))
	under := newBox("under", true, geom.R(0, 0, 4, 1))
	over := newBox("over", true, geom.R(0, 0, 2, 1))
	root.AddSubview(under, 0)
	root.AddSubview(over, 1)

	if got := HitTest(root, geom.Pos(1, 0)); got != over {
		t.Errorf("Expected topmost child, got %v", got)
	}
	if got := HitTest(root, geom.Pos(3, 0)); got != under {
		t.Errorf("Expected lower child outside the top one, got %v", got)
	}
}

func TestScrollByBubbles(t *testing.T) {
	var got [2]int
	outer := scrollBox{&box{name: "outer"}}
	outer.Init(outer)
	outer.scroll = func(lines, columns int) bool { got = [2]int{lines, columns}; return true }
	inner := newBox("inner", true, geom.R(0, 0, 1, 1))
	outer.AddSubview(inner, 0)

	if !ScrollBy(inner, 1, 0) {
		t.Fatal("Expected ancestor to consume the scroll")
	}
	if got != [2]int{1, 0} {
		t.Errorf("Expected (1,0), got %v", got)
	}

	outer.scroll = func(int, int) bool { return false }
	if ScrollBy(inner, 1, 0) {
		t.Error("Expected scroll to fail when nothing can move")
	}
}

func TestFirstLastSelectable(t *testing.T) {
	root, tl, _, _, br := grid()
	if got := FirstSelectable(root); got != tl {
		t.Errorf("Expected tl first, got %v", got)
	}
	if got := LastSelectable(root); got != br {
		t.Errorf("Expected br last, got %v", got)
	}
}

func TestSetSubviewsReorders(t *testing.T) {
	root := newBox("root", false, geom.R(0, 0, 1, 1))
	a := newBox("a", false, geom.Rect{})
	b := newBox("b", false, geom.Rect{})
	c := newBox("c", false, geom.Rect{})
	root.SetSubviews([]Element{a, b, c})
	root.SetSubviews([]Element{c, a})

	kids := root.Children()
	if len(kids) != 2 || kids[0] != c || kids[1] != a {
		t.Fatalf("Unexpected children after reorder")
	}
	if b.Parent() != nil {
		t.Error("Expected removed child detached")
	}
	layers := root.Layer().Children()
	if len(layers) != 2 || layers[0] != c.Layer() || layers[1] != a.Layer() {
		t.Error("Expected layer order to follow children")
	}
}

func TestWindowValidateDropsDetachedResponder(t *testing.T) {
	root, tl, tr, _, _ := grid()
	w := NewWindow()
	w.SetRoot(root)
	w.SetFirstResponder(tr)

	root.RemoveSubview(tr)
	w.Validate()
	if w.FirstResponder() != tl {
		t.Errorf("Expected fallback to first selectable, got %v", w.FirstResponder())
	}
	if tr.IsFocused() {
		t.Error("Expected detached element unfocused")
	}
}
