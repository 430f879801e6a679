package render

import (
	"testing"

	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/terminal"
)

// fill returns content showing ch everywhere
func fill(ch rune) Content {
	return ContentFunc(func(geom.Position) (terminal.Cell, bool) {
		return terminal.NewCell(ch), true
	})
}

func TestLayerCellOrder(t *testing.T) {
	root := NewLayer(nil)
	root.SetFrame(geom.R(0, 0, 4, 2))

	below := NewLayer(fill('b'))
	below.SetFrame(geom.R(0, 0, 3, 1))
	above := NewLayer(fill('a'))
	above.SetFrame(geom.R(2, 0, 2, 2))
	root.AddLayer(below, 0)
	root.AddLayer(above, 1)

	tests := []struct {
		at   geom.Position
		want rune
		ok   bool
	}{
		{geom.Pos(0, 0), 'b', true},
		{geom.Pos(2, 0), 'a', true}, // overlap: last added wins
		{geom.Pos(3, 1), 'a', true},
		{geom.Pos(0, 1), 0, false},
	}
	for _, tt := range tests {
		c, ok := root.Cell(tt.at)
		if ok != tt.ok || c.Char != tt.want {
			t.Errorf("Cell(%v) = %q,%v, want %q,%v", tt.at, c.Char, ok, tt.want, tt.ok)
		}
	}
}

func TestLayerOwnContentFirst(t *testing.T) {
	root := NewLayer(fill('r'))
	root.SetFrame(geom.R(0, 0, 2, 1))
	child := NewLayer(fill('c'))
	child.SetFrame(geom.R(0, 0, 2, 1))
	root.AddLayer(child, 0)

	if c, _ := root.Cell(geom.Pos(1, 0)); c.Char != 'r' {
		t.Errorf("Expected own content to win, got %q", c.Char)
	}
}

func TestLayerChildTranslation(t *testing.T) {
	root := NewLayer(nil)
	root.SetFrame(geom.R(0, 0, 10, 10))
	child := NewLayer(ContentFunc(func(at geom.Position) (terminal.Cell, bool) {
		if at == geom.Pos(0, 0) {
			return terminal.NewCell('o'), true
		}
		return terminal.Cell{}, false
	}))
	child.SetFrame(geom.R(3, 4, 2, 2))
	root.AddLayer(child, 0)

	if c, ok := root.Cell(geom.Pos(3, 4)); !ok || c.Char != 'o' {
		t.Errorf("Expected child origin at (3,4), got %q,%v", c.Char, ok)
	}
	if _, ok := root.Cell(geom.Pos(4, 4)); ok {
		t.Error("Expected empty cell beside the child origin")
	}
}

func TestLayerInvalidatePropagates(t *testing.T) {
	hooks := 0
	root := NewLayer(nil)
	root.SetFrame(geom.R(0, 0, 20, 10))
	root.SetInvalidateHook(func() { hooks++ })
	mid := NewLayer(nil)
	mid.SetFrame(geom.R(5, 2, 10, 5))
	leaf := NewLayer(nil)
	leaf.SetFrame(geom.R(1, 1, 3, 1))
	root.AddLayer(mid, 0)
	mid.AddLayer(leaf, 0)

	root.ClearInvalidated()
	hooks = 0

	leaf.InvalidateRect(geom.R(0, 0, 1, 1))
	got, ok := root.Invalidated()
	if !ok || got != geom.R(6, 3, 1, 1) {
		t.Errorf("Expected root dirty rect (6,3 1x1), got %v,%v", got, ok)
	}
	if hooks != 1 {
		t.Errorf("Expected one root notification, got %d", hooks)
	}

	leaf.InvalidateRect(geom.R(2, 0, 1, 1))
	got, _ = root.Invalidated()
	if got != geom.R(6, 3, 3, 1) {
		t.Errorf("Expected merged dirty rect (6,3 3x1), got %v", got)
	}

	root.ClearInvalidated()
	if _, ok := leaf.Invalidated(); ok {
		t.Error("Expected clear to reach the whole subtree")
	}
}

func TestLayerRemoveInvalidatesCoveredArea(t *testing.T) {
	root := NewLayer(nil)
	root.SetFrame(geom.R(0, 0, 10, 10))
	child := NewLayer(fill('x'))
	child.SetFrame(geom.R(2, 3, 4, 1))
	root.AddLayer(child, 0)
	root.ClearInvalidated()

	root.RemoveLayer(child)
	if got, ok := root.Invalidated(); !ok || got != geom.R(2, 3, 4, 1) {
		t.Errorf("Expected vacated area dirty, got %v,%v", got, ok)
	}
	if child.Parent() != nil || len(root.Children()) != 0 {
		t.Error("Expected child detached")
	}
}

func TestLayerAddAtIndex(t *testing.T) {
	root := NewLayer(nil)
	a, b, c := NewLayer(nil), NewLayer(nil), NewLayer(nil)
	root.AddLayer(a, 0)
	root.AddLayer(c, 5)
	root.AddLayer(b, 1)

	kids := root.Children()
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != c {
		t.Errorf("Unexpected child order")
	}
}
