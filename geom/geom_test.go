package geom

import (
	"math"
	"testing"
)

func TestExtendedSaturation(t *testing.T) {
	tests := []struct {
		name string
		got  Extended
		want Extended
	}{
		{"finite add", Extended(2).Add(3), 5},
		{"infinity absorbs add", Infinity.Add(5), Infinity},
		{"add infinity", Extended(5).Add(Infinity), Infinity},
		{"overflow clamps", Extended(math.MaxInt - 2).Add(10), maxFinite},
		{"underflow clamps", Extended(math.MinInt + 2).Add(-10), minFinite},
		{"infinity minus finite", Infinity.Sub(100), Infinity},
		{"finite minus infinity", Extended(3).Sub(Infinity), minFinite},
		{"mul zero infinity", Infinity.Mul(0), 0},
		{"mul infinity", Extended(2).Mul(Infinity), Infinity},
		{"mul overflow", Extended(math.MaxInt / 2).Mul(4), maxFinite},
		{"div infinity", Extended(7).Div(Infinity), 0},
		{"infinity div", Infinity.Div(3), Infinity},
		{"div zero", Extended(7).Div(0), Infinity},
		{"min", Infinity.Min(4), 4},
		{"max", Extended(4).Max(Infinity), Infinity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestExtendedString(t *testing.T) {
	if Infinity.String() != "∞" {
		t.Errorf("Expected ∞, got %q", Infinity.String())
	}
	if Extended(-3).String() != "-3" {
		t.Errorf("Expected -3, got %q", Extended(-3).String())
	}
}

func TestRectContainsInclusiveExclusive(t *testing.T) {
	r := R(2, 3, 4, 2)

	tests := []struct {
		p    Position
		want bool
	}{
		{Pos(2, 3), true},
		{Pos(5, 4), true},
		{Pos(6, 3), false},
		{Pos(2, 5), false},
		{Pos(1, 3), false},
		{Pos(2, 2), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if R(0, 0, 0, 5).Contains(Pos(0, 0)) {
		t.Error("Expected zero-width rect to contain nothing")
	}
}

func TestRectIntersection(t *testing.T) {
	a := R(0, 0, 4, 4)
	b := R(2, 3, 5, 5)

	got, ok := a.Intersection(b)
	if !ok {
		t.Fatal("Expected rects to intersect")
	}
	if got != R(2, 3, 2, 1) {
		t.Errorf("Expected (2,3)+2x1, got %v", got)
	}

	// Touching edges do not overlap
	if _, ok := a.Intersection(R(4, 0, 2, 2)); ok {
		t.Error("Expected adjacent rects not to intersect")
	}
}

func TestRectUnion(t *testing.T) {
	got := R(0, 0, 1, 1).Union(R(3, 2, 2, 2))
	if got != R(0, 0, 5, 4) {
		t.Errorf("Expected (0,0)+5x4, got %v", got)
	}
	if got := (Rect{}).Union(R(1, 1, 2, 2)); got != R(1, 1, 2, 2) {
		t.Errorf("Expected empty operand to be ignored, got %v", got)
	}
}

func TestRectCenterAndOffset(t *testing.T) {
	c, l := R(1, 1, 3, 2).Center()
	if c != 5 || l != 4 {
		t.Errorf("Expected doubled center (5,4), got (%v,%v)", c, l)
	}
	if got := R(1, 1, 3, 2).Offset(Pos(-1, 2)); got != R(0, 3, 3, 2) {
		t.Errorf("Expected (0,3)+3x2, got %v", got)
	}
}
