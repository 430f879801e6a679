package geom

import "fmt"

// Position is a column/line coordinate on the character grid
type Position struct {
	Column Extended
	Line   Extended
}

// Zero is the origin
var Zero = Position{}

// Pos builds a Position from plain ints
func Pos(column, line int) Position {
	return Position{Column: Extended(column), Line: Extended(line)}
}

// Add translates p by o
func (p Position) Add(o Position) Position {
	return Position{Column: p.Column.Add(o.Column), Line: p.Line.Add(o.Line)}
}

// Sub translates p by -o
func (p Position) Sub(o Position) Position {
	return Position{Column: p.Column.Sub(o.Column), Line: p.Line.Sub(o.Line)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%s,%s)", p.Column, p.Line)
}

// Size is a width/height pair; either dimension may be Infinity in a layout proposal
type Size struct {
	Width  Extended
	Height Extended
}

// Sz builds a Size from plain ints
func Sz(width, height int) Size {
	return Size{Width: Extended(width), Height: Extended(height)}
}

// Unbounded is the proposal carrying no constraint in either dimension
var Unbounded = Size{Width: Infinity, Height: Infinity}

// IsEmpty reports whether the size covers no cells
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Min returns the component-wise minimum
func (s Size) Min(o Size) Size {
	return Size{Width: s.Width.Min(o.Width), Height: s.Height.Min(o.Height)}
}

func (s Size) String() string {
	return fmt.Sprintf("%sx%s", s.Width, s.Height)
}

// Rect is a position plus a size. Containment and intersection are inclusive of the
// origin and exclusive of origin+size
type Rect struct {
	Position Position
	Size     Size
}

// R builds a Rect from plain ints
func R(column, line, width, height int) Rect {
	return Rect{Position: Pos(column, line), Size: Sz(width, height)}
}

// MinColumn is the first column inside the rectangle
func (r Rect) MinColumn() Extended { return r.Position.Column }

// MinLine is the first line inside the rectangle
func (r Rect) MinLine() Extended { return r.Position.Line }

// MaxColumn is the last column inside the rectangle (inclusive)
func (r Rect) MaxColumn() Extended { return r.Position.Column.Add(r.Size.Width).Sub(1) }

// MaxLine is the last line inside the rectangle (inclusive)
func (r Rect) MaxLine() Extended { return r.Position.Line.Add(r.Size.Height).Sub(1) }

// IsEmpty reports whether r covers no cells
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Contains reports whether p lies in r
func (r Rect) Contains(p Position) bool {
	return p.Column >= r.MinColumn() && p.Column <= r.MaxColumn() &&
		p.Line >= r.MinLine() && p.Line <= r.MaxLine()
}

// Intersection returns the overlap of r and o; ok is false when they do not overlap
func (r Rect) Intersection(o Rect) (Rect, bool) {
	minC := r.MinColumn().Max(o.MinColumn())
	minL := r.MinLine().Max(o.MinLine())
	maxC := r.MaxColumn().Min(o.MaxColumn())
	maxL := r.MaxLine().Min(o.MaxLine())
	if maxC < minC || maxL < minL {
		return Rect{}, false
	}
	return Rect{
		Position: Position{Column: minC, Line: minL},
		Size:     Size{Width: maxC.Sub(minC).Add(1), Height: maxL.Sub(minL).Add(1)},
	}, true
}

// Union returns the bounding rectangle of r and o; an empty operand is ignored
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	minC := r.MinColumn().Min(o.MinColumn())
	minL := r.MinLine().Min(o.MinLine())
	maxC := r.MaxColumn().Max(o.MaxColumn())
	maxL := r.MaxLine().Max(o.MaxLine())
	return Rect{
		Position: Position{Column: minC, Line: minL},
		Size:     Size{Width: maxC.Sub(minC).Add(1), Height: maxL.Sub(minL).Add(1)},
	}
}

// Offset returns r translated by p
func (r Rect) Offset(p Position) Rect {
	return Rect{Position: r.Position.Add(p), Size: r.Size}
}

// Center returns the rectangle center in doubled coordinates, keeping odd sizes exact
func (r Rect) Center() (column2, line2 Extended) {
	return r.Position.Column.Mul(2).Add(r.Size.Width), r.Position.Line.Mul(2).Add(r.Size.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("%s+%s", r.Position, r.Size)
}
