// Package gamemath holds the pure rectangle math the collision resolvers are
// built on. It is engine-free so the simulation can be tested headless.
package gamemath

import "github.com/solarlune/resolv"

// RectTolerance is the minimum overlap dimension treated as a genuine
// collision. Smaller overlaps are floating-point grazing contacts and are
// reported as empty.
const RectTolerance = 0.1

// Rect is an axis-aligned rectangle in screen coordinates (y grows down).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// EmptyWithTolerance reports whether the rectangle is too thin in either
// dimension to count as a real overlap.
func (r Rect) EmptyWithTolerance() bool {
	return r.W < RectTolerance || r.H < RectTolerance
}

// Intersection returns the overlap rectangle of a and b, or the zero Rect
// when the overlap is thinner than RectTolerance in either dimension.
func Intersection(a, b Rect) Rect {
	x := max(a.Left(), b.Left())
	y := max(a.Top(), b.Top())

	width := min(a.Right(), b.Right()) - x
	height := min(a.Bottom(), b.Bottom()) - y

	intersection := Rect{X: x, Y: y, W: width, H: height}

	if intersection.EmptyWithTolerance() {
		return Rect{}
	}
	return intersection
}

// FromObject reads the bounds of a collision object.
func FromObject(o *resolv.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
