// Package graphics provides the value types shared across the toolkit:
// offsets, sizes, rectangles, edge insets, and colors.
package graphics

import "math"

// Offset is a 2D point or translation in logical pixels.
type Offset struct {
	X, Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Distance returns the euclidean distance from the origin.
func (o Offset) Distance() float64 {
	return math.Hypot(o.X, o.Y)
}

// Size is a width/height pair in logical pixels. A zero component means
// the extent is unset; layout treats unset extents as contributing zero.
type Size struct {
	Width, Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFrom builds a rectangle from an origin and a size.
func RectFrom(origin Offset, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Dimensions returns the size of the rectangle.
func (r Rect) Dimensions() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point lies inside the rectangle.
// Edges are inclusive, matching how controls expect edge taps to land.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// EdgeInsets describes per-edge spacing in logical pixels.
type EdgeInsets struct {
	Top, Right, Bottom, Left float64
}

// InsetsAll returns insets with the same value on every edge.
func InsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Top: value, Right: value, Bottom: value, Left: value}
}

// InsetsSymmetric returns insets with one value for top/bottom and another
// for left/right.
func InsetsSymmetric(vertical, horizontal float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// InsetsOnly returns insets with each edge set independently.
func InsetsOnly(top, right, bottom, left float64) EdgeInsets {
	return EdgeInsets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Normalized replaces negative edges with zero. A negative inset is
// malformed style input and is recovered silently rather than rejected.
func (e EdgeInsets) Normalized() EdgeInsets {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	return EdgeInsets{
		Top:    clamp(e.Top),
		Right:  clamp(e.Right),
		Bottom: clamp(e.Bottom),
		Left:   clamp(e.Left),
	}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}
