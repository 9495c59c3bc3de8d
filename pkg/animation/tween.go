package animation

import "github.com/pocket-ui/pocket/pkg/graphics"

// Tween interpolates between Begin and End using a controller's 0-1
// progress. Use the typed constructors for common types, or supply a
// custom Lerp for anything else.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp interpolates between Begin and End at progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the controller's current
// progress.
func (tw *Tween[T]) Transform(c *Controller) T {
	return tw.Evaluate(c.Value)
}

// LerpFloat64 linearly interpolates between two floats.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two offsets.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two sizes.
func LerpSize(a, b graphics.Size, t float64) graphics.Size {
	return graphics.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// LerpColor linearly interpolates between two ARGB colors per channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	ch := func(shift uint) uint32 {
		av := float64((uint32(a) >> shift) & 0xFF)
		bv := float64((uint32(b) >> shift) & 0xFF)
		return uint32(LerpFloat64(av, bv, t)) & 0xFF
	}
	return graphics.Color(ch(24)<<24 | ch(16)<<16 | ch(8)<<8 | ch(0))
}

// LerpEdgeInsets linearly interpolates between two inset sets.
func LerpEdgeInsets(a, b graphics.EdgeInsets, t float64) graphics.EdgeInsets {
	return graphics.EdgeInsets{
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
		Left:   LerpFloat64(a.Left, b.Left, t),
	}
}

// TweenFloat64 creates a float tween.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOffset creates an offset tween.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenSize creates a size tween.
func TweenSize(begin, end graphics.Size) *Tween[graphics.Size] {
	return &Tween[graphics.Size]{Begin: begin, End: end, Lerp: LerpSize}
}

// TweenColor creates a color tween.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}

// TweenEdgeInsets creates an insets tween.
func TweenEdgeInsets(begin, end graphics.EdgeInsets) *Tween[graphics.EdgeInsets] {
	return &Tween[graphics.EdgeInsets]{Begin: begin, End: end, Lerp: LerpEdgeInsets}
}
