package layout

import "github.com/go-keel/keel/pkg/graphics"

// EdgeInsets describes padding on all four sides of a box.
type EdgeInsets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Right: v, Bottom: v, Left: v}
}

// SymmetricInsets returns insets with the given horizontal value on the left
// and right and the vertical value on the top and bottom.
func SymmetricInsets(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// InsetRect shrinks r inward by the insets. Insets larger than the rect
// produce an empty rect at the shifted origin, never a negative extent.
func (e EdgeInsets) InsetRect(r graphics.Rect) graphics.Rect {
	out := graphics.Rect{
		Left:   r.Left + e.Left,
		Top:    r.Top + e.Top,
		Right:  r.Right - e.Right,
		Bottom: r.Bottom - e.Bottom,
	}
	if out.Right < out.Left {
		out.Right = out.Left
	}
	if out.Bottom < out.Top {
		out.Bottom = out.Top
	}
	return out
}
