package graphics

// LinearGradient describes a two-stop linear gradient between two points
// in the coordinate space of the shape being filled.
type LinearGradient struct {
	Start Offset
	End   Offset
	From  Color
	To    Color
}

// Paint describes how a shape is filled: a solid color, or a two-stop
// linear gradient when Gradient is non-nil.
type Paint struct {
	Color    Color
	Gradient *LinearGradient
}

// Solid returns a paint filling with a single color.
func Solid(c Color) Paint {
	return Paint{Color: c}
}

// Gradient returns a paint filling with a two-stop linear gradient.
func Gradient(g LinearGradient) Paint {
	return Paint{Gradient: &g}
}

// IsVisible reports whether the paint would produce any output.
func (p Paint) IsVisible() bool {
	if p.Gradient != nil {
		return true
	}
	return uint8(p.Color>>24) != 0
}

// Border describes an optional stroke around a filled shape.
// A zero-width border draws nothing.
type Border struct {
	Width float64
	Color Color
}

// NewBorder constructs a border with the given width and color.
func NewBorder(width float64, color Color) Border {
	return Border{Width: width, Color: color}
}

// IsVisible reports whether the border would produce any output.
func (b Border) IsVisible() bool {
	return b.Width > 0 && uint8(b.Color>>24) != 0
}
