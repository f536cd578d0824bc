// Package layout provides the box constraint model used by measurement.
//
// Constraints flow down the widget tree and sizes flow back up. A parent
// hands each child a Constraints value; the child returns a Size that must
// fit inside it. Unbounded axes are expressed with math.Inf(1).
package layout

import (
	"math"

	"github.com/go-keel/keel/pkg/graphics"
)

// Unbounded marks an axis with no upper limit.
var Unbounded = math.Inf(1)

// Constraints describes the minimum and maximum size a widget may occupy.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that admit exactly one size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints with zero minimums and the given maximums.
func Loose(size graphics.Size) Constraints {
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// UnboundedConstraints returns constraints with no limits on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{
		MaxWidth:  Unbounded,
		MaxHeight: Unbounded,
	}
}

// Constrain clamps size to fit within c.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width has a finite upper limit.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether the height has a finite upper limit.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Deflate shrinks the constraints by the given insets. Minimums and maximums
// never drop below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	h := insets.Horizontal()
	v := insets.Vertical()
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MaxWidth:  math.Max(0, c.MaxWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxHeight: math.Max(0, c.MaxHeight-v),
	}
}

// WithUnboundedHeight returns a copy with no vertical minimum or maximum.
func (c Constraints) WithUnboundedHeight() Constraints {
	c.MinHeight = 0
	c.MaxHeight = Unbounded
	return c
}

// WithUnboundedWidth returns a copy with no horizontal minimum or maximum.
func (c Constraints) WithUnboundedWidth() Constraints {
	c.MinWidth = 0
	c.MaxWidth = Unbounded
	return c
}

// MaxSize returns the largest size the constraints admit.
func (c Constraints) MaxSize() graphics.Size {
	return graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
