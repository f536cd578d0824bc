package layout

import (
	"math"
	"testing"

	"github.com/go-keel/keel/pkg/graphics"
)

func TestTightConstraintsAdmitOneSize(t *testing.T) {
	c := Tight(graphics.Size{Width: 120, Height: 48})
	if !c.IsTight() {
		t.Fatalf("expected tight constraints")
	}
	got := c.Constrain(graphics.Size{Width: 500, Height: 0})
	if got.Width != 120 || got.Height != 48 {
		t.Fatalf("expected constrained size 120x48, got %gx%g", got.Width, got.Height)
	}
}

func TestLooseConstraintsClampToMax(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 50})
	tests := []struct {
		name string
		in   graphics.Size
		want graphics.Size
	}{
		{"fits", graphics.Size{Width: 80, Height: 30}, graphics.Size{Width: 80, Height: 30}},
		{"too wide", graphics.Size{Width: 150, Height: 30}, graphics.Size{Width: 100, Height: 30}},
		{"too tall", graphics.Size{Width: 80, Height: 90}, graphics.Size{Width: 80, Height: 50}},
	}
	for _, tt := range tests {
		got := c.Constrain(tt.in)
		if got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUnboundedAxes(t *testing.T) {
	c := UnboundedConstraints()
	if c.HasBoundedWidth() || c.HasBoundedHeight() {
		t.Fatalf("expected both axes unbounded")
	}
	got := c.Constrain(graphics.Size{Width: 1e6, Height: 1e6})
	if got.Width != 1e6 || got.Height != 1e6 {
		t.Fatalf("unbounded constraints must not clamp, got %v", got)
	}

	loose := Loose(graphics.Size{Width: 200, Height: 100}).WithUnboundedHeight()
	if loose.HasBoundedHeight() {
		t.Fatalf("expected unbounded height")
	}
	if !loose.HasBoundedWidth() {
		t.Fatalf("expected width to stay bounded")
	}
}

func TestDeflateNeverGoesNegative(t *testing.T) {
	c := Tight(graphics.Size{Width: 10, Height: 10}).Deflate(UniformInsets(20))
	if c.MinWidth != 0 || c.MaxWidth != 0 || c.MinHeight != 0 || c.MaxHeight != 0 {
		t.Fatalf("expected deflate to clamp at zero, got %+v", c)
	}
}

func TestDeflateKeepsUnboundedAxis(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 100}).WithUnboundedHeight().Deflate(UniformInsets(8))
	if c.MaxWidth != 84 {
		t.Fatalf("expected max width 84, got %g", c.MaxWidth)
	}
	if !math.IsInf(c.MaxHeight, 1) {
		t.Fatalf("expected height to stay unbounded, got %g", c.MaxHeight)
	}
}

func TestInsetRect(t *testing.T) {
	r := graphics.RectFromLTWH(10, 10, 100, 60)
	got := EdgeInsets{Top: 1, Right: 2, Bottom: 3, Left: 4}.InsetRect(r)
	want := graphics.Rect{Left: 14, Top: 11, Right: 108, Bottom: 67}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInsetRectClampsToZeroSize(t *testing.T) {
	got := UniformInsets(20).InsetRect(graphics.RectFromLTWH(0, 0, 10, 10))
	if got.Width() != 0 || got.Height() != 0 {
		t.Fatalf("over-inset rect should be empty, got %v", got)
	}
	if got.Left != 20 || got.Top != 20 {
		t.Fatalf("over-inset rect should keep the shifted origin, got %v", got)
	}
}
