package widgets

import (
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/layout"
	"github.com/go-keel/keel/pkg/ui"
)

// Spacer is the canonical zero-size widget. Inside a Column or Row it acts
// as a flexible spacer, claiming an equal share of leftover main-axis space.
type Spacer struct{}

func (Spacer) Measure(constraints layout.Constraints, ctx *ui.Context) graphics.Size {
	// Deliberately ignores minimum constraints: spacers must report exactly
	// zero so flex containers recognize them.
	return graphics.Size{}
}

func (Spacer) Paint(p *ui.Painter, rect graphics.Rect) {}
