package uitest

import (
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/text"
	"github.com/go-keel/keel/pkg/ui"
)

const (
	// DefaultWidth is the default logical width of the test viewport.
	DefaultWidth = 800
	// DefaultHeight is the default logical height of the test viewport.
	DefaultHeight = 600
)

// Tester drives a scene without a window. It runs the same measure, paint,
// and event phases as a real frame loop but builds the per-frame input
// snapshot itself, so tests dispatch gestures and keys as plain method calls.
type Tester struct {
	// Scene is the scene under test. Its focus manager carries state across
	// pumped frames exactly as it would in a running application.
	Scene *ui.Scene

	root     ui.Element
	viewport graphics.Size
	list     *graphics.DrawList
}

// NewTester creates a tester with an 800x600 viewport and a fixed-advance
// text measurer (8 wide, 16 line height).
func NewTester() *Tester {
	return NewTesterWith(text.FixedMeasurer{CharWidth: 8, Height: 16})
}

// NewTesterWith creates a tester that measures text through m.
func NewTesterWith(m text.Measurer) *Tester {
	return &Tester{
		Scene:    ui.NewScene(m),
		viewport: graphics.Size{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// SetSize sets the logical viewport size for subsequent frames.
func (t *Tester) SetSize(size graphics.Size) {
	t.viewport = size
}

// Mount installs a widget tree and pumps one idle frame so that focus
// registration and scroll viewports reflect an initial paint.
func (t *Tester) Mount(root ui.Element) *graphics.DrawList {
	t.root = root
	return t.Pump(nil)
}

// Pump runs a single frame with the given input snapshot. Pass nil for an
// idle frame. The returned draw list is valid until the next pump.
func (t *Tester) Pump(input *ui.Input) *graphics.DrawList {
	t.list = t.Scene.FrameRef(&t.root, t.viewport, input)
	return t.list
}

// DrawList returns the draw list of the most recent frame, or nil if no
// frame has been pumped.
func (t *Tester) DrawList() *graphics.DrawList {
	return t.list
}

// Root returns the mounted tree.
func (t *Tester) Root() ui.Element {
	return t.root
}
