// Package uitest drives a scene headlessly for tests.
//
// # Quick Start
//
// Create a tester, mount a tree, and make assertions against the draw list:
//
//	func TestMyPanel(t *testing.T) {
//	    tester := uitest.NewTester()
//	    tester.Mount(ui.NewElement(buildPanel()))
//
//	    // Simulate gestures
//	    tester.Tap(graphics.Offset{X: 40, Y: 12})
//
//	    // Assert against the most recent frame
//	    if !uitest.HasText(tester.DrawList(), "Submitted") {
//	        t.Error("expected 'Submitted' text")
//	    }
//	}
//
// Text measures through a fixed-advance measurer by default, so pixel
// positions in assertions are exact. Pass your own measurer to NewTesterWith
// when a test needs different metrics.
package uitest
