package focus

import "testing"

func TestNextIDNeverZero(t *testing.T) {
	var a IDAllocator
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := a.Next()
		if id == 0 {
			t.Fatal("allocator returned zero ID")
		}
		if seen[id] {
			t.Fatalf("allocator repeated ID %d", id)
		}
		seen[id] = true
	}
}

func TestAdvanceEmptyRegistryIsNoOp(t *testing.T) {
	m := NewManager()
	m.Advance(false)
	m.Advance(true)
	if m.Focused() != 0 {
		t.Fatalf("expected no focus, got %d", m.Focused())
	}
}

func TestAdvanceCyclesInRegistrationOrder(t *testing.T) {
	m := NewManager()
	a, b, c := NextID(), NextID(), NextID()
	register := func() {
		m.Register(a)
		m.Register(b)
		m.Register(c)
	}

	register()
	m.Advance(false)
	if !m.IsFocused(a) {
		t.Fatalf("expected first registered to gain focus, got %d", m.Focused())
	}
	m.Advance(false)
	if !m.IsFocused(b) {
		t.Fatalf("expected second, got %d", m.Focused())
	}
	m.Advance(false)
	m.Advance(false)
	if !m.IsFocused(a) {
		t.Fatalf("expected wrap-around to first, got %d", m.Focused())
	}
}

func TestAdvanceReverse(t *testing.T) {
	m := NewManager()
	a, b, c := NextID(), NextID(), NextID()
	m.Register(a)
	m.Register(b)
	m.Register(c)

	m.Advance(true)
	if !m.IsFocused(c) {
		t.Fatalf("expected reverse from nothing to focus last, got %d", m.Focused())
	}
	m.Advance(true)
	if !m.IsFocused(b) {
		t.Fatalf("expected previous entry, got %d", m.Focused())
	}
	m.Advance(true)
	m.Advance(true)
	if !m.IsFocused(c) {
		t.Fatalf("expected reverse wrap-around to last, got %d", m.Focused())
	}
}

func TestAdvanceRestartsWhenFocusedUnregistered(t *testing.T) {
	m := NewManager()
	a, b, gone := NextID(), NextID(), NextID()
	m.RequestFocus(gone)
	m.EndFrame()

	m.Register(a)
	m.Register(b)
	m.Advance(false)
	if !m.IsFocused(a) {
		t.Fatalf("expected restart at first registered, got %d", m.Focused())
	}
}

func TestRequestFocusAppliesAtEndFrame(t *testing.T) {
	m := NewManager()
	id := NextID()

	m.RequestFocus(id)
	if m.IsFocused(id) {
		t.Fatal("focus request must not apply before EndFrame")
	}
	m.EndFrame()
	if !m.IsFocused(id) {
		t.Fatal("focus request should apply at EndFrame")
	}
	if m.JustGained() != id {
		t.Fatalf("expected JustGained %d, got %d", id, m.JustGained())
	}
	if m.JustLost() != 0 {
		t.Fatalf("expected no JustLost, got %d", m.JustLost())
	}
}

func TestFocusTransitionReportsLoser(t *testing.T) {
	m := NewManager()
	a, b := NextID(), NextID()

	m.RequestFocus(a)
	m.EndFrame()
	m.RequestFocus(b)
	m.EndFrame()

	if m.JustGained() != b {
		t.Fatalf("expected JustGained %d, got %d", b, m.JustGained())
	}
	if m.JustLost() != a {
		t.Fatalf("expected JustLost %d, got %d", a, m.JustLost())
	}

	m.EndFrame()
	if m.JustGained() != 0 || m.JustLost() != 0 {
		t.Fatal("expected no transition after a stable frame")
	}
}

func TestClearDropsFocusAndPendingRequest(t *testing.T) {
	m := NewManager()
	a, b := NextID(), NextID()

	m.RequestFocus(a)
	m.EndFrame()
	m.RequestFocus(b)
	m.Clear()
	m.EndFrame()

	if m.Focused() != 0 {
		t.Fatalf("expected no focus after Clear, got %d", m.Focused())
	}
	if m.JustLost() != a {
		t.Fatalf("expected JustLost %d, got %d", a, m.JustLost())
	}
}

func TestBeginFrameResetsRegistry(t *testing.T) {
	m := NewManager()
	a := NextID()
	m.Register(a)
	m.BeginFrame()
	m.Advance(false)
	if m.Focused() != 0 {
		t.Fatal("registry should be empty after BeginFrame")
	}
}

func TestRegistrySurvivesEndFrame(t *testing.T) {
	m := NewManager()
	a := NextID()
	m.Register(a)
	m.EndFrame()
	// Tab handling runs before the next paint and must still see the
	// previous frame's registration order.
	m.Advance(false)
	if !m.IsFocused(a) {
		t.Fatalf("expected Advance to use the previous frame's registry, got %d", m.Focused())
	}
}
