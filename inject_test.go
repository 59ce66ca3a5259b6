package chartkit

import "testing"

func TestInjectClick(t *testing.T) {
	s := NewScene()
	n := interactiveRect(s.Root(), "btn", 0, 0, 100, 100)

	clicked := false
	n.OnClick = func(PointerContext) { clicked = true }

	s.InjectClick(50, 50)
	if s.PendingInput() != 2 {
		t.Fatalf("PendingInput = %d, want 2", s.PendingInput())
	}

	// The first frame presses, the second releases.
	s.processInjectedInput()
	if clicked {
		t.Fatal("click should fire on release")
	}
	s.processInjectedInput()
	if !clicked {
		t.Error("click should fire after press and release")
	}
	if s.PendingInput() != 0 {
		t.Errorf("PendingInput = %d, want 0", s.PendingInput())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s := NewScene()
	s.InjectPress(1, 2)
	s.InjectMove(3, 4)
	s.InjectRelease(5, 6)

	want := []syntheticPointerEvent{
		{x: 1, y: 2, pressed: true},
		{x: 3, y: 4},
		{x: 5, y: 6},
	}
	for i, w := range want {
		if s.injectQueue[i] != w {
			t.Errorf("queue[%d] = %+v, want %+v", i, s.injectQueue[i], w)
		}
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	s := NewScene()
	if s.processInjectedInput() {
		t.Error("empty queue should report no event")
	}
}

func TestDispatchInjectedDrainsQueue(t *testing.T) {
	s := NewScene()
	n := interactiveRect(s.Root(), "btn", 10, 10, 20, 20)

	var events []string
	n.OnPointerEnter = func(PointerContext) { events = append(events, "enter") }
	n.OnClick = func(PointerContext) { events = append(events, "click") }
	n.OnPointerLeave = func(PointerContext) { events = append(events, "leave") }

	s.InjectMove(15, 15)
	s.InjectClick(15, 15)
	s.InjectMove(0, 0)
	s.DispatchInjected()

	want := []string{"enter", "click", "leave"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events = %v, want %v", events, want)
		}
	}
}

func TestInjectRefreshesTransforms(t *testing.T) {
	s := NewScene()
	n := interactiveRect(s.Root(), "btn", 0, 0, 10, 10)
	n.SetPosition(200, 200)

	clicked := false
	n.OnClick = func(PointerContext) { clicked = true }
	s.InjectClick(205, 205)
	s.DispatchInjected()
	if !clicked {
		t.Error("injected input should see the node's new position")
	}
}
