package chartkit

// syntheticPointerEvent represents a single injected pointer event in world
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a pointer press event at the given coordinates
// (left button). The event is consumed on the next Update.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release event at the given coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectMove queues a hover move (no button held) to the given coordinates.
func (s *Scene) InjectMove(x, y float64) {
	s.InjectRelease(x, y)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// PendingInput returns the number of queued synthetic events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processPointer(evt.x, evt.y, evt.pressed, evt.button)
	return true
}

// DispatchInjected drains the inject queue immediately without waiting for
// frames. Headless callers such as tests and the CLI use it in place of a
// running game loop.
func (s *Scene) DispatchInjected() {
	for s.processInjectedInput() {
	}
}
