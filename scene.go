package chartkit

import (
	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, input state and
// render buffers. Charts mount under its root.
type Scene struct {
	root  *Node
	debug bool
	log   logr.Logger

	// ClearColor fills the screen before each Draw when its alpha is non-zero.
	ClearColor Color

	// Render state
	vertBuf []ebiten.Vertex

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	hitBuf      []*Node
	enterBuf    []*Node
	injectQueue []syntheticPointerEvent
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:       root,
		log:        logr.Discard(),
		ClearColor: ColorWhite,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetLogger sets the logger used for debug output.
func (s *Scene) SetLogger(log logr.Logger) {
	s.log = log
	if s.debug {
		debugLogger = log
	}
}

// Update processes input and advances transitions by one tick. It is meant to
// be called from an ebiten game loop.
func (s *Scene) Update() {
	s.Step(1.0 / float64(ebiten.TPS()))
	s.processInput()
}

// Step advances every in-flight transition by dt seconds and refreshes world
// transforms. It reports whether any transition is still running.
func (s *Scene) Step(dt float64) bool {
	running := advanceTweens(s.root, float32(dt))
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	return running
}

// Settle jumps every in-flight transition to its end state. Headless output
// such as SVG export calls it so the snapshot shows final positions.
func (s *Scene) Settle() {
	finishTweens(s.root)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and per-frame
// draw stats are logged at V(2).
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		debugLogger = s.log
	} else {
		debugLogger = logr.Discard()
	}
}
