package chartkit

import "github.com/hajimehoshi/ebiten/v2"

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node // deepest node under the pointer last frame
	button    MouseButton

	// hoverChain is hoverNode and its ancestors, deepest first, as they were
	// when the pointer entered. It outlives disposal of hoverNode.
	hoverChain []*Node
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	click        []pointerHandler
	nextID       uint32
}

func (r *handlerRegistry) list(event EventType) *[]pointerHandler {
	switch event {
	case EventPointerDown:
		return &r.pointerDown
	case EventPointerUp:
		return &r.pointerUp
	case EventPointerMove:
		return &r.pointerMove
	case EventPointerEnter:
		return &r.pointerEnter
	case EventPointerLeave:
		return &r.pointerLeave
	case EventClick:
		return &r.click
	}
	panic("chartkit: unknown pointer event type")
}

func (r *handlerRegistry) add(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	l := r.list(event)
	*l = append(*l, pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	l := h.reg.list(h.event)
	s := *l
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			*l = s[:len(s)-1]
			return
		}
	}
}

// OnPointerDown registers a scene-level callback for pointer press events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer release events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerUp, fn)
}

// OnPointerMove registers a scene-level callback for hover moves.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerMove, fn)
}

// OnPointerEnter registers a scene-level callback fired once for every node
// the pointer enters.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerEnter, fn)
}

// OnPointerLeave registers a scene-level callback fired once for every node
// the pointer leaves.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerLeave, fn)
}

// OnClick registers a scene-level callback for clicks. It fires once per
// click with the deepest node hit.
func (s *Scene) OnClick(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventClick, fn)
}

// --- Hit testing ---

// nodeContainsLocal reports whether a local point is inside the node's hit
// area: its HitShape, else its Shape, else its Size when set.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Shape != nil {
		return n.Shape.Contains(lx, ly)
	}
	if n.Size.X == 0 && n.Size.Y == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Size.X && ly >= 0 && ly <= n.Size.Y
}

// collectInteractable appends hittable nodes in draw order. A node that is
// hidden or not interactable hides its whole subtree from hit testing.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Shape != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest returns the topmost interactable node at the world point, or nil.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput feeds one queued synthetic event, or the real mouse when the
// queue is empty, through processPointer.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the pointer state machine for one frame.
//
// Enter and leave follow the hovered node's ancestor chain: moving from an
// arc to its sibling leaves and enters only the arcs, while the shared
// parent group stays entered. Clicks bubble from the deepest node to the root.
func (s *Scene) processPointer(wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	target := s.hitTest(wx, wy)

	if target != ps.hoverNode {
		s.fireHoverChange(target, wx, wy, button)
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.fire(EventPointerDown, target, wx, wy, button)
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, wx, wy, ps.button)
		}
		s.fire(EventPointerUp, target, wx, wy, ps.button)
		ps.down = false
		ps.hitNode = nil
	case !pressed && (wx != ps.lastX || wy != ps.lastY):
		s.fire(EventPointerMove, target, wx, wy, button)
	}
	ps.lastX = wx
	ps.lastY = wy
}

// ancestry returns n and its ancestors, deepest first. Disposed nodes have
// no ancestry.
func ancestry(n *Node, buf []*Node) []*Node {
	buf = buf[:0]
	for p := n; p != nil && !p.disposed; p = p.Parent {
		buf = append(buf, p)
	}
	return buf
}

func containsNode(list []*Node, n *Node) bool {
	for _, c := range list {
		if c == n {
			return true
		}
	}
	return false
}

// fireHoverChange fires leave on nodes of the entered chain that are not
// under the pointer anymore, deepest first, then enter on nodes only in to's
// chain, outermost first. Disposed nodes get no leave.
func (s *Scene) fireHoverChange(to *Node, wx, wy float64, button MouseButton) {
	ps := &s.pointer
	s.enterBuf = ancestry(to, s.enterBuf)
	for _, n := range ps.hoverChain {
		if !n.disposed && !containsNode(s.enterBuf, n) {
			s.fire(EventPointerLeave, n, wx, wy, button)
		}
	}
	for i := len(s.enterBuf) - 1; i >= 0; i-- {
		n := s.enterBuf[i]
		if !containsNode(ps.hoverChain, n) {
			s.fire(EventPointerEnter, n, wx, wy, button)
		}
	}
	ps.hoverChain = append(ps.hoverChain[:0], s.enterBuf...)
}

// fireClick runs scene click handlers once, then per-node OnClick from the
// target up through its ancestors.
func (s *Scene) fireClick(target *Node, wx, wy float64, button MouseButton) {
	ctx := pointerContext(target, wx, wy, button)
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	for n := target; n != nil && !n.disposed; n = n.Parent {
		if n.OnClick != nil {
			n.OnClick(pointerContext(n, wx, wy, button))
		}
	}
}

func (s *Scene) fire(event EventType, node *Node, wx, wy float64, button MouseButton) {
	ctx := pointerContext(node, wx, wy, button)
	for _, h := range *s.handlers.list(event) {
		h.fn(ctx)
	}
	if node == nil {
		return
	}
	var fn func(PointerContext)
	switch event {
	case EventPointerDown:
		fn = node.OnPointerDown
	case EventPointerUp:
		fn = node.OnPointerUp
	case EventPointerMove:
		fn = node.OnPointerMove
	case EventPointerEnter:
		fn = node.OnPointerEnter
	case EventPointerLeave:
		fn = node.OnPointerLeave
	}
	if fn != nil {
		fn(ctx)
	}
}

func pointerContext(node *Node, wx, wy float64, button MouseButton) PointerContext {
	ctx := PointerContext{Node: node, GlobalX: wx, GlobalY: wy, Button: button}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
		ctx.Datum = node.Datum
	}
	return ctx
}
