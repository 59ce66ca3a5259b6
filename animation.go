package chartkit

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition describes how bound nodes move to their new attributes during a
// render. A zero Duration applies the new attributes immediately.
type Transition struct {
	Duration time.Duration
	Ease     ease.TweenFunc
}

func (t Transition) seconds() float32 {
	return float32(t.Duration.Seconds())
}

func (t Transition) easing() ease.TweenFunc {
	if t.Ease == nil {
		return ease.Linear
	}
	return t.Ease
}

// group starts a TweenGroup on node using this transition's timing.
func (t Transition) group(node *Node) *TweenGroup {
	return NewTweenGroup(node, t.seconds(), t.easing())
}

// TweenGroup animates any number of float64 fields of a Node simultaneously.
// Create one via NewTweenGroup or the convenience constructors (TweenPosition,
// TweenColor, TweenAlpha, TweenArc) and hand it to Node.Animate, or call
// Update(dt) yourself. The group writes values on every update and marks the
// node dirty. If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens   []*gween.Tween
	fields   []*float64
	ends     []float64
	duration float32
	fn       ease.TweenFunc
	target   *Node
	Done     bool
}

// NewTweenGroup returns an empty group for node. Add fields with the chained
// methods before the first Update.
func NewTweenGroup(node *Node, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenGroup{duration: duration, fn: fn, target: node}
}

// Field animates *field from its current value to to.
func (g *TweenGroup) Field(field *float64, to float64) *TweenGroup {
	if g.duration > 0 {
		g.tweens = append(g.tweens, gween.New(float32(*field), float32(to), g.duration, g.fn))
	}
	g.fields = append(g.fields, field)
	g.ends = append(g.ends, to)
	return g
}

// Position animates node.X and node.Y.
func (g *TweenGroup) Position(x, y float64) *TweenGroup {
	return g.Field(&g.target.X, x).Field(&g.target.Y, y)
}

// Alpha animates node.Alpha.
func (g *TweenGroup) Alpha(a float64) *TweenGroup {
	return g.Field(&g.target.Alpha, a)
}

// Color animates all four components of node.Color.
func (g *TweenGroup) Color(c Color) *TweenGroup {
	return g.Field(&g.target.Color.R, c.R).
		Field(&g.target.Color.G, c.G).
		Field(&g.target.Color.B, c.B).
		Field(&g.target.Color.A, c.A)
}

// Arc animates the angles and radii of the node's ArcShape. Panics if the
// node is not an arc.
func (g *TweenGroup) Arc(a Arc) *TweenGroup {
	s, ok := g.target.Shape.(*ArcShape)
	if !ok {
		panic("chartkit: TweenGroup.Arc on a node without an ArcShape")
	}
	return g.Field(&s.StartAngle, a.StartAngle).
		Field(&s.EndAngle, a.EndAngle).
		Field(&s.InnerRadius, a.InnerRadius).
		Field(&s.OuterRadius, a.OuterRadius)
}

// Rect animates the size of the node's RectShape. Panics if the node is not
// a rectangle.
func (g *TweenGroup) Rect(width, height float64) *TweenGroup {
	s, ok := g.target.Shape.(*RectShape)
	if !ok {
		panic("chartkit: TweenGroup.Rect on a node without a RectShape")
	}
	return g.Field(&s.Width, width).Field(&s.Height, height)
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	if len(g.tweens) != len(g.fields) {
		g.Finish()
		return
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		if finished {
			*g.fields[i] = g.ends[i]
		} else {
			*g.fields[i] = float64(val)
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// Finish jumps every field to its end value.
func (g *TweenGroup) Finish() {
	if g.Done {
		return
	}
	g.Done = true
	if g.target != nil && g.target.IsDisposed() {
		return
	}
	for i, f := range g.fields {
		*f = g.ends[i]
	}
	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn).Position(toX, toY)
}

// TweenColor creates a TweenGroup that animates all four components of
// node.Color (R, G, B, A) to the target color over the specified duration.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn).Color(to)
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn).Alpha(to)
}

// TweenArc creates a TweenGroup that animates an arc node's geometry to the
// target arc over the specified duration using the easing function.
func TweenArc(node *Node, to Arc, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn).Arc(to)
}

// Animate makes g the node's in-flight transition, replacing any previous one
// mid-flight. The scene advances it on every Update. A group with no duration
// is applied at once.
func (n *Node) Animate(g *TweenGroup) {
	if g == nil {
		n.tween = nil
		return
	}
	if g.duration <= 0 {
		g.Finish()
		n.tween = nil
		return
	}
	n.tween = g
}

// Animating reports whether the node has an unfinished transition.
func (n *Node) Animating() bool {
	return n.tween != nil && !n.tween.Done
}

// advanceTweens steps every in-flight transition in the subtree by dt and
// reports whether any is still running.
func advanceTweens(n *Node, dt float32) bool {
	running := false
	if n.tween != nil {
		n.tween.Update(dt)
		if n.tween.Done {
			n.tween = nil
		} else {
			running = true
		}
	}
	for _, c := range n.children {
		if advanceTweens(c, dt) {
			running = true
		}
	}
	return running
}

// finishTweens jumps every transition in the subtree to its end state.
func finishTweens(n *Node) {
	if n.tween != nil {
		n.tween.Finish()
		n.tween = nil
	}
	for _, c := range n.children {
		finishTweens(c)
	}
}
