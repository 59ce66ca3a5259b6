package chartkit

import (
	"github.com/go-logr/logr"
)

// Config is the configuration shared by every chart type.
type Config struct {
	Width      float64
	Height     float64
	Margin     Margin
	Colors     []Color
	Transition Transition
}

// chart holds the state and lifecycle common to every chart type. Each
// chart instance owns its own chart; nothing is shared across instances.
type chart struct {
	kind   string   // class of the root node, identifies the chart type
	layers []string // layer classes, created once under the chart group

	cfg        Config
	colorScale ColorScale // last scale used
	injected   bool       // colorScale was supplied by the caller

	events dispatcher
	log    logr.Logger
}

func newChart(kind string, layers []string, cfg Config) chart {
	return chart{
		kind:   kind,
		layers: layers,
		cfg:    cfg,
		log:    logr.Discard(),
	}
}

// Width returns the total chart width in pixels.
func (c *chart) Width() float64 { return c.cfg.Width }

// Height returns the total chart height in pixels.
func (c *chart) Height() float64 { return c.cfg.Height }

// Margin returns the space reserved around the content area.
func (c *chart) Margin() Margin { return c.cfg.Margin }

// Colors returns the palette automatic color scales are built from.
func (c *chart) Colors() []Color { return c.cfg.Colors }

// Transition returns the transition used for node updates.
func (c *chart) Transition() Transition { return c.cfg.Transition }

// Config returns a copy of the shared configuration.
func (c *chart) Config() Config {
	cfg := c.cfg
	cfg.Colors = append([]Color(nil), c.cfg.Colors...)
	return cfg
}

// ColorScale returns the injected color scale, or the one built by the most
// recent render. Nil before the first render unless injected.
func (c *chart) ColorScale() ColorScale { return c.colorScale }

// ContentSize returns the content area: total size minus margins, never
// negative.
func (c *chart) ContentSize() (w, h float64) {
	m := c.cfg.Margin
	w = max(c.cfg.Width-m.Left-m.Right, 0)
	h = max(c.cfg.Height-m.Top-m.Bottom, 0)
	return w, h
}

func (c *chart) setColorScale(s ColorScale) {
	c.colorScale = s
	c.injected = s != nil
}

// findRoot returns this chart's root among container's children, or nil.
// Roots carry their chart as Datum.
func (c *chart) findRoot(container *Node) *Node {
	for _, ch := range container.children {
		if owner, ok := ch.Datum.(*chart); ok && owner == c {
			return ch
		}
	}
	return nil
}

// mount returns the chart group under this chart's root in container. The
// root, chart group and layers are created on first use only; later calls
// reuse them and recreate just a layer that has gone missing.
func (c *chart) mount(container *Node) *Node {
	if container == nil {
		panic("chartkit: mount on nil container")
	}
	root := c.findRoot(container)
	if root == nil {
		root = NewContainer(c.kind)
		root.Class = c.kind
		root.Datum = c
		root.Interactable = true
		container.AddChild(root)
		c.log.V(1).Info("mounted", "chart", c.kind)
	}
	root.Size = Vec2{X: c.cfg.Width, Y: c.cfg.Height}

	group := root.ChildByKey("chart")
	if group == nil {
		group = NewContainer("chart")
		group.Key = "chart"
		group.Class = "chart"
		group.Interactable = true
		root.AddChild(group)
	}
	for _, name := range c.layers {
		if group.ChildByKey(name) != nil {
			continue
		}
		l := NewContainer(name)
		l.Key = name
		l.Class = name
		l.Interactable = true
		group.AddChild(l)
	}
	return group
}

// layer returns the named layer under the chart group.
func (c *chart) layer(group *Node, name string) *Node {
	return group.ChildByKey(name)
}

// warnDuplicates logs every repeated (row, column) pair in s.
func (c *chart) warnDuplicates(s *Summary) {
	for _, d := range s.Duplicates {
		c.log.Info("duplicate column key in series; last value wins", "series", d.Row, "key", d.Column)
	}
}

// animate starts the chart's transition on n.
func (c *chart) animate(n *Node, build func(g *TweenGroup)) {
	g := c.cfg.Transition.group(n)
	build(g)
	n.Animate(g)
}
