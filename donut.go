package chartkit

import (
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
	"github.com/tanema/gween/ease"
)

// Donut chart layer classes.
const (
	LayerDonut       = "donut"
	LayerDonutLabels = "donutLabels"
)

// DonutChart draws one Series as a ring of arcs, one per DataPoint, with
// spans proportional to the values.
//
// Several Series are drawn as a single ring of column totals unless one is
// picked with SetSeries.
type DonutChart struct {
	chart

	radius         float64
	hasRadius      bool
	innerRadius    float64
	hasInnerRadius bool
	labelOffset    float64
	series         string
}

// NewDonutChart returns a donut chart with the default 400x300 size, 20px
// margins, a three-color categorical palette and a 750ms cubic transition.
func NewDonutChart() *DonutChart {
	return &DonutChart{
		chart: newChart("donutChart", []string{LayerDonut, LayerDonutLabels}, Config{
			Width:      400,
			Height:     300,
			Margin:     Margin{Top: 20, Right: 20, Bottom: 20, Left: 20},
			Colors:     Categorical(3),
			Transition: Transition{Duration: 750 * time.Millisecond, Ease: ease.InOutCubic},
		}),
	}
}

// SetWidth sets the total width in pixels.
func (d *DonutChart) SetWidth(w float64) *DonutChart { d.cfg.Width = w; return d }

// SetHeight sets the total height in pixels.
func (d *DonutChart) SetHeight(h float64) *DonutChart { d.cfg.Height = h; return d }

// SetMargin sets the space reserved around the content area.
func (d *DonutChart) SetMargin(m Margin) *DonutChart { d.cfg.Margin = m; return d }

// SetColors sets the palette the automatic ordinal scale cycles through.
func (d *DonutChart) SetColors(c []Color) *DonutChart {
	d.cfg.Colors = append([]Color(nil), c...)
	return d
}

// SetColorScale injects a color scale used as is on every render. Nil
// restores the automatic ordinal scale.
func (d *DonutChart) SetColorScale(s ColorScale) *DonutChart { d.setColorScale(s); return d }

// SetTransition sets the ease and duration of arc updates.
func (d *DonutChart) SetTransition(t Transition) *DonutChart { d.cfg.Transition = t; return d }

// SetConfig replaces the shared configuration.
func (d *DonutChart) SetConfig(cfg Config) *DonutChart {
	cfg.Colors = append([]Color(nil), cfg.Colors...)
	d.cfg = cfg
	return d
}

// SetRadius sets the outer radius, overriding the derived default.
func (d *DonutChart) SetRadius(r float64) *DonutChart {
	d.radius, d.hasRadius = r, true
	return d
}

// SetInnerRadius sets the inner radius, overriding the derived default.
func (d *DonutChart) SetInnerRadius(r float64) *DonutChart {
	d.innerRadius, d.hasInnerRadius = r, true
	return d
}

// SetLabelOffset places labels offset pixels outside the ring. Zero, the
// default, centers labels inside their arcs.
func (d *DonutChart) SetLabelOffset(offset float64) *DonutChart { d.labelOffset = offset; return d }

// SetSeries picks the Series drawn when the dataset holds several. An empty
// key restores aggregation into column totals.
func (d *DonutChart) SetSeries(key string) *DonutChart { d.series = key; return d }

// SetLogger sets the logger for render diagnostics.
func (d *DonutChart) SetLogger(log logr.Logger) *DonutChart { d.log = log; return d }

// SetEventStore forwards every dispatched event to store.
func (d *DonutChart) SetEventStore(store EventStore) *DonutChart { d.events.store = store; return d }

// On registers fn for the named event. Handlers run synchronously in
// registration order. Panics on an unknown event name.
func (d *DonutChart) On(name EventName, fn Handler) *DonutChart {
	d.events.on(name, fn)
	return d
}

// Radius returns the outer radius; zero until set or derived by the first render.
func (d *DonutChart) Radius() float64 { return d.radius }

// InnerRadius returns the inner radius; zero until set or derived by the first render.
func (d *DonutChart) InnerRadius() float64 { return d.innerRadius }

// LabelOffset returns the external label offset.
func (d *DonutChart) LabelOffset() float64 { return d.labelOffset }

// Series returns the key of the picked Series, or "" when aggregating.
func (d *DonutChart) Series() string { return d.series }

// Mount attaches the chart to container, creating its root and layers on the
// first call only, and returns the chart group.
func (d *DonutChart) Mount(container *Node) *Node {
	return d.mount(container)
}

// ring returns the Series drawn as the ring.
func (d *DonutChart) ring(ds Dataset, sum *Summary) (Series, error) {
	switch {
	case d.series != "":
		s, ok := ds.Find(d.series)
		if !ok {
			return Series{}, fmt.Errorf("series %q: %w", d.series, ErrUnknownSeries)
		}
		return s, nil
	case len(ds) == 1:
		return ds[0], nil
	default:
		return sum.Aggregate("total"), nil
	}
}

// Render draws ds into container, mounting on the first call and updating
// in place afterwards. All computation finishes before any node changes; on
// error nothing is touched.
func (d *DonutChart) Render(container *Node, ds Dataset) error {
	sum, err := Summarize(ds)
	if err != nil {
		return fmt.Errorf("donut: %w", err)
	}
	series, err := d.ring(ds, sum)
	if err != nil {
		return fmt.Errorf("donut: %w", err)
	}
	pts, _ := series.Points()

	cw, ch := d.ContentSize()
	radius, inner := d.radius, d.innerRadius
	if !d.hasRadius {
		radius = min(cw, ch) / 2
	}
	if !d.hasInnerRadius {
		inner = radius / 2
	}
	arcs, err := Partition(pts, inner, radius)
	if err != nil {
		return fmt.Errorf("donut %q: %w", series.Key, err)
	}

	colors := d.colorScale
	if !d.injected {
		ord, err := NewOrdinalScale(sum.ColumnKeys, d.cfg.Colors)
		if err != nil {
			return fmt.Errorf("donut: %w", err)
		}
		colors = ord
	}

	// Nothing below fails.
	if !d.hasRadius {
		d.radius, d.hasRadius = radius, true
	}
	if !d.hasInnerRadius {
		d.innerRadius, d.hasInnerRadius = inner, true
	}
	d.colorScale = colors
	d.warnDuplicates(sum)

	group := d.mount(container)
	group.SetPosition(d.cfg.Width/2, d.cfg.Height/2)

	stats := d.joinArcs(d.layer(group, LayerDonut), series, arcs, colors)
	stats.Add(d.joinLabels(d.layer(group, LayerDonutLabels), series, arcs))
	d.log.V(1).Info("rendered", "chart", d.kind, "series", series.Key, "arcs", len(arcs),
		"radius", d.radius, "innerRadius", d.innerRadius,
		"enter", stats.Enter, "update", stats.Update, "exit", stats.Exit)
	return nil
}

func (d *DonutChart) joinArcs(layer *Node, series Series, arcs []Arc, colors ColorScale) JoinStats {
	var stats JoinStats
	stats.Add(Join(layer, []string{series.Key}, func(int) *Node {
		g := NewContainer("series")
		g.Class = "series"
		d.events.bindSeriesEvents(g)
		return g
	}, func(g *Node, _ int, _ bool) {
		g.Datum = series
		g.Index = 0
		stats.Add(Join(g, arcKeys(arcs), func(i int) *Node {
			a := arcs[i]
			// Enter collapsed at the start angle and sweep open.
			from := a
			from.EndAngle = a.StartAngle
			n := NewShape("arc", &ArcShape{Arc: from}, colors.Color(a.Key, a.Value))
			n.Class = "arc"
			d.events.bindValueEvents(n)
			return n
		}, func(n *Node, i int, entered bool) {
			a := arcs[i]
			n.Datum = a
			n.Index = a.Index
			c := colors.Color(a.Key, a.Value)
			d.animate(n, func(g *TweenGroup) {
				g.Arc(a)
				if !entered {
					g.Color(c)
				}
			})
		}))
	}))
	return stats
}

func (d *DonutChart) joinLabels(layer *Node, series Series, arcs []Arc) JoinStats {
	var stats JoinStats
	layer.Interactable = false
	stats.Add(Join(layer, []string{series.Key}, func(int) *Node {
		g := NewContainer("labels")
		g.Class = "labels"
		return g
	}, func(g *Node, _ int, _ bool) {
		stats.Add(Join(g, arcKeys(arcs), func(i int) *Node {
			n := NewText("label", arcs[i].Key)
			n.Class = "label"
			n.Align = TextAlignCenter
			p := arcs[i].LabelAnchor(d.labelOffset)
			n.SetPosition(p.X, p.Y)
			return n
		}, func(n *Node, i int, _ bool) {
			a := arcs[i]
			n.Datum = a
			n.Index = a.Index
			n.Label = a.Key
			n.Visible = a.Span() > 0
			if d.labelOffset > 0 {
				n.Align = TextAlignLeft
				if a.MidAngle() > math.Pi {
					n.Align = TextAlignRight
				}
			} else {
				n.Align = TextAlignCenter
			}
			p := a.LabelAnchor(d.labelOffset)
			d.animate(n, func(g *TweenGroup) { g.Position(p.X, p.Y) })
		}))
	}))
	return stats
}

func arcKeys(arcs []Arc) []string {
	keys := make([]string, len(arcs))
	for i, a := range arcs {
		keys[i] = a.Key
	}
	return keys
}
