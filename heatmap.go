package chartkit

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/tanema/gween/ease"
)

// Heat map layer classes.
const (
	LayerHeatRowGroups = "heatRowGroups"
	LayerXAxis         = "xAxis"
	LayerYAxis         = "yAxis"
)

// HeatMapPadding is the band padding of both heat map axes.
const HeatMapPadding = 0.1

// axisLabelGap is the distance between an axis label and the grid.
const axisLabelGap = 8

// HeatMap draws a Dataset as a table of colored cells: one row per Series,
// one column per column key, filled by bucketing the value against
// thresholds.
type HeatMap struct {
	chart

	thresholds []float64
	buckets    int
}

// NewHeatMap returns a heat map with the default 400x300 size, room for axis
// labels on the top and left, the five-color HeatMapPalette and a 500ms
// bounce transition.
func NewHeatMap() *HeatMap {
	return &HeatMap{
		chart: newChart("heatMapTable", []string{LayerHeatRowGroups, LayerXAxis, LayerYAxis}, Config{
			Width:      400,
			Height:     300,
			Margin:     Margin{Top: 50, Right: 20, Bottom: 20, Left: 50},
			Colors:     append([]Color(nil), HeatMapPalette...),
			Transition: Transition{Duration: 500 * time.Millisecond, Ease: ease.OutBounce},
		}),
	}
}

// SetWidth sets the total width in pixels.
func (h *HeatMap) SetWidth(w float64) *HeatMap { h.cfg.Width = w; return h }

// SetHeight sets the total height in pixels.
func (h *HeatMap) SetHeight(v float64) *HeatMap { h.cfg.Height = v; return h }

// SetMargin sets the space reserved around the grid.
func (h *HeatMap) SetMargin(m Margin) *HeatMap { h.cfg.Margin = m; return h }

// SetColors sets the bucket palette, lowest bucket first.
func (h *HeatMap) SetColors(c []Color) *HeatMap {
	h.cfg.Colors = append([]Color(nil), c...)
	return h
}

// SetColorScale injects a color scale used as is on every render. Nil
// restores the automatic threshold scale.
func (h *HeatMap) SetColorScale(s ColorScale) *HeatMap { h.setColorScale(s); return h }

// SetTransition sets the ease and duration of cell updates.
func (h *HeatMap) SetTransition(t Transition) *HeatMap { h.cfg.Transition = t; return h }

// SetConfig replaces the shared configuration.
func (h *HeatMap) SetConfig(cfg Config) *HeatMap {
	cfg.Colors = append([]Color(nil), cfg.Colors...)
	h.cfg = cfg
	return h
}

// SetThresholds fixes the bucket cut points instead of deriving them from
// each dataset. An empty slice restores derivation.
func (h *HeatMap) SetThresholds(t []float64) *HeatMap {
	h.thresholds = append([]float64(nil), t...)
	return h
}

// SetBuckets sets how many buckets derived thresholds split the value range
// into. Zero, the default, uses one bucket per color.
func (h *HeatMap) SetBuckets(n int) *HeatMap { h.buckets = n; return h }

// SetLogger sets the logger for render diagnostics.
func (h *HeatMap) SetLogger(log logr.Logger) *HeatMap { h.log = log; return h }

// SetEventStore forwards every dispatched event to store.
func (h *HeatMap) SetEventStore(store EventStore) *HeatMap { h.events.store = store; return h }

// On registers fn for the named event. Handlers run synchronously in
// registration order. Panics on an unknown event name.
func (h *HeatMap) On(name EventName, fn Handler) *HeatMap {
	h.events.on(name, fn)
	return h
}

// Thresholds returns the fixed thresholds, or nil when they are derived.
func (h *HeatMap) Thresholds() []float64 { return append([]float64(nil), h.thresholds...) }

// Buckets returns the bucket count used to derive thresholds.
func (h *HeatMap) Buckets() int {
	if h.buckets > 0 {
		return h.buckets
	}
	return max(len(h.cfg.Colors), 2)
}

// Mount attaches the chart to container, creating its root and layers on the
// first call only, and returns the chart group.
func (h *HeatMap) Mount(container *Node) *Node {
	return h.mount(container)
}

// Render draws ds into container, mounting on the first call and updating
// in place afterwards. All computation finishes before any node changes; on
// error nothing is touched.
func (h *HeatMap) Render(container *Node, ds Dataset) error {
	sum, err := Summarize(ds, WithBuckets(h.Buckets()))
	if err != nil {
		return fmt.Errorf("heat map: %w", err)
	}

	colors := h.colorScale
	if !h.injected {
		thr := sum.Thresholds
		if h.thresholds != nil {
			thr = h.thresholds
		}
		ts, err := NewThresholdScale(thr, h.cfg.Colors)
		if err != nil {
			return fmt.Errorf("heat map: %w", err)
		}
		colors = ts
	}

	cw, ch := h.ContentSize()
	x, err := NewBandScale(sum.ColumnKeys, 0, cw, HeatMapPadding)
	if err != nil {
		return fmt.Errorf("heat map columns: %w", err)
	}
	y, err := NewBandScale(sum.RowKeys, 0, ch, HeatMapPadding)
	if err != nil {
		return fmt.Errorf("heat map rows: %w", err)
	}
	rows, err := Grid(ds, x, y, colors)
	if err != nil {
		return fmt.Errorf("heat map: %w", err)
	}

	// Nothing below fails.
	h.colorScale = colors
	h.warnDuplicates(sum)

	group := h.mount(container)
	group.SetPosition(h.cfg.Margin.Left, h.cfg.Margin.Top)

	stats := h.joinRows(h.layer(group, LayerHeatRowGroups), ds, rows)
	stats.Add(h.joinXAxis(h.layer(group, LayerXAxis), x))
	stats.Add(h.joinYAxis(h.layer(group, LayerYAxis), y))
	h.log.V(1).Info("rendered", "chart", h.kind, "rows", len(rows), "columns", len(sum.ColumnKeys),
		"enter", stats.Enter, "update", stats.Update, "exit", stats.Exit)
	return nil
}

func (h *HeatMap) joinRows(layer *Node, ds Dataset, rows []GridRow) JoinStats {
	var stats JoinStats
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	stats.Add(Join(layer, keys, func(i int) *Node {
		g := NewContainer("seriesGroup")
		g.Class = "seriesGroup"
		g.SetPosition(0, rows[i].Y)
		h.events.bindSeriesEvents(g)
		return g
	}, func(g *Node, i int, _ bool) {
		row := rows[i]
		g.Datum = ds[row.Index]
		g.Index = row.Index
		h.animate(g, func(t *TweenGroup) { t.Position(0, row.Y) })
		stats.Add(h.joinCells(g, row))
	}))
	return stats
}

func (h *HeatMap) joinCells(g *Node, row GridRow) JoinStats {
	keys := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		keys[i] = c.Column
	}
	return Join(g, keys, func(i int) *Node {
		c := row.Cells[i]
		// Enter in place with a transparent fill and fade in.
		fill := c.Color
		fill.A = 0
		n := NewShape("cell", &RectShape{Width: c.Width, Height: c.Height}, fill)
		n.Class = "cell"
		n.SetPosition(c.X, 0)
		h.events.bindValueEvents(n)
		return n
	}, func(n *Node, i int, _ bool) {
		c := row.Cells[i]
		n.Datum = c
		n.Index = c.Index
		h.animate(n, func(t *TweenGroup) {
			t.Position(c.X, 0).Rect(c.Width, c.Height).Color(c.Color)
		})
	})
}

func (h *HeatMap) joinXAxis(layer *Node, x *BandScale) JoinStats {
	layer.Interactable = false
	keys := x.Domain()
	return Join(layer, keys, func(int) *Node {
		n := NewText("tick", "")
		n.Class = "tick"
		n.Align = TextAlignCenter
		return n
	}, func(n *Node, i int, entered bool) {
		pos, _ := x.Map(keys[i])
		n.Label = keys[i]
		px, py := pos+x.Bandwidth()/2, -float64(axisLabelGap)
		if entered {
			n.SetPosition(px, py)
			return
		}
		h.animate(n, func(t *TweenGroup) { t.Position(px, py) })
	})
}

func (h *HeatMap) joinYAxis(layer *Node, y *BandScale) JoinStats {
	layer.Interactable = false
	keys := y.Domain()
	return Join(layer, keys, func(int) *Node {
		n := NewText("tick", "")
		n.Class = "tick"
		n.Align = TextAlignRight
		return n
	}, func(n *Node, i int, entered bool) {
		pos, _ := y.Map(keys[i])
		n.Label = keys[i]
		px, py := -float64(axisLabelGap), pos+y.Bandwidth()/2
		if entered {
			n.SetPosition(px, py)
			return
		}
		h.animate(n, func(t *TweenGroup) { t.Position(px, py) })
	})
}
