package chartkit

import "fmt"

// Event is delivered to chart event handlers. Value and Index describe the
// datum under the pointer; for series events Value is the zero DataPoint and
// Index is the Series' row index.
type Event struct {
	Name   EventName
	Series string
	Value  DataPoint
	Index  int
	Node   *Node
}

// Handler receives chart events.
type Handler func(Event)

// EventStore is the interface for optional ECS integration. When set on a
// chart, every dispatched Event is forwarded to the store after the
// registered handlers run.
type EventStore interface {
	EmitEvent(Event)
}

// dispatcher is a per-chart observer registry: handlers per event name,
// invoked synchronously in registration order.
type dispatcher struct {
	handlers map[EventName][]Handler
	store    EventStore
}

func (d *dispatcher) on(name EventName, fn Handler) {
	if !name.valid() {
		panic(fmt.Sprintf("chartkit: unknown event %q", name))
	}
	if fn == nil {
		return
	}
	if d.handlers == nil {
		d.handlers = make(map[EventName][]Handler)
	}
	d.handlers[name] = append(d.handlers[name], fn)
}

func (d *dispatcher) emit(e Event) {
	for _, fn := range d.handlers[e.Name] {
		fn(e)
	}
	if d.store != nil {
		d.store.EmitEvent(e)
	}
}

// bindValueEvents wires a drawn datum node to the value events. The datum is
// read from the node when the event fires, so updates in place are seen.
func (d *dispatcher) bindValueEvents(n *Node) {
	n.Interactable = true
	n.OnPointerEnter = func(ctx PointerContext) { d.emit(valueEvent(EventValueMouseOver, ctx.Node)) }
	n.OnPointerLeave = func(ctx PointerContext) { d.emit(valueEvent(EventValueMouseOut, ctx.Node)) }
	n.OnClick = func(ctx PointerContext) { d.emit(valueEvent(EventValueClick, ctx.Node)) }
}

// bindSeriesEvents wires a Series group node to the series events.
func (d *dispatcher) bindSeriesEvents(n *Node) {
	n.Interactable = true
	n.OnPointerEnter = func(ctx PointerContext) { d.emit(seriesEvent(EventSeriesMouseOver, ctx.Node)) }
	n.OnPointerLeave = func(ctx PointerContext) { d.emit(seriesEvent(EventSeriesMouseOut, ctx.Node)) }
	n.OnClick = func(ctx PointerContext) { d.emit(seriesEvent(EventSeriesClick, ctx.Node)) }
}

func valueEvent(name EventName, n *Node) Event {
	e := Event{Name: name, Node: n}
	switch d := n.Datum.(type) {
	case Arc:
		e.Value = DataPoint{Key: d.Key, Value: d.Value}
		e.Index = d.Index
		if n.Parent != nil {
			e.Series = n.Parent.Key
		}
	case Cell:
		e.Series = d.Row
		e.Value = DataPoint{Key: d.Column, Value: d.Value}
		e.Index = d.Index
	}
	return e
}

func seriesEvent(name EventName, n *Node) Event {
	return Event{Name: name, Series: n.Key, Index: n.Index, Node: n}
}
