package chartkit

import "testing"

type recordingStore struct {
	events []Event
}

func (r *recordingStore) EmitEvent(e Event) { r.events = append(r.events, e) }

func TestOnUnknownEventPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an unknown event name")
		}
	}()
	NewDonutChart().On("mouseover", func(Event) {})
}

func TestOnNilHandlerIgnored(t *testing.T) {
	var d dispatcher
	d.on(EventValueClick, nil)
	if len(d.handlers[EventValueClick]) != 0 {
		t.Error("nil handler should not be registered")
	}
	d.emit(Event{Name: EventValueClick}) // no handlers, no store
}

func TestDispatcherOrder(t *testing.T) {
	store := &recordingStore{}
	d := dispatcher{store: store}
	var order []string
	d.on(EventSeriesClick, func(Event) { order = append(order, "first") })
	d.on(EventSeriesClick, func(e Event) {
		order = append(order, "second")
		if len(store.events) != 0 {
			t.Error("store should see the event after handlers")
		}
	})
	d.on(EventValueClick, func(Event) { order = append(order, "other") })

	d.emit(Event{Name: EventSeriesClick, Series: "A"})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
	if len(store.events) != 1 || store.events[0].Series != "A" {
		t.Errorf("store events = %+v", store.events)
	}
}

func TestValueEventFromDatum(t *testing.T) {
	g := NewContainer("series")
	g.Key = "A"
	arc := NewContainer("arc")
	arc.Datum = Arc{Key: "X", Value: 3, Index: 2}
	g.AddChild(arc)

	e := valueEvent(EventValueMouseOver, arc)
	if e.Series != "A" || e.Value != (DataPoint{Key: "X", Value: 3}) || e.Index != 2 || e.Node != arc {
		t.Errorf("arc event = %+v", e)
	}

	cell := NewContainer("cell")
	cell.Datum = Cell{Row: "B", Column: "Y", Value: 7, Index: 1}
	e = valueEvent(EventValueClick, cell)
	if e.Series != "B" || e.Value != (DataPoint{Key: "Y", Value: 7}) || e.Index != 1 {
		t.Errorf("cell event = %+v", e)
	}
}

func TestSeriesEvent(t *testing.T) {
	g := NewContainer("seriesGroup")
	g.Key = "B"
	g.Index = 4
	e := seriesEvent(EventSeriesMouseOut, g)
	if e.Name != EventSeriesMouseOut || e.Series != "B" || e.Index != 4 || e.Value != (DataPoint{}) {
		t.Errorf("series event = %+v", e)
	}
}

func TestChartEventsReachStore(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	d := NewDonutChart().SetEventStore(store)
	if err := d.Render(s.Root(), donutData(1, 1, 2)); err != nil {
		t.Fatal(err)
	}
	s.Settle()

	s.InjectClick(300, 140)
	s.DispatchInjected()

	var names []EventName
	for _, e := range store.events {
		names = append(names, e.Name)
	}
	want := []EventName{EventSeriesMouseOver, EventValueMouseOver, EventValueClick, EventSeriesClick}
	if len(names) != len(want) {
		t.Fatalf("store saw %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("store saw %v, want %v", names, want)
			break
		}
	}
}
