package chartkit

import (
	"errors"
	"math"
	"testing"
)

func TestPartitionQuarter(t *testing.T) {
	arcs, err := Partition([]DataPoint{{"X", 10}, {"Y", 30}}, 50, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(arcs) != 2 {
		t.Fatalf("len = %d, want 2", len(arcs))
	}
	if arcs[0].StartAngle != 0 || math.Abs(arcs[0].EndAngle-Tau*0.25) > 1e-12 {
		t.Errorf("X = [%v, %v], want [0, π/2]", arcs[0].StartAngle, arcs[0].EndAngle)
	}
	if arcs[1].StartAngle != arcs[0].EndAngle || arcs[1].EndAngle != Tau {
		t.Errorf("Y = [%v, %v], want [π/2, 2π]", arcs[1].StartAngle, arcs[1].EndAngle)
	}
	if arcs[1].Key != "Y" || arcs[1].Index != 1 || arcs[1].InnerRadius != 50 || arcs[1].OuterRadius != 100 {
		t.Errorf("arc fields = %+v", arcs[1])
	}
}

func TestPartitionSumsToFullTurn(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 1e-7, 7, 13.37, 0.333333}
	pts := make([]DataPoint, len(values))
	for i, v := range values {
		pts[i] = DataPoint{Key: string(rune('a' + i)), Value: v}
	}
	arcs, err := Partition(pts, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for i, a := range arcs {
		if a.Span() < 0 {
			t.Errorf("arc %d has negative span %v", i, a.Span())
		}
		if i > 0 && a.StartAngle != arcs[i-1].EndAngle {
			t.Errorf("arc %d does not start where %d ends", i, i-1)
		}
		sum += a.Span()
	}
	if math.Abs(sum-Tau) > 1e-9 {
		t.Errorf("spans sum to %v, want %v", sum, Tau)
	}
	if arcs[len(arcs)-1].EndAngle != Tau {
		t.Errorf("last arc ends at %v, want exactly Tau", arcs[len(arcs)-1].EndAngle)
	}
}

func TestPartitionZeroWidthArcs(t *testing.T) {
	pts := []DataPoint{{"a", 0}, {"b", 5}, {"c", -3}, {"d", math.NaN()}, {"e", 5}, {"f", 0}}
	arcs, err := Partition(pts, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(arcs) != len(pts) {
		t.Fatalf("len = %d, want %d", len(arcs), len(pts))
	}
	for _, i := range []int{0, 2, 3, 5} {
		if arcs[i].Span() != 0 {
			t.Errorf("arc %q span = %v, want 0", arcs[i].Key, arcs[i].Span())
		}
	}
	if math.Abs(arcs[1].Span()-math.Pi) > 1e-12 || math.Abs(arcs[4].Span()-math.Pi) > 1e-12 {
		t.Errorf("spans = %v, %v; want π each", arcs[1].Span(), arcs[4].Span())
	}
	if arcs[5].StartAngle != Tau {
		t.Errorf("trailing zero arc starts at %v, want Tau", arcs[5].StartAngle)
	}
	if arcs[0].Contains(0, -0.5) {
		t.Error("zero-width arc should contain nothing")
	}
}

func TestPartitionZeroTotal(t *testing.T) {
	for _, pts := range [][]DataPoint{nil, {{"a", 0}}, {{"a", -1}, {"b", 0}}} {
		if _, err := Partition(pts, 0, 1); !errors.Is(err, ErrZeroTotal) {
			t.Errorf("Partition(%v) err = %v, want ErrZeroTotal", pts, err)
		}
	}
}

func TestArcContains(t *testing.T) {
	// First quadrant clockwise from 12 o'clock: up and to the right.
	a := Arc{StartAngle: 0, EndAngle: math.Pi / 2, InnerRadius: 10, OuterRadius: 20}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 10, -10, true},
		{"too close", 3, -3, false},
		{"too far", 20, -20, false},
		{"wrong quadrant", -10, -10, false},
		{"below center", 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestArcCentroidAndLabelAnchor(t *testing.T) {
	a := Arc{StartAngle: 0, EndAngle: math.Pi, InnerRadius: 10, OuterRadius: 30}
	c := a.Centroid()
	if math.Abs(c.X-20) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("Centroid = %v, want (20, 0)", c)
	}
	if a.LabelAnchor(0) != c {
		t.Error("LabelAnchor(0) should equal Centroid")
	}
	p := a.LabelAnchor(10)
	if math.Abs(p.X-40) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("LabelAnchor(10) = %v, want (40, 0)", p)
	}
	if a.MidAngle() != math.Pi/2 {
		t.Errorf("MidAngle = %v", a.MidAngle())
	}
}
