package chartkit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func gridScales(t *testing.T, ds Dataset, w, h float64) (*Summary, *BandScale, *BandScale) {
	t.Helper()
	sum, err := Summarize(ds)
	if err != nil {
		t.Fatal(err)
	}
	x, err := NewBandScale(sum.ColumnKeys, 0, w, 0)
	if err != nil {
		t.Fatal(err)
	}
	y, err := NewBandScale(sum.RowKeys, 0, h, 0)
	if err != nil {
		t.Fatal(err)
	}
	return sum, x, y
}

func TestGridSkipsAbsentCells(t *testing.T) {
	ds := Dataset{
		{Key: "A", Values: []DataPoint{{"X", 5}}},
		{Key: "B", Values: []DataPoint{{"Y", 5}}},
	}
	_, x, y := gridScales(t, ds, 200, 100)
	rows, err := Grid(ds, x, y, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []GridRow{
		{Key: "A", Index: 0, Y: 0, Height: 50, Cells: []Cell{
			{Row: "A", Column: "X", Index: 0, Value: 5, X: 0, Y: 0, Width: 100, Height: 50},
		}},
		{Key: "B", Index: 1, Y: 50, Height: 50, Cells: []Cell{
			{Row: "B", Column: "Y", Index: 0, Value: 5, X: 100, Y: 50, Width: 100, Height: 50},
		}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGridColorsByValue(t *testing.T) {
	ds := Dataset{{Key: "A", Values: []DataPoint{{"X", 1}, {"Y", 9}}}}
	_, x, y := gridScales(t, ds, 100, 100)
	ts, err := NewThresholdScale([]float64{5}, []Color{red, blue})
	if err != nil {
		t.Fatal(err)
	}
	rows, err := Grid(ds, x, y, ts)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Cells[0].Color != red || rows[0].Cells[1].Color != blue {
		t.Errorf("colors = %v, %v", rows[0].Cells[0].Color, rows[0].Cells[1].Color)
	}
}

func TestGridDuplicateColumnKeepsLastValue(t *testing.T) {
	ds := Dataset{{Key: "A", Values: []DataPoint{{"X", 1}, {"X", 4}}}}
	_, x, y := gridScales(t, ds, 100, 100)
	rows, err := Grid(ds, x, y, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows[0].Cells) != 1 || rows[0].Cells[0].Value != 4 {
		t.Errorf("cells = %+v, want one cell with value 4", rows[0].Cells)
	}
}

func TestGridSkipsKeysOutsideDomain(t *testing.T) {
	ds := Dataset{{Key: "A", Values: []DataPoint{{"X", 1}}}, {Key: "B"}}
	x, _ := NewBandScale([]string{"Q"}, 0, 10, 0)
	y, _ := NewBandScale([]string{"A"}, 0, 10, 0)
	rows, err := Grid(ds, x, y, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || len(rows[0].Cells) != 0 {
		t.Errorf("rows = %+v, want row A with no cells", rows)
	}
}

func TestGridNilScale(t *testing.T) {
	if _, err := Grid(Dataset{{Key: "A"}}, nil, nil, nil); !errors.Is(err, ErrEmptyDomain) {
		t.Errorf("err = %v, want ErrEmptyDomain", err)
	}
}
