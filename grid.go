package chartkit

import "fmt"

// Cell is one drawable heat map cell. X is relative to the content area; Y is
// the row's offset, so cells inside a row group sit at (X, 0).
type Cell struct {
	Row    string
	Column string
	Index  int // position within the Series' collapsed values
	Value  float64
	X, Y   float64
	Width  float64
	Height float64
	Color  Color
}

// GridRow is the layout of one Series in a banded grid.
type GridRow struct {
	Key    string
	Index  int
	Y      float64
	Height float64
	Cells  []Cell
}

// Grid lays out ds as a banded grid: each DataPoint becomes a cell at
// (x(column), y(row)) sized by the two bandwidths and filled by color(value).
// Columns a Series has no DataPoint for produce no cell, so missing data is
// never drawn as zero. Series or columns missing from a band scale's domain
// are skipped.
func Grid(ds Dataset, x, y *BandScale, color ColorScale) ([]GridRow, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("grid: %w", ErrEmptyDomain)
	}
	rows := make([]GridRow, 0, len(ds))
	for i, series := range ds {
		ry, ok := y.Map(series.Key)
		if !ok {
			continue
		}
		row := GridRow{
			Key:    series.Key,
			Index:  i,
			Y:      ry,
			Height: y.Bandwidth(),
		}
		pts, _ := series.Points()
		for j, p := range pts {
			cx, ok := x.Map(p.Key)
			if !ok {
				continue
			}
			c := Cell{
				Row:    series.Key,
				Column: p.Key,
				Index:  j,
				Value:  p.Value,
				X:      cx,
				Y:      ry,
				Width:  x.Bandwidth(),
				Height: y.Bandwidth(),
			}
			if color != nil {
				c.Color = color.Color(p.Key, p.Value)
			}
			row.Cells = append(row.Cells, c)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
