package chartkit

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// DefaultBuckets is the number of color buckets used when thresholds are
// derived automatically. It yields DefaultBuckets-1 thresholds.
const DefaultBuckets = 5

// DuplicateKey records a column key that occurred more than once in a Series.
type DuplicateKey struct {
	Row    string
	Column string
}

// Summary holds the aggregate statistics of one Dataset. It is computed fresh
// for every render and never mutated afterwards.
type Summary struct {
	RowKeys      []string
	ColumnKeys   []string
	RowTotals    []float64
	ColumnTotals map[string]float64
	GrandTotal   float64

	// MinValue and MaxValue are NaN when the dataset holds no values.
	MinValue float64
	MaxValue float64

	// Thresholds partition [MinValue, MaxValue] into color buckets. Nil when
	// the dataset holds no values.
	Thresholds []float64

	// Duplicates lists (row, column) pairs whose key repeated within a
	// Series. The last occurrence's value was used.
	Duplicates []DuplicateKey
}

type summaryOptions struct {
	buckets int
}

// SummaryOption configures Summarize.
type SummaryOption func(*summaryOptions)

// WithBuckets sets the number of color buckets the auto-derived thresholds
// split the value range into. Values below 1 are ignored.
func WithBuckets(n int) SummaryOption {
	return func(o *summaryOptions) {
		if n >= 1 {
			o.buckets = n
		}
	}
}

// Summarize computes row and column keys, totals, extrema and thresholds for
// ds. It returns ErrEmptyDataset when ds has no series.
func Summarize(ds Dataset, opts ...SummaryOption) (*Summary, error) {
	o := summaryOptions{buckets: DefaultBuckets}
	for _, opt := range opts {
		opt(&o)
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("summarize: %w", ErrEmptyDataset)
	}

	s := &Summary{
		RowKeys:      make([]string, 0, len(ds)),
		RowTotals:    make([]float64, 0, len(ds)),
		ColumnTotals: make(map[string]float64),
		MinValue:     math.NaN(),
		MaxValue:     math.NaN(),
	}

	var values []float64
	for _, series := range ds {
		s.RowKeys = append(s.RowKeys, series.Key)

		pts, dup := series.Points()
		for _, col := range dup {
			s.Duplicates = append(s.Duplicates, DuplicateKey{Row: series.Key, Column: col})
		}

		var rowTotal float64
		for _, p := range pts {
			if _, seen := s.ColumnTotals[p.Key]; !seen {
				s.ColumnKeys = append(s.ColumnKeys, p.Key)
			}
			s.ColumnTotals[p.Key] += p.Value
			rowTotal += p.Value
			values = append(values, p.Value)
		}
		s.RowTotals = append(s.RowTotals, rowTotal)
		s.GrandTotal += rowTotal
	}

	if len(values) > 0 {
		s.MinValue, s.MaxValue = stats.Bounds(values)
		s.Thresholds = Thresholds(s.MinValue, s.MaxValue, o.buckets)
	}
	return s, nil
}

// Extent returns the value extrema, or ErrEmptyDataset when the summarized
// dataset held no values.
func (s *Summary) Extent() (min, max float64, err error) {
	if s == nil || math.IsNaN(s.MinValue) {
		return math.NaN(), math.NaN(), fmt.Errorf("extent: %w", ErrEmptyDataset)
	}
	return s.MinValue, s.MaxValue, nil
}

// ColumnTotal returns the sum of the values under key across all series.
func (s *Summary) ColumnTotal(key string) float64 {
	return s.ColumnTotals[key]
}

// Aggregate returns a single Series holding the column totals in ColumnKeys
// order, keyed by key. Used to draw several series as one ring.
func (s *Summary) Aggregate(key string) Series {
	agg := Series{Key: key, Values: make([]DataPoint, len(s.ColumnKeys))}
	for i, col := range s.ColumnKeys {
		agg.Values[i] = DataPoint{Key: col, Value: s.ColumnTotals[col]}
	}
	return agg
}

// Thresholds returns buckets-1 cut points evenly spaced strictly inside
// [min, max]. When min == max every cut point equals min, so all values fall
// into a single bucket.
func Thresholds(min, max float64, buckets int) []float64 {
	if buckets < 2 {
		return []float64{}
	}
	lin := scale.Linear{Min: min, Max: max}
	out := make([]float64, buckets-1)
	for i := range out {
		out[i] = lin.Unmap(float64(i+1) / float64(buckets))
	}
	return out
}
