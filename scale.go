package chartkit

import (
	"fmt"
	"math"
	"sort"
)

// ColorScale assigns a fill color to a drawn datum. Ordinal scales read the
// key, threshold scales read the value. A caller-supplied ColorScale is
// treated as opaque: charts never inspect or rebuild it.
type ColorScale interface {
	Color(key string, value float64) Color
}

// ColorScaleFunc adapts an ordinary function to a ColorScale.
type ColorScaleFunc func(key string, value float64) Color

// Color calls f(key, value).
func (f ColorScaleFunc) Color(key string, value float64) Color {
	return f(key, value)
}

// --- Ordinal ---

// OrdinalScale maps categorical keys to palette colors by domain position,
// cycling the palette when the domain is longer. Keys outside the domain are
// appended on first use, so a retained scale keeps existing assignments stable
// when it is re-used across renders with changing data.
type OrdinalScale struct {
	domain  []string
	index   map[string]int
	palette []Color
}

// NewOrdinalScale builds an ordinal scale over domain. Duplicate keys in
// domain keep their first position.
func NewOrdinalScale(domain []string, palette []Color) (*OrdinalScale, error) {
	if len(domain) == 0 {
		return nil, fmt.Errorf("ordinal scale: %w", ErrEmptyDomain)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("ordinal scale: %w", ErrEmptyPalette)
	}
	s := &OrdinalScale{
		index:   make(map[string]int, len(domain)),
		palette: append([]Color(nil), palette...),
	}
	for _, k := range domain {
		s.add(k)
	}
	return s, nil
}

func (s *OrdinalScale) add(key string) int {
	if i, ok := s.index[key]; ok {
		return i
	}
	i := len(s.domain)
	s.domain = append(s.domain, key)
	s.index[key] = i
	return i
}

// Map returns the color for key.
func (s *OrdinalScale) Map(key string) Color {
	return s.palette[s.add(key)%len(s.palette)]
}

// Color implements ColorScale using only the key.
func (s *OrdinalScale) Color(key string, _ float64) Color {
	return s.Map(key)
}

// Domain returns the keys known to the scale in assignment order.
func (s *OrdinalScale) Domain() []string {
	return append([]string(nil), s.domain...)
}

// --- Threshold ---

// ThresholdScale maps a continuous value to one of len(thresholds)+1 colors.
// A value equal to a threshold falls into the upper bucket.
type ThresholdScale struct {
	thresholds []float64
	palette    []Color
}

// NewThresholdScale builds a threshold scale. thresholds must be
// non-decreasing. If the palette has fewer than len(thresholds)+1 colors the
// upper buckets share the last color.
func NewThresholdScale(thresholds []float64, palette []Color) (*ThresholdScale, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("threshold scale: %w", ErrEmptyDomain)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("threshold scale: %w", ErrEmptyPalette)
	}
	if !sort.Float64sAreSorted(thresholds) {
		return nil, fmt.Errorf("threshold scale %v: %w", thresholds, ErrUnsortedThresholds)
	}
	return &ThresholdScale{
		thresholds: append([]float64(nil), thresholds...),
		palette:    append([]Color(nil), palette...),
	}, nil
}

// Bucket returns the bucket index of v in [0, len(thresholds)].
func (s *ThresholdScale) Bucket(v float64) int {
	return sort.Search(len(s.thresholds), func(i int) bool {
		return s.thresholds[i] > v
	})
}

// Map returns the color of v's bucket.
func (s *ThresholdScale) Map(v float64) Color {
	b := s.Bucket(v)
	if b >= len(s.palette) {
		b = len(s.palette) - 1
	}
	return s.palette[b]
}

// Color implements ColorScale using only the value.
func (s *ThresholdScale) Color(_ string, value float64) Color {
	return s.Map(value)
}

// Thresholds returns a copy of the scale's cut points.
func (s *ThresholdScale) Thresholds() []float64 {
	return append([]float64(nil), s.thresholds...)
}

// --- Band ---

// BandScale maps categorical keys to evenly spaced, equally wide bands over a
// numeric range. Band order follows the domain order.
type BandScale struct {
	domain    []string
	index     map[string]int
	lo, hi    float64
	padding   float64
	start     float64
	step      float64
	bandwidth float64
}

// NewBandScale builds a band scale over [lo, hi]. padding in [0, 1) is the
// fraction of each step left empty between bands and at both ends.
func NewBandScale(domain []string, lo, hi, padding float64) (*BandScale, error) {
	if len(domain) == 0 {
		return nil, fmt.Errorf("band scale: %w", ErrEmptyDomain)
	}
	padding = math.Max(0, math.Min(padding, 0.999))
	s := &BandScale{
		index:   make(map[string]int, len(domain)),
		lo:      lo,
		hi:      hi,
		padding: padding,
	}
	for _, k := range domain {
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = len(s.domain)
		s.domain = append(s.domain, k)
	}
	s.rescale()
	return s, nil
}

// rescale lays the bands out with padding on both sides and the slack
// split evenly between the ends.
func (s *BandScale) rescale() {
	n := float64(len(s.domain))
	reverse := s.hi < s.lo
	start, stop := s.lo, s.hi
	if reverse {
		start, stop = stop, start
	}
	s.step = (stop - start) / math.Max(1, n-s.padding+2*s.padding)
	start += (stop - start - s.step*(n-s.padding)) * 0.5
	s.bandwidth = s.step * (1 - s.padding)
	s.start = start
	if reverse {
		// Keep domain order running from lo toward hi.
		s.start = start + s.step*(n-1)
		s.step = -s.step
	}
}

// Map returns the start of key's band.
func (s *BandScale) Map(key string) (float64, bool) {
	i, ok := s.index[key]
	if !ok {
		return 0, false
	}
	return s.start + s.step*float64(i), true
}

// Bandwidth returns the width of every band.
func (s *BandScale) Bandwidth() float64 { return s.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (s *BandScale) Step() float64 { return math.Abs(s.step) }

// Domain returns the band keys in order.
func (s *BandScale) Domain() []string {
	return append([]string(nil), s.domain...)
}

// Range returns the range the bands were laid out over.
func (s *BandScale) Range() (lo, hi float64) {
	return s.lo, s.hi
}
