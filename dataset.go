package chartkit

import "math"

// DataPoint is one labeled value within a Series. Key identifies the column.
type DataPoint struct {
	Key   string  `json:"key" yaml:"key" toml:"key"`
	Value float64 `json:"value" yaml:"value" toml:"value"`
}

// Series is one row of a Dataset: a named, ordered collection of DataPoints.
type Series struct {
	Key    string      `json:"key" yaml:"key" toml:"key"`
	Values []DataPoint `json:"values" yaml:"values" toml:"values"`
}

// Dataset is an ordered sequence of Series. Row order and each Series' value
// order are preserved by every consumer.
type Dataset []Series

// Value returns the value stored under key. When a key occurs more than once
// the last occurrence wins.
func (s Series) Value(key string) (float64, bool) {
	for i := len(s.Values) - 1; i >= 0; i-- {
		if s.Values[i].Key == key {
			return cleanValue(s.Values[i].Value), true
		}
	}
	return 0, false
}

// Points returns the Series' DataPoints with duplicate keys collapsed: each
// key keeps its first-seen position and takes its last-seen value. Malformed
// values are replaced with 0. The receiver is not modified.
//
// The returned dup slice lists keys that occurred more than once.
func (s Series) Points() (pts []DataPoint, dup []string) {
	pts = make([]DataPoint, 0, len(s.Values))
	var pos map[string]int
	for _, v := range s.Values {
		if pos == nil {
			pos = make(map[string]int, len(s.Values))
		}
		if i, ok := pos[v.Key]; ok {
			if !containsString(dup, v.Key) {
				dup = append(dup, v.Key)
			}
			pts[i].Value = cleanValue(v.Value)
			continue
		}
		pos[v.Key] = len(pts)
		pts = append(pts, DataPoint{Key: v.Key, Value: cleanValue(v.Value)})
	}
	return pts, dup
}

// Keys returns the Series key of every row, in order.
func (d Dataset) Keys() []string {
	keys := make([]string, len(d))
	for i, s := range d {
		keys[i] = s.Key
	}
	return keys
}

// Find returns the Series with the given key.
func (d Dataset) Find(key string) (Series, bool) {
	for _, s := range d {
		if s.Key == key {
			return s, true
		}
	}
	return Series{}, false
}

// cleanValue maps malformed numbers (NaN, ±Inf) to 0 so sparse or partial
// data still renders.
func cleanValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
