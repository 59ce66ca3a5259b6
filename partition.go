package chartkit

import (
	"fmt"
	"math"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Arc is one slice of an angular partition. Angles are in radians, measured
// clockwise from 12 o'clock, matching screen coordinates with Y down.
type Arc struct {
	Key         string
	Value       float64
	Index       int
	StartAngle  float64
	EndAngle    float64
	InnerRadius float64
	OuterRadius float64
}

// Span returns the arc's angular width.
func (a Arc) Span() float64 {
	return a.EndAngle - a.StartAngle
}

// MidAngle returns the angle halfway through the arc.
func (a Arc) MidAngle() float64 {
	return (a.StartAngle + a.EndAngle) / 2
}

// Centroid returns the label anchor at the arc's mid-angle, halfway between
// the inner and outer radius.
func (a Arc) Centroid() Vec2 {
	return polar((a.InnerRadius+a.OuterRadius)/2, a.MidAngle())
}

// LabelAnchor returns the anchor for an external label placed offset pixels
// outside the outer radius. An offset <= 0 returns the Centroid.
func (a Arc) LabelAnchor(offset float64) Vec2 {
	if offset <= 0 {
		return a.Centroid()
	}
	return polar(a.OuterRadius+offset, a.MidAngle())
}

// Contains reports whether (x, y), relative to the partition's center, lies
// inside the arc. Zero-width arcs contain nothing.
func (a Arc) Contains(x, y float64) bool {
	if a.Span() <= 0 {
		return false
	}
	r := math.Hypot(x, y)
	if r < a.InnerRadius || r > a.OuterRadius {
		return false
	}
	// atan2 with swapped, negated axes gives the clockwise-from-top angle.
	theta := math.Atan2(x, -y)
	if theta < 0 {
		theta += Tau
	}
	return theta >= a.StartAngle && theta <= a.EndAngle
}

// polar converts a clockwise-from-top angle to screen coordinates.
func polar(r, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: r * sin, Y: -r * cos}
}

// Partition lays out points as contiguous arcs around a full circle starting
// at angle 0, in input order. Each arc spans Tau*value/sum. Zero, negative and
// malformed values produce zero-width arcs. The last arc always ends at
// exactly Tau. It returns ErrZeroTotal when no value is positive.
func Partition(points []DataPoint, innerRadius, outerRadius float64) ([]Arc, error) {
	var total float64
	for _, p := range points {
		total += arcValue(p.Value)
	}
	if total <= 0 {
		return nil, fmt.Errorf("partition of %d values: %w", len(points), ErrZeroTotal)
	}

	arcs := make([]Arc, len(points))
	var cum float64
	for i, p := range points {
		v := arcValue(p.Value)
		start := Tau * cum / total
		cum += v
		end := Tau * cum / total
		arcs[i] = Arc{
			Key:         p.Key,
			Value:       p.Value,
			Index:       i,
			StartAngle:  start,
			EndAngle:    end,
			InnerRadius: innerRadius,
			OuterRadius: outerRadius,
		}
	}
	// Pin the ring closed; trailing zero-width arcs sit at Tau.
	for i := len(arcs) - 1; i >= 0; i-- {
		arcs[i].EndAngle = Tau
		if arcs[i].Span() > 0 {
			break
		}
		arcs[i].StartAngle = Tau
	}
	return arcs, nil
}

func arcValue(v float64) float64 {
	v = cleanValue(v)
	if v < 0 {
		return 0
	}
	return v
}
