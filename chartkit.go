package chartkit

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromRGBA converts any color.Color into a Color.
func ColorFromRGBA(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// color.Color is premultiplied; undo it.
	fa := float64(a)
	return Color{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff,
	}
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustParseHexColor is like ParseHexColor but panics on malformed input.
// Intended for package-level palette literals.
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic("chartkit: " + err.Error())
	}
	return c
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// RGBA implements color.Color (premultiplied, 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	p := c.toRGBA()
	r = uint32(p.R) * 0x101
	g = uint32(p.G) * 0x101
	b = uint32(p.B) * 0x101
	a = uint32(p.A) * 0x101
	return
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Margin is the space reserved around a chart's content area.
type Margin struct {
	Top    float64 `yaml:"top" toml:"top" json:"top"`
	Right  float64 `yaml:"right" toml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" toml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left" toml:"left" json:"left"`
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeShape                     // renders its Shape as a filled mesh
	NodeTypeText                      // renders its Label
)

// EventType identifies a kind of pointer interaction on the scene.
type EventType uint8

const (
	EventPointerDown  EventType = iota // fires when the pointer button is pressed
	EventPointerUp                     // fires when the pointer button is released
	EventPointerMove                   // fires when the pointer moves without a button
	EventClick                         // fires on press then release over the same node
	EventPointerEnter                  // fires when the pointer enters a node or a descendant
	EventPointerLeave                  // fires when the pointer leaves a node and its descendants
)

// EventName names a chart-level interaction event.
type EventName string

// Chart interaction events. Value events fire on individual arcs or cells;
// series events fire on the group holding one Series.
const (
	EventValueMouseOver  EventName = "valueMouseOver"
	EventValueMouseOut   EventName = "valueMouseOut"
	EventValueClick      EventName = "valueClick"
	EventSeriesMouseOver EventName = "seriesMouseOver"
	EventSeriesMouseOut  EventName = "seriesMouseOut"
	EventSeriesClick     EventName = "seriesClick"
)

// EventNames lists every chart event in declaration order.
var EventNames = []EventName{
	EventValueMouseOver,
	EventValueMouseOut,
	EventValueClick,
	EventSeriesMouseOver,
	EventSeriesMouseOut,
	EventSeriesClick,
}

func (e EventName) valid() bool {
	for _, n := range EventNames {
		if n == e {
			return true
		}
	}
	return false
}
