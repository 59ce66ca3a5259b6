package chartkit

import (
	"image/color"
	"math"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint below", Rect{10, 111, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.expect)
			}
		})
	}
}

// --- Color ---

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", Color{1, 1, 1, 1}},
		{"#000", Color{0, 0, 0, 1}},
		{"ff000080", Color{1, 0, 0, 128.0 / 255}},
		{" #00ff00 ", Color{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !colorNear(got, tt.want) {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", in)
		}
	}
}

func TestMustParseHexColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseHexColor("nope")
}

func TestColorHex(t *testing.T) {
	if got := MustParseHexColor("#D34152").Hex(); got != "#d34152" {
		t.Errorf("Hex = %q, want #d34152", got)
	}
}

func TestColorFromRGBA(t *testing.T) {
	c := ColorFromRGBA(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if math.Abs(c.R-1) > 0.01 || c.G != 0 || math.Abs(c.A-128.0/255) > 0.01 {
		t.Errorf("ColorFromRGBA = %v", c)
	}
	if got := ColorFromRGBA(color.RGBA{}); got != (Color{}) {
		t.Errorf("transparent = %v, want zero", got)
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	r, _, _, a := Color{1, 0, 0, 0.5}.RGBA()
	if r != a {
		t.Errorf("premultiplied red = %d, want alpha %d", r, a)
	}
}

func TestEventNameValid(t *testing.T) {
	for _, n := range EventNames {
		if !n.valid() {
			t.Errorf("%q should be valid", n)
		}
	}
	if EventName("click").valid() {
		t.Error(`"click" should not be a chart event`)
	}
}

func colorNear(a, b Color) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
