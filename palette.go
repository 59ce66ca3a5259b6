package chartkit

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// categoricalBase are the anchor colors Categorical interpolates between.
var categoricalBase = []color.RGBA{
	{0x3b, 0x4c, 0xc0, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xff, 0xbb, 0x33, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
}

// HeatMapPalette is the default five-bucket heat map palette, from low to high.
var HeatMapPalette = []Color{
	MustParseHexColor("#D34152"),
	MustParseHexColor("#f4bc71"),
	MustParseHexColor("#FBF6C4"),
	MustParseHexColor("#9bcf95"),
	MustParseHexColor("#398abb"),
}

// Categorical returns n distinct colors sampled evenly along a gradient
// through the categorical base colors. n < 1 returns nil.
func Categorical(n int) []Color {
	return Sample(palette.RGBGradient{Colors: categoricalBase}, n)
}

// Sample returns n colors taken at evenly spaced points of a continuous
// palette, including both ends.
func Sample(p palette.Continuous, n int) []Color {
	if n < 1 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		out[0] = ColorFromRGBA(p.Map(0))
		return out
	}
	for i := range out {
		out[i] = ColorFromRGBA(p.Map(float64(i) / float64(n-1)))
	}
	return out
}

// HexPalette parses a list of hex color strings.
func HexPalette(hex []string) ([]Color, error) {
	out := make([]Color, len(hex))
	for i, h := range hex {
		c, err := ParseHexColor(h)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
