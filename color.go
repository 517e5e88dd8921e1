package sketch

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// A zero alpha means "none" when used as a fill or stroke.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default drawing color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorNone paints nothing.
var ColorNone = Color{}

// IsNone reports whether the color is fully transparent.
func (c Color) IsNone() bool {
	return c.A <= 0
}

// toRGBA converts to a premultiplied color.RGBA for image and ebiten APIs.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Hex returns the color as "#rrggbb", or "none" for a transparent color.
// Alpha is not encoded.
func (c Color) Hex() string {
	if c.IsNone() {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(clamp01(c.R)*255)),
		uint8(math.Round(clamp01(c.G)*255)),
		uint8(math.Round(clamp01(c.B)*255)))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// PaletteColor is a named entry of the color picker.
type PaletteColor struct {
	Name  string
	Color Color
}

// Palette lists the colors offered by the picker, in display order.
var Palette = []PaletteColor{
	{"black", Color{0, 0, 0, 1}},
	{"red", Color{1, 0, 0, 1}},
	{"green", Color{0, 128.0 / 255, 0, 1}},
	{"blue", Color{0, 0, 1, 1}},
	{"yellow", Color{1, 1, 0, 1}},
	{"orange", Color{1, 165.0 / 255, 0, 1}},
	{"purple", Color{128.0 / 255, 0, 128.0 / 255, 1}},
	{"gray", Color{128.0 / 255, 128.0 / 255, 128.0 / 255, 1}},
	{"white", Color{1, 1, 1, 1}},
}

// ParseColor parses a palette name, "none", "#rgb" or "#rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || s == "transparent" {
		return ColorNone, nil
	}
	for _, p := range Palette {
		if p.Name == s {
			return p.Color, nil
		}
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("parse color %q: unknown name", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("parse color %q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}
