package ui

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color. It is the same type raylib-go uses, so values pass straight to draw calls.
type Color = color.RGBA

// Named colors. None is fully transparent and is the default node background.
var (
	None  = Color{}
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{A: 255}
	Red   = Color{R: 255, A: 255}
	Green = Color{G: 255, A: 255}
	Blue  = Color{B: 255, A: 255}
	Gray  = Color{R: 128, G: 128, B: 128, A: 255}
)

var namedColors = map[string]Color{
	"none":        None,
	"transparent": None,
	"white":       White,
	"black":       Black,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"gray":        Gray,
	"grey":        Gray,
}

// RGB builds an opaque color from channels in 0..1. Out-of-range channels are clamped.
func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1)
}

// RGBA builds a color from channels in 0..1. Out-of-range channels are clamped.
func RGBA(r, g, b, a float32) Color {
	c := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.Clamped()
	cr, cg, cb := c.RGB255()
	return Color{R: cr, G: cg, B: cb, A: unitToByte(a)}
}

// HSL builds an opaque color from hue in degrees and saturation/lightness in 0..1.
func HSL(h, s, l float32) Color {
	c := colorful.Hsl(float64(h), float64(s), float64(l)).Clamped()
	cr, cg, cb := c.RGB255()
	return Color{R: cr, G: cg, B: cb, A: 255}
}

// Hex parses #RGB or #RRGGBB into an opaque color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return Black, fmt.Errorf("ui: color %q: %w", s, err)
	}
	cr, cg, cb := c.RGB255()
	return Color{R: cr, G: cg, B: cb, A: 255}, nil
}

// ParseColor accepts a hex color or one of the named colors (white, red, none, ...).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return Hex(s)
}

// WithAlpha returns c with its alpha set from a in 0..1.
func WithAlpha(c Color, a float32) Color {
	c.A = unitToByte(a)
	return c
}

func unitToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
