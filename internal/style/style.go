// Package style defines the closed style descriptor attached to every draw
// call. Keeping the descriptor to an enumerated set (foreground, background,
// bold) keeps the render contract checkable at compile time instead of
// threading ad-hoc attribute maps through the pipeline.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents a color value.
// Supports true color (RGB), terminal palette colors, and the terminal default.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack  = Color{R: 0, G: 0, B: 0}
	ColorWhite  = Color{R: 255, G: 255, B: 255}
	ColorYellow = Color{R: 255, G: 255, B: 0}
	ColorBlue   = Color{R: 0, G: 0, B: 255}
	ColorGray   = Color{R: 128, G: 128, B: 128}
)

// FromRGB creates a true color from RGB components.
func FromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromIndex creates an indexed palette color.
func FromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// FromHex creates a color from a hex string such as "#ffcc00" or "fc0".
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color: %s", hex)
		}
		return uint8(v), nil
	}

	var rs, gs, bs string
	switch len(hex) {
	case 3:
		rs = string(hex[0]) + string(hex[0])
		gs = string(hex[1]) + string(hex[1])
		bs = string(hex[2]) + string(hex[2])
	case 6:
		rs, gs, bs = hex[0:2], hex[2:4], hex[4:6]
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := parse(rs)
	if err != nil {
		return Color{}, err
	}
	g, err := parse(gs)
	if err != nil {
		return Color{}, err
	}
	b, err := parse(bs)
	if err != nil {
		return Color{}, err
	}
	return Color{R: r, G: g, B: b}, nil
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style represents the visual style of drawn text.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
}

// Default returns the default terminal style.
func Default() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// New creates a style with the given foreground color.
func New(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
	}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithBold returns a new style with bold set.
func (s Style) WithBold(bold bool) Style {
	s.Bold = bold
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Bold == other.Bold
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() && s.Background.IsDefault() && !s.Bold
}
