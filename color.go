package novice

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is an opaque RGB triple with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// RGBA implements image/color.Color so a Color can be used anywhere the
// standard library expects one.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Named colors accepted by ParseColor. Names are matched
// case-insensitively.
var colorNames = map[string]Color{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"silver":  {192, 192, 192},
	"maroon":  {128, 0, 0},
	"olive":   {128, 128, 0},
	"lime":    {0, 255, 0},
	"teal":    {0, 128, 128},
	"navy":    {0, 0, 128},
	"purple":  {128, 0, 128},
	"orange":  {255, 165, 0},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},
}

// ParseColor converts a color name ("red"), a #RGB short hex string or a
// #RRGGBB hex string into a Color.
func ParseColor(s string) (Color, error) {
	if name, ok := colorNames[strings.ToLower(s)]; ok {
		return name, nil
	}

	var c Color
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil || n < 3 {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
		if err != nil || n < 3 {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
	default:
		return Color{}, fmt.Errorf("%w: expected color name, #RGB or #RRGGBB, got %q", ErrBadColor, s)
	}
	return c, nil
}

// validChannel rejects values outside the 0-255 channel domain.
func validChannel(v int) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("%w: expected an integer between 0 and 255, got %d", ErrChannelRange, v)
	}
	return nil
}
