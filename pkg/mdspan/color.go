package mdspan

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	cl := c.Clamped()
	return Color{
		R: uint8(cl.R*255.0 + 0.5),
		G: uint8(cl.G*255.0 + 0.5),
		B: uint8(cl.B*255.0 + 0.5),
	}
}

// ParseHexColor parses a "#RRGGBB" string. The leading '#' is required and
// hex digits may be either case.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// GradientAt returns the color for the rune at the given display offset.
// A single stop is returned as-is; with two or more stops the result is a
// linear RGB blend between the two stops bracketing the offset's fractional
// position within the span. Offsets outside the span clamp to the edges.
func (t *ColorTag) GradientAt(pos int) Color {
	if len(t.Colors) == 0 {
		return Color{}
	}
	if len(t.Colors) == 1 {
		return t.Colors[0]
	}

	span := t.Len() - 1
	if span <= 0 {
		return t.Colors[0]
	}

	offset := pos - t.Start
	if offset <= 0 {
		return t.Colors[0]
	}
	if offset >= span {
		return t.Colors[len(t.Colors)-1]
	}

	// Stop boundaries divide the span into len(Colors)-1 equal segments.
	frac := float64(offset) / float64(span)
	segments := len(t.Colors) - 1
	scaled := frac * float64(segments)
	idx := int(scaled)
	if idx >= segments {
		idx = segments - 1
	}
	local := scaled - float64(idx)

	blended := t.Colors[idx].colorful().BlendRgb(t.Colors[idx+1].colorful(), local)
	return fromColorful(blended)
}
