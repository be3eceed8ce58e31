// Package paint holds the color primitives every bar is built from: 24-bit
// RGB values, foreground/background Color pairs, linear fades and ramps.
package paint

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrBackgroundMismatch = errors.New("paint: cannot fade two colors if exactly one of them has a background")
	ErrEmptyRamp          = errors.New("paint: color ramp is empty")
	ErrInvalidHex         = errors.New("paint: invalid hex color")
)

// RGB stores explicit 8-bit color channels
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rgb" or "#rrggbb"; the leading hash is optional.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	// Handle short hex (e.g., "FFF")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Color is a foreground with an optional background. The zero background is
// ignored unless HasBg is set.
type Color struct {
	Fg    RGB
	Bg    RGB
	HasBg bool
}

// New returns a foreground-only color
func New(r, g, b uint8) Color {
	return Color{Fg: RGB{R: r, G: g, B: b}}
}

// WithBackground returns a copy of c carrying bg as background
func (c Color) WithBackground(bg RGB) Color {
	c.Bg = bg
	c.HasBg = true
	return c
}

// Background returns the background or nil when the color has none
func (c Color) Background() *RGB {
	if !c.HasBg {
		return nil
	}
	bg := c.Bg
	return &bg
}

// Styler turns a glyph and its colors into terminal output. Implementations
// own the escape-sequence dialect; paint never emits escapes itself.
type Styler interface {
	Style(glyph string, fg RGB, bg *RGB, underline bool) string
}

// Apply styles glyph with c's foreground and, if set, background
func (c Color) Apply(s Styler, glyph string, underline bool) string {
	return s.Style(glyph, c.Fg, c.Background(), underline)
}

// Fade interpolates each channel as c1*(1-f) + c2*f, truncating toward zero.
// f is not clamped, so values outside [0,1] extrapolate; channels saturate at
// the uint8 bounds.
func Fade(c1, c2 Color, f float64) (Color, error) {
	if c1.HasBg != c2.HasBg {
		return Color{}, ErrBackgroundMismatch
	}
	out := Color{Fg: lerpRGB(c1.Fg, c2.Fg, f)}
	if c1.HasBg {
		out.Bg = lerpRGB(c1.Bg, c2.Bg, f)
		out.HasBg = true
	}
	return out, nil
}

func lerpRGB(a, b RGB, f float64) RGB {
	g := 1 - f
	return RGB{
		R: channel(float64(a.R)*g + float64(b.R)*f),
		G: channel(float64(a.G)*g + float64(b.G)*f),
		B: channel(float64(a.B)*g + float64(b.B)*f),
	}
}

// channel truncates v into a byte, saturating at 0 and 255 (NaN is 0)
func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}
