package paint

import (
	"fmt"
	"math"
)

// Ramp is an ordered list of colors sampled by fractional position. Lookup
// picks the nearest lower entry; there is no interpolation between entries.
type Ramp []Color

// NewRamp copies colors into a ramp, rejecting an empty list
func NewRamp(colors ...Color) (Ramp, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyRamp
	}
	r := make(Ramp, len(colors))
	copy(r, colors)
	return r, nil
}

// MustRamp is NewRamp for package-level palettes known to be non-empty
func MustRamp(colors ...Color) Ramp {
	r, err := NewRamp(colors...)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRamp builds a foreground-only ramp from hex strings
func ParseRamp(hexes ...string) (Ramp, error) {
	colors := make([]Color, 0, len(hexes))
	for i, h := range hexes {
		rgb, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("ramp entry %d: %w", i, err)
		}
		colors = append(colors, Color{Fg: rgb})
	}
	return NewRamp(colors...)
}

// Index returns floor(x*(n-1)) with x clamped to [0,1]
func (r Ramp) Index(x float64) int {
	n := len(r)
	if n <= 1 {
		return 0
	}
	if math.IsNaN(x) || x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	i := int(math.Floor(x * float64(n-1)))
	if i >= n {
		i = n - 1
	}
	return i
}

// Sample returns the color at fraction x
func (r Ramp) Sample(x float64) (Color, error) {
	if len(r) == 0 {
		return Color{}, ErrEmptyRamp
	}
	return r[r.Index(x)], nil
}

// Uniform reports whether every entry agrees on background presence
func (r Ramp) Uniform() bool {
	for _, c := range r[min(1, len(r)):] {
		if c.HasBg != r[0].HasBg {
			return false
		}
	}
	return true
}

// HasBackground reports whether the ramp's entries carry a background.
// Only meaningful for a uniform, non-empty ramp.
func (r Ramp) HasBackground() bool {
	return len(r) > 0 && r[0].HasBg
}
