// Package bar renders one row of the pyramid: a run of individually colored
// glyphs, optionally carrying a centered short label.
package bar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pyrafetch/pyrafetch/internal/overlay"
	"github.com/pyrafetch/pyrafetch/internal/paint"
	"github.com/rivo/uniseg"
)

var ErrInvalidWidth = errors.New("bar: width must be >= 0")

const blank = " "

// Line is one displayed metric. It is built once and not mutated while the
// frame renders.
type Line struct {
	Left      paint.Ramp
	Right     paint.Ramp
	Mode      overlay.Mode
	Progress  float64 // not clamped; meaning depends on Mode
	Label     []string
	Underline bool
	Trailer   string // printed after the bar as-is
}

// Option configures a Line
type Option func(*Line)

// WithLabel sets the short label, one glyph per element
func WithLabel(glyphs []string) Option {
	return func(l *Line) {
		l.Label = append([]string(nil), glyphs...)
	}
}

// WithLabelText sets the short label from a string split into grapheme clusters
func WithLabelText(s string) Option {
	return WithLabel(Glyphs(s))
}

// WithUnderline underlines every glyph of the bar
func WithUnderline() Option {
	return func(l *Line) {
		l.Underline = true
	}
}

// WithTrailer sets the text printed after the bar's right border
func WithTrailer(s string) Option {
	return func(l *Line) {
		l.Trailer = s
	}
}

// NewLine validates the ramps against the mode up front so rendering can
// only fail on inputs that bypass the constructor.
func NewLine(left, right paint.Ramp, mode overlay.Mode, progress float64, opts ...Option) (Line, error) {
	if err := mode.Validate(); err != nil {
		return Line{}, err
	}
	if mode.UsesLeft() && len(left) == 0 {
		return Line{}, fmt.Errorf("left ramp: %w", paint.ErrEmptyRamp)
	}
	if mode.UsesRight() && len(right) == 0 {
		return Line{}, fmt.Errorf("right ramp: %w", paint.ErrEmptyRamp)
	}
	if mode.Fades() {
		if !left.Uniform() || !right.Uniform() || left.HasBackground() != right.HasBackground() {
			return Line{}, fmt.Errorf("%s mode: %w", mode, paint.ErrBackgroundMismatch)
		}
	}

	l := Line{
		Left:     left,
		Right:    right,
		Mode:     mode,
		Progress: progress,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l, nil
}

// Empty returns the unlabeled filler line that caps the pyramid
func Empty() Line {
	return Line{
		Left:     paint.MustRamp(paint.New(0, 100, 150)),
		Mode:     overlay.NewAlwaysLeft(),
		Progress: 0.5,
	}
}

// Glyphs splits s into user-perceived characters
func Glyphs(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// LabelOffset returns the number of blanks before a label of labelLen glyphs
// in a bar of the given width. Odd remainders put the extra blank on the left.
func LabelOffset(labelLen, width int) int {
	if labelLen >= width {
		return 0
	}
	return (1 + width - labelLen) / 2
}

// Fraction maps a glyph position onto [0,1]. A one-glyph bar sits at 0.
func Fraction(pos, width int) float64 {
	if width <= 1 {
		return 0
	}
	return float64(pos) / float64(width-1)
}

// Glyph returns the character drawn at pos: a label glyph inside the
// centered window, otherwise a blank.
func (l Line) Glyph(pos, width int) string {
	i := pos - LabelOffset(len(l.Label), width)
	if i < 0 || i >= len(l.Label) {
		return blank
	}
	return l.Label[i]
}

// ColorAt returns the color of the glyph at fraction x
func (l Line) ColorAt(x float64) (paint.Color, error) {
	return overlay.Select(l.Left, l.Right, l.Mode, l.Progress, x)
}

// Colors returns the color of every glyph position, left to right
func (l Line) Colors(width int) ([]paint.Color, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	out := make([]paint.Color, width)
	for p := range out {
		c, err := l.ColorAt(Fraction(p, width))
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", p, err)
		}
		out[p] = c
	}
	return out, nil
}

// Render draws the bar's glyphs, without borders or trailer
func (l Line) Render(width int, s paint.Styler) (string, error) {
	colors, err := l.Colors(width)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for p, c := range colors {
		b.WriteString(c.Apply(s, l.Glyph(p, width), l.Underline))
	}
	return b.String(), nil
}
