package bar

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pyrafetch/pyrafetch/internal/overlay"
	"github.com/pyrafetch/pyrafetch/internal/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagStyler renders each glyph as <hex[/bg][_]glyph> so tests can read the
// colors back out of the output
type tagStyler struct{}

func (tagStyler) Style(glyph string, fg paint.RGB, bg *paint.RGB, underline bool) string {
	var b strings.Builder
	b.WriteString("<" + fg.Hex())
	if bg != nil {
		b.WriteString("/" + bg.Hex())
	}
	if underline {
		b.WriteString("_")
	}
	fmt.Fprintf(&b, "%s>", glyph)
	return b.String()
}

// plainStyler drops all styling
type plainStyler struct{}

func (plainStyler) Style(glyph string, _ paint.RGB, _ *paint.RGB, _ bool) string { return glyph }

func TestLabelOffset(t *testing.T) {
	tests := []struct {
		labelLen, width, want int
	}{
		{2, 6, 2},
		{2, 2, 0},
		{3, 6, 2},
		{1, 2, 1},
		{5, 8, 2},
		{6, 6, 0},
		{9, 4, 0},
		{0, 4, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelOffset(tt.labelLen, tt.width), "label=%d width=%d", tt.labelLen, tt.width)
	}
}

func TestGlyph_Centered(t *testing.T) {
	l := Line{Label: []string{"a", "b"}}
	var got []string
	for p := 0; p < 6; p++ {
		got = append(got, l.Glyph(p, 6))
	}
	assert.Equal(t, []string{" ", " ", "a", "b", " ", " "}, got)
}

func TestGlyph_Overflow(t *testing.T) {
	l, err := NewLine(paint.MustRamp(paint.New(1, 2, 3)), nil, overlay.NewAlwaysLeft(), 0.5, WithLabelText("memory"))
	require.NoError(t, err)

	out, err := l.Render(4, plainStyler{})
	require.NoError(t, err)
	assert.Equal(t, "memo", out)
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.0, Fraction(0, 1))
	assert.Equal(t, 0.0, Fraction(0, 3))
	assert.Equal(t, 0.5, Fraction(1, 3))
	assert.Equal(t, 1.0, Fraction(2, 3))
	assert.Equal(t, 0.25, Fraction(1, 5))
}

func TestRender_AlwaysLeftSolid(t *testing.T) {
	l, err := NewLine(paint.MustRamp(paint.New(100, 180, 0)), nil, overlay.NewAlwaysLeft(), 0)
	require.NoError(t, err)

	for _, w := range []int{1, 2, 7, 40} {
		colors, err := l.Colors(w)
		require.NoError(t, err)
		require.Len(t, colors, w)
		for _, c := range colors {
			assert.Equal(t, paint.New(100, 180, 0), c)
		}
	}
}

func TestRender_FadeWidthThree(t *testing.T) {
	l, err := NewLine(paint.MustRamp(paint.New(150, 0, 100)), paint.MustRamp(paint.New(0, 100, 150)), overlay.NewFade(), 0.3)
	require.NoError(t, err)

	out, err := l.Render(3, tagStyler{})
	require.NoError(t, err)
	assert.Equal(t, "<#960064 ><#4b327d ><#006496 >", out)
}

func TestRender_StretchWidthFive(t *testing.T) {
	a, b := paint.New(255, 0, 0), paint.New(0, 0, 255)
	l, err := NewLine(paint.MustRamp(a), paint.MustRamp(b), overlay.NewStretch(), 0.5)
	require.NoError(t, err)

	colors, err := l.Colors(5)
	require.NoError(t, err)
	assert.Equal(t, []paint.Color{a, a, a, b, b}, colors)
}

func TestRender_LabelUnderlineBackground(t *testing.T) {
	c := paint.New(1, 2, 3).WithBackground(paint.RGB{R: 9})
	l, err := NewLine(paint.MustRamp(c), nil, overlay.NewAlwaysLeft(), 0,
		WithLabelText("ab"), WithUnderline(), WithTrailer("tail"))
	require.NoError(t, err)

	out, err := l.Render(4, tagStyler{})
	require.NoError(t, err)
	assert.Equal(t, "<#010203/#090000_ ><#010203/#090000_a><#010203/#090000_b><#010203/#090000_ >", out)
	assert.Equal(t, "tail", l.Trailer)
}

func TestRender_WidthEdges(t *testing.T) {
	l := Empty()

	out, err := l.Render(0, plainStyler{})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = l.Render(1, tagStyler{})
	require.NoError(t, err)
	assert.Equal(t, "<#006496 >", out)

	_, err = l.Render(-1, plainStyler{})
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestNewLine_Validation(t *testing.T) {
	plain := paint.MustRamp(paint.New(1, 1, 1))
	withBg := paint.MustRamp(paint.New(1, 1, 1).WithBackground(paint.RGB{}))

	_, err := NewLine(nil, plain, overlay.NewAlwaysLeft(), 0)
	assert.ErrorIs(t, err, paint.ErrEmptyRamp)

	_, err = NewLine(plain, nil, overlay.NewChooseFromPos(), 0)
	assert.ErrorIs(t, err, paint.ErrEmptyRamp)

	_, err = NewLine(nil, plain, overlay.NewAlwaysRight(), 0)
	assert.NoError(t, err)

	_, err = NewLine(plain, withBg, overlay.NewFade(), 0)
	assert.ErrorIs(t, err, paint.ErrBackgroundMismatch)

	_, err = NewLine(plain, withBg, overlay.NewChooseFromPosFade(0.1), 0)
	assert.ErrorIs(t, err, paint.ErrBackgroundMismatch)

	// a hard split never fades, so mixed backgrounds are fine
	_, err = NewLine(plain, withBg, overlay.NewChooseFromPos(), 0)
	assert.NoError(t, err)

	_, err = NewLine(withBg, withBg, overlay.NewFade(), 0)
	assert.NoError(t, err)

	_, err = NewLine(plain, plain, overlay.NewChooseFromPosFade(-1), 0)
	assert.ErrorIs(t, err, overlay.ErrInvalidFadeWidth)
}

func TestNewLine_ProgressNotClamped(t *testing.T) {
	plain := paint.MustRamp(paint.New(1, 1, 1))
	l, err := NewLine(plain, plain, overlay.NewChooseFromPos(), 1.7)
	require.NoError(t, err)
	assert.Equal(t, 1.7, l.Progress)
}

func TestRender_BypassedConstructorFails(t *testing.T) {
	l := Line{Mode: overlay.NewFade(), Right: paint.MustRamp(paint.New(1, 1, 1))}
	_, err := l.Render(3, plainStyler{})
	assert.ErrorIs(t, err, paint.ErrEmptyRamp)
	assert.Contains(t, err.Error(), "position 0")
}

func TestGlyphs(t *testing.T) {
	assert.Equal(t, []string{"r", "a", "m", "/"}, Glyphs("ram/"))
	assert.Equal(t, []string{"e\u0301", "x"}, Glyphs("e\u0301x"))
	assert.Nil(t, Glyphs(""))
}
