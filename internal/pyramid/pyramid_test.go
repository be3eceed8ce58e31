package pyramid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pyrafetch/pyrafetch/internal/bar"
	"github.com/pyrafetch/pyrafetch/internal/overlay"
	"github.com/pyrafetch/pyrafetch/internal/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainStyler struct{}

func (plainStyler) Style(glyph string, _ paint.RGB, _ *paint.RGB, _ bool) string { return glyph }

func line(t *testing.T, label, trailer string) bar.Line {
	t.Helper()
	l, err := bar.NewLine(paint.MustRamp(paint.New(1, 2, 3)), nil, overlay.NewAlwaysLeft(), 0,
		bar.WithLabelText(label), bar.WithTrailer(trailer))
	require.NoError(t, err)
	return l
}

func TestFrame_Render(t *testing.T) {
	f := New(
		line(t, "12", "logical cpu cores"),
		line(t, "ram/", ""),
		line(t, "memory", "free"),
		line(t, "Linux", "host @ 6.1"),
	)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, plainStyler{}))

	want := strings.Join([]string{
		"     ╱╲",
		"    ╱12╲ logical cpu cores",
		"   ╱ram/╲",
		"  ╱memory╲ free",
		" ╱  Linux ╲ host @ 6.1",
		" ⎺⎺⎺⎺⎺⎺⎺⎺⎺⎺",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestFrame_EmptyMetrics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, plainStyler{}))
	assert.Equal(t, " ╱╲\n ⎺⎺\n", buf.String())

	buf.Reset()
	require.NoError(t, Frame{}.Render(&buf, plainStyler{}))
	assert.Empty(t, buf.String())
}

func TestFrame_RowErrorAborts(t *testing.T) {
	broken := bar.Line{Mode: overlay.NewAlwaysRight()}
	f := New(line(t, "ok", ""), broken)

	var buf bytes.Buffer
	err := f.Render(&buf, plainStyler{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, paint.ErrEmptyRamp))
	assert.Contains(t, err.Error(), "row 2")
	assert.NotContains(t, buf.String(), "⎺")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestFrame_WriteError(t *testing.T) {
	err := New().Render(failWriter{}, plainStyler{})
	assert.EqualError(t, err, "closed")
}
