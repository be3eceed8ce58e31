package paint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRamp_Empty(t *testing.T) {
	_, err := NewRamp()
	assert.ErrorIs(t, err, ErrEmptyRamp)

	_, err = Ramp(nil).Sample(0.5)
	assert.ErrorIs(t, err, ErrEmptyRamp)
}

func TestRamp_SingleEntry(t *testing.T) {
	c := New(100, 180, 0)
	r, err := NewRamp(c)
	require.NoError(t, err)

	for _, x := range []float64{0, 0.01, 0.33, 0.5, 0.99, 1} {
		got, err := r.Sample(x)
		require.NoError(t, err)
		assert.Equal(t, c, got, "x=%v", x)
	}
}

func TestRamp_NearestLowerIndex(t *testing.T) {
	r, err := ParseRamp("#000000", "#111111", "#222222", "#333333", "#444444")
	require.NoError(t, err)

	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{0.24, 0},
		{0.25, 1},
		{0.49, 1},
		{0.5, 2},
		{0.74, 2},
		{0.99, 3},
		{1, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Index(tt.x), "x=%v", tt.x)
	}
}

func TestRamp_ClampsOutOfRange(t *testing.T) {
	r, err := ParseRamp("#000000", "#ffffff")
	require.NoError(t, err)

	assert.Equal(t, 0, r.Index(-3))
	assert.Equal(t, 1, r.Index(7))
	assert.Equal(t, 0, r.Index(math.NaN()))
	assert.Equal(t, 1, r.Index(math.Inf(1)))
}

func TestParseRamp_BadEntry(t *testing.T) {
	_, err := ParseRamp("#000000", "nope")
	assert.ErrorIs(t, err, ErrInvalidHex)
	assert.Contains(t, err.Error(), "ramp entry 1")

	_, err = ParseRamp()
	assert.ErrorIs(t, err, ErrEmptyRamp)
}

func TestRamp_Uniform(t *testing.T) {
	plain := MustRamp(New(1, 1, 1), New(2, 2, 2))
	assert.True(t, plain.Uniform())
	assert.False(t, plain.HasBackground())

	mixed := MustRamp(New(1, 1, 1), New(2, 2, 2).WithBackground(RGB{}))
	assert.False(t, mixed.Uniform())

	assert.True(t, Ramp(nil).Uniform())
}
