package colorspace

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHSLPrimaries(t *testing.T) {
	cases := []struct {
		in   RGB
		want HSL
	}{
		{RGB{1, 0, 0}, HSL{0, 100, 50}},
		{RGB{0, 1, 0}, HSL{120, 100, 50}},
		{RGB{0, 0, 1}, HSL{240, 100, 50}},
		{RGB{1, 1, 0}, HSL{60, 100, 50}},
		{RGB{1, 0, 1}, HSL{300, 100, 50}},
		{RGB{1, 1, 1}, HSL{0, 0, 100}},
		{RGB{0, 0, 0}, HSL{0, 0, 0}},
	}
	for _, tc := range cases {
		got := ToHSL(tc.in)
		assert.InDelta(t, tc.want.H, got.H, 1e-9, "hue for %+v", tc.in)
		assert.InDelta(t, tc.want.S, got.S, 1e-9, "saturation for %+v", tc.in)
		assert.InDelta(t, tc.want.L, got.L, 1e-9, "lightness for %+v", tc.in)
	}
}

func TestToHSLGrayscaleHasNoSaturation(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.5, 0.73, 1} {
		got := ToHSL(RGB{v, v, v})
		assert.Zero(t, got.S)
		assert.InDelta(t, v*100, got.L, 1e-9)
	}
}

func TestToHSLRanges(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		got := ToHSL(RGB{r.Float64(), r.Float64(), r.Float64()})
		assert.GreaterOrEqual(t, got.H, 0.0)
		assert.Less(t, got.H, 360.0)
		assert.GreaterOrEqual(t, got.S, 0.0)
		assert.LessOrEqual(t, got.S, 100.0)
		assert.GreaterOrEqual(t, got.L, 0.0)
		assert.LessOrEqual(t, got.L, 100.0)
	}
}

func TestToHSLNearRedWrap(t *testing.T) {
	got := ToHSL(RGB{1, 0.5, 0.5 + 1e-16})
	assert.Less(t, got.H, 360.0)
}

func TestToHSLClampsInput(t *testing.T) {
	assert.Equal(t, ToHSL(RGB{1, 0, 0}), ToHSL(RGB{2, -1, 0}))
}

func TestFromColorAndLabel(t *testing.T) {
	rgb := FromColor(color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	assert.InDelta(t, 1.0, rgb.R, 1e-9)
	assert.InDelta(t, 128.0/255, rgb.G, 1e-9)
	assert.Zero(t, rgb.B)
	assert.Equal(t, "#ff8000", Label(rgb))
}
