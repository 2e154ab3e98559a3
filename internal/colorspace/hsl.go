// Package colorspace converts picker colors into the hue/saturation pair the light expects.
package colorspace

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB channels are normalized to [0,1].
type RGB struct {
	R, G, B float64
}

// HSL has hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H, S, L float64
}

// FromColor normalizes any image/color value, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
}

// ToHSL converts rgb to HSL. Channels outside [0,1] are clamped first.
func ToHSL(rgb RGB) HSL {
	h, s, l := colorful.Color{R: clamp01(rgb.R), G: clamp01(rgb.G), B: clamp01(rgb.B)}.Hsl()
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// a tiny negative hue wraps to exactly 360 in float64
	if h >= 360 {
		h = 0
	}
	return HSL{H: h, S: s * 100, L: l * 100}
}

// Label renders rgb as #rrggbb for notifications.
func Label(rgb RGB) string {
	return colorful.Color{R: clamp01(rgb.R), G: clamp01(rgb.G), B: clamp01(rgb.B)}.Hex()
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
