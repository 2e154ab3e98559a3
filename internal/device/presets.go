// Package device describes the light and builds invocations of its control binary.
package device

import "math"

var (
	TemperaturePresets = []int{2900, 4000, 5000, 6500, 7000}
	BrightnessPresets  = []int{0, 25, 50, 75, 100}
)

// Endpoints of the linear Kelvin -> native mapping.
const (
	MinKelvin = 2900
	MaxKelvin = 7000
	MinNative = 143
	MaxNative = 344
)

// NativeTemperature maps Kelvin onto the device's temperature units.
// Out-of-range input is extrapolated, not clamped.
func NativeTemperature(kelvin int) int {
	frac := float64(kelvin-MinKelvin) / float64(MaxKelvin-MinKelvin)
	return int(math.Round(frac*float64(MaxNative-MinNative) + MinNative))
}
