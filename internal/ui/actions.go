package ui

import (
	"image/color"

	"github.com/SiirRandall/ecc-tray/internal/colorspace"
)

// TogglePower queues a power toggle.
func (u *AppUI) TogglePower() {
	u.log.Debug("Toggling Power")
	u.submit(u.ctl.TogglePower())
}

// SetColor queues a hue/saturation change for c.
func (u *AppUI) SetColor(c color.Color) {
	rgb := colorspace.FromColor(c)
	label := colorspace.Label(rgb)
	u.log.Debugf("Setting color to %s", label)
	u.submit(u.ctl.SetColor(rgb, label))
}

// SetTemperature queues a temperature change; kelvin is one of device.TemperaturePresets.
func (u *AppUI) SetTemperature(kelvin int) {
	u.log.Debugf("Setting temperature to %dK", kelvin)
	u.submit(u.ctl.SetTemperature(kelvin))
}

func (u *AppUI) SetBrightness(percent int) {
	u.log.Debugf("Setting brightness to %d", percent)
	u.submit(u.ctl.SetBrightness(percent))
}
