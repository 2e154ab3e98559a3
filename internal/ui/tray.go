// internal/ui/tray.go
package ui

import (
	"fmt"

	"github.com/SiirRandall/ecc-tray/internal/device"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

// EnableSystemTray installs the tray icon and menu. The app has no main window.
func (u *AppUI) EnableSystemTray() {
	desk, ok := u.app.(desktop.App)
	if !ok {
		u.log.Warn("[tray] desktop.App not available (non-desktop build?)")
		return
	}
	desk.SetSystemTrayIcon(theme.ColorPaletteIcon())
	desk.SetSystemTrayMenu(u.buildTrayMenu())
	u.log.Debug("[tray] system tray menu installed")
}

func (u *AppUI) buildTrayMenu() *fyne.Menu {
	toggleItem := fyne.NewMenuItem("Toggle Power", u.TogglePower)
	colorItem := fyne.NewMenuItem("Set Color", u.showColorPicker)

	tempItems := make([]*fyne.MenuItem, 0, len(device.TemperaturePresets))
	for _, k := range device.TemperaturePresets {
		kelvin := k
		tempItems = append(tempItems, fyne.NewMenuItem(fmt.Sprintf("%dK", kelvin), func() {
			u.SetTemperature(kelvin)
		}))
	}
	tempItem := fyne.NewMenuItem("Set Temperature", nil)
	tempItem.ChildMenu = fyne.NewMenu("", tempItems...)

	brightItems := make([]*fyne.MenuItem, 0, len(device.BrightnessPresets))
	for _, p := range device.BrightnessPresets {
		level := p
		brightItems = append(brightItems, fyne.NewMenuItem(fmt.Sprintf("%d%%", level), func() {
			u.SetBrightness(level)
		}))
	}
	brightItem := fyne.NewMenuItem("Set Brightness", nil)
	brightItem.ChildMenu = fyne.NewMenu("", brightItems...)

	// IsQuit stops fyne from appending its own Quit entry.
	quitItem := fyne.NewMenuItem("Quit", u.Quit)
	quitItem.IsQuit = true

	return fyne.NewMenu("ElgatoControlCenter",
		toggleItem,
		colorItem,
		tempItem,
		brightItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
}
