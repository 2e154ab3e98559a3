package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

/* Color picker */

// showColorPicker hosts fyne's color picker in a throwaway window, since a
// tray-only app has no parent window. Cancel or close dispatches nothing.
func (u *AppUI) showColorPicker() {
	w := u.app.NewWindow("Choose a color")
	w.Resize(fyne.NewSize(420, 480))

	d := dialog.NewColorPicker("Choose a color", "", u.SetColor, w)
	d.Advanced = true
	d.SetOnClosed(w.Close)
	w.SetCloseIntercept(d.Hide)
	w.Show()
	w.CenterOnScreen()
	d.Show()
}
