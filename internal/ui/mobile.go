package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/mememe-app/mememe/internal/editor"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// KeyboardHeight estimates the on-screen keyboard height for a canvas of the
// given height. Fyne does not report the real value; desktop keyboards take
// no space.
func (m *MobileUI) KeyboardHeight(canvasHeight float32) float32 {
	if !m.IsMobileDevice() {
		return 0
	}
	if m.IsLandscape() {
		return canvasHeight * MobileKeyboardRatio * 1.5
	}
	return canvasHeight * MobileKeyboardRatio
}

// KeyboardEvent builds the event published when the keyboard shows or hides
func (m *MobileUI) KeyboardEvent(visible bool, canvasHeight float32) editor.KeyboardEvent {
	return editor.KeyboardEvent{Visible: visible, Height: m.KeyboardHeight(canvasHeight)}
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MinTouchTargetSize, MobileButtonHeight))
	}

	return btn
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
