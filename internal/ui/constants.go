package ui

import "time"

// Toolbar icons
const (
	IconSettings = "⚙"
	IconGallery  = "🖼"
	IconClose    = "×"
)

// Layout sizing
const (
	// Canvas size used before the preview has been laid out
	DefaultCanvasWidth  float32 = 640
	DefaultCanvasHeight float32 = 480

	FontListMinHeight float32 = 180

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	// Dialog sizing
	ShareSheetWidth  float32 = 320
	GalleryWidth     float32 = 420
	GalleryHeight    float32 = 360
	SettingsWidth    float32 = 500
	SettingsHeight   float32 = 420
	GalleryThumbSize float32 = 48
)

// Portion of the screen height covered by the on-screen keyboard
const MobileKeyboardRatio float32 = 0.4

// Debounce durations
const (
	PreviewDebounce = 80 * time.Millisecond
)

// File naming
const (
	LibraryFilePrefix = "meme-"
	LibraryTimeFormat = "20060102-150405"
	PNGExtension      = ".png"
)

// Supported photo extensions for the library picker
var PhotoExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// Text fragments
const (
	MiddleDotSeparator = " · "
)
