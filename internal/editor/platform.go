package editor

import (
	"image"

	"github.com/mememe-app/mememe/internal/model"
)

// Dialog is a modal message with one or more buttons
type Dialog struct {
	Title   string
	Message string
	Buttons []string
}

// Dialogs presents modal messages. Present is fire-and-forget; Confirm reports
// whether the first button was chosen.
type Dialogs interface {
	Present(d Dialog)
	Confirm(d Dialog, onChoice func(confirmed bool))
}

// Capabilities answers whether an image source can be used on this device
type Capabilities interface {
	SourceAvailable(source model.Source) bool
}

// PickRequest asks the picker for a photo
type PickRequest struct {
	Source       model.Source
	AllowEditing bool
}

// PickResult is delivered once the picker is dismissed. A nil Image with no
// error is a cancellation.
type PickResult struct {
	Image     image.Image
	Cancelled bool
	Err       error
}

// Picker presents the platform photo picker. done runs on the UI thread.
type Picker interface {
	Pick(req PickRequest, done func(PickResult))
}

// ShareRequest carries what is handed to the share surface
type ShareRequest struct {
	Payload []image.Image
}

// ShareResult is delivered when the share surface is dismissed
type ShareResult struct {
	Completed   bool
	Destination model.DestinationKind
	Err         error
}

// ShareSurface presents the platform share sheet. done runs on the UI thread.
type ShareSurface interface {
	Present(req ShareRequest, done func(ShareResult))
}

// Saver persists a composited record
type Saver interface {
	Save(meme model.Meme) (*model.MemeInfo, error)
}

// Control is a toolbar button that can be switched on and off
type Control interface {
	Enable()
	Disable()
	Disabled() bool
}

// CaptionField is one of the two live caption inputs
type CaptionField interface {
	CaptionText() string
	SetText(text string)
	ApplyStyle(style model.CaptionStyle)
}

// Canvas holds the photo being captioned
type Canvas interface {
	Image() image.Image
	SetImage(img image.Image)
}

// Keyboard dismisses the on-screen keyboard
type Keyboard interface {
	Dismiss()
}
