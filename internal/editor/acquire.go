package editor

import (
	"log"

	"github.com/mememe-app/mememe/internal/model"
)

// Acquirer loads a new photo into the canvas from the camera or the library
type Acquirer struct {
	caps         Capabilities
	picker       Picker
	canvas       Canvas
	dialogs      Dialogs
	messages     Messages
	allowEditing bool

	// OnImageChanged is called after a picked photo replaced the canvas image
	OnImageChanged func()
}

// NewAcquirer creates an acquirer. Picked photos may be cropped by the picker
// when allowEditing is set.
func NewAcquirer(caps Capabilities, picker Picker, canvas Canvas, dialogs Dialogs, messages Messages, allowEditing bool) *Acquirer {
	return &Acquirer{
		caps:         caps,
		picker:       picker,
		canvas:       canvas,
		dialogs:      dialogs,
		messages:     messages,
		allowEditing: allowEditing,
	}
}

// SetAllowEditing toggles in-picker cropping for later requests
func (a *Acquirer) SetAllowEditing(allow bool) {
	a.allowEditing = allow
}

// Available reports whether source can be offered
func (a *Acquirer) Available(source model.Source) bool {
	return a.caps != nil && a.caps.SourceAvailable(source)
}

// Acquire presents the picker for source. When the source is unavailable a
// dialog says so and nothing else happens. It reports whether the picker was shown.
func (a *Acquirer) Acquire(source model.Source) bool {
	if !a.Available(source) || a.picker == nil {
		log.Printf("Source %s not found", source)
		a.dialogs.Present(a.messages.notFound(source))
		return false
	}

	req := PickRequest{Source: source, AllowEditing: a.allowEditing}
	a.picker.Pick(req, func(res PickResult) {
		a.finish(source, res)
	})
	return true
}

func (a *Acquirer) finish(source model.Source, res PickResult) {
	switch {
	case res.Err != nil:
		log.Printf("Picking from %s failed: %v", source, res.Err)
		a.dialogs.Present(a.messages.pickFailed(res.Err))
	case res.Cancelled || res.Image == nil:
		log.Printf("Picking from %s cancelled", source)
	default:
		a.canvas.SetImage(res.Image)
		log.Printf("Picked %v image from %s", res.Image.Bounds().Size(), source)
		if a.OnImageChanged != nil {
			a.OnImageChanged()
		}
	}
}
