package editor

import (
	"fmt"

	"github.com/mememe-app/mememe/internal/model"
)

// Caption placeholders shown until the user starts typing
const (
	TopPlaceholder    = "TOP"
	BottomPlaceholder = "BOTTOM"
)

// Messages holds every user-facing string the controller produces
type Messages struct {
	DismissButton string
	OkButton      string
	YesButton     string
	NoButton      string

	NotFoundTitle  string
	NotFoundFormat string // receives the source name

	PickFailedTitle  string
	PickFailedFormat string // receives the error

	NotSavedTitle  string
	NotSavedFormat string // receives the error

	SavedTitle   string
	SavedMessage string

	DeleteTitle   string
	DeleteMessage string

	FontUnavailableTitle  string
	FontUnavailableFormat string // receives the font name

	SourceNames map[model.Source]string
}

// DefaultMessages returns the English strings
func DefaultMessages() Messages {
	return Messages{
		DismissButton: "Dismiss",
		OkButton:      "Ok",
		YesButton:     "Yes",
		NoButton:      "No",

		NotFoundTitle:  "Not Found",
		NotFoundFormat: "Resource %s is not found",

		PickFailedTitle:  "Photo not loaded",
		PickFailedFormat: "Could not load the photo: %v",

		NotSavedTitle:  "Meme not saved",
		NotSavedFormat: "Fail to save meme to app library: %v",

		SavedTitle:   "Meme Saved",
		SavedMessage: "Your meme is saved to photos",

		DeleteTitle:   "Delete",
		DeleteMessage: "Are you sure want to cancel? Any changes made will be reset.",

		FontUnavailableTitle:  "Font not available",
		FontUnavailableFormat: "The font %q could not be loaded. The previous font is kept.",
	}
}

// SourceName returns the display name of source
func (m Messages) SourceName(source model.Source) string {
	if name, ok := m.SourceNames[source]; ok && name != "" {
		return name
	}
	return source.String()
}

func (m Messages) notFound(source model.Source) Dialog {
	return Dialog{
		Title:   m.NotFoundTitle,
		Message: fmt.Sprintf(m.NotFoundFormat, m.SourceName(source)),
		Buttons: []string{m.DismissButton},
	}
}

func (m Messages) pickFailed(err error) Dialog {
	return Dialog{
		Title:   m.PickFailedTitle,
		Message: fmt.Sprintf(m.PickFailedFormat, err),
		Buttons: []string{m.DismissButton},
	}
}

func (m Messages) notSaved(err error) Dialog {
	return Dialog{
		Title:   m.NotSavedTitle,
		Message: fmt.Sprintf(m.NotSavedFormat, err),
		Buttons: []string{m.DismissButton},
	}
}

func (m Messages) saved() Dialog {
	return Dialog{
		Title:   m.SavedTitle,
		Message: m.SavedMessage,
		Buttons: []string{m.OkButton},
	}
}

func (m Messages) confirmReset() Dialog {
	return Dialog{
		Title:   m.DeleteTitle,
		Message: m.DeleteMessage,
		Buttons: []string{m.YesButton, m.NoButton},
	}
}

func (m Messages) fontUnavailable(name string) Dialog {
	return Dialog{
		Title:   m.FontUnavailableTitle,
		Message: fmt.Sprintf(m.FontUnavailableFormat, name),
		Buttons: []string{m.DismissButton},
	}
}
