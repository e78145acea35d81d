package editor

import (
	"image"
	"log"

	"github.com/mememe-app/mememe/internal/model"
)

// ShareOutcome is how a share attempt ended
type ShareOutcome int

const (
	// ShareFailed means the surface reported an error or saving failed
	ShareFailed ShareOutcome = iota
	// ShareSaved means a recognized destination completed and the meme was saved
	ShareSaved
	// ShareSavedFallback means the destination was not recognized (or absent)
	// and the meme was saved anyway
	ShareSavedFallback
)

// String returns the string representation of ShareOutcome
func (o ShareOutcome) String() string {
	switch o {
	case ShareFailed:
		return "failed"
	case ShareSaved:
		return "saved"
	case ShareSavedFallback:
		return "saved-fallback"
	default:
		return "unknown"
	}
}

// RecordFunc builds the composited record for a rendered bitmap
type RecordFunc func(rendered image.Image) model.Meme

// ShareSink hands rendered memes to the share surface and persists them
// according to how the surface completed.
type ShareSink struct {
	surface  ShareSurface
	dialogs  Dialogs
	saver    Saver
	messages Messages
	record   RecordFunc

	// ConfirmSaved shows the "saved" dialog for recognized destinations
	ConfirmSaved bool
	// OnComplete observes every finished share
	OnComplete func(outcome ShareOutcome, info *model.MemeInfo)
}

// NewShareSink creates a sink. record is called at completion time so the
// saved record reflects the current captions and photo.
func NewShareSink(surface ShareSurface, dialogs Dialogs, saver Saver, messages Messages, record RecordFunc) *ShareSink {
	return &ShareSink{
		surface:      surface,
		dialogs:      dialogs,
		saver:        saver,
		messages:     messages,
		record:       record,
		ConfirmSaved: true,
	}
}

// Share presents the share surface with bitmap as its only payload
func (s *ShareSink) Share(bitmap image.Image) {
	req := ShareRequest{Payload: []image.Image{bitmap}}
	s.surface.Present(req, func(res ShareResult) {
		s.Complete(bitmap, res)
	})
}

// Complete applies the save policy to a finished share:
// an error is reported and nothing is saved; otherwise the meme is saved, with a
// confirmation only for recognized destinations.
func (s *ShareSink) Complete(bitmap image.Image, res ShareResult) ShareOutcome {
	if res.Err != nil {
		log.Printf("Share failed: %v", res.Err)
		s.dialogs.Present(s.messages.notSaved(res.Err))
		return s.done(ShareFailed, nil)
	}

	info, err := s.save(bitmap)
	if err != nil {
		log.Printf("Saving meme failed: %v", err)
		s.dialogs.Present(s.messages.notSaved(err))
		return s.done(ShareFailed, nil)
	}

	if res.Destination.IsRecognized() {
		log.Printf("Shared to %s and saved", res.Destination)
		if s.ConfirmSaved {
			s.dialogs.Present(s.messages.saved())
		}
		return s.done(ShareSaved, info)
	}

	log.Printf("Destination %q is not recognized, saved the meme anyway", res.Destination)
	return s.done(ShareSavedFallback, info)
}

func (s *ShareSink) save(bitmap image.Image) (*model.MemeInfo, error) {
	meme := model.Meme{MemeImage: bitmap}
	if s.record != nil {
		meme = s.record(bitmap)
	}
	return s.saver.Save(meme)
}

func (s *ShareSink) done(outcome ShareOutcome, info *model.MemeInfo) ShareOutcome {
	if s.OnComplete != nil {
		s.OnComplete(outcome, info)
	}
	return outcome
}
