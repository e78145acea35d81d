package editor

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mememe-app/mememe/internal/model"
)

type shareFixture struct {
	sink     *ShareSink
	surface  *fakeSurface
	dialogs  *fakeDialogs
	saver    *fakeSaver
	outcomes []ShareOutcome
}

func newShareFixture() *shareFixture {
	f := &shareFixture{
		surface: &fakeSurface{},
		dialogs: &fakeDialogs{},
		saver:   &fakeSaver{},
	}
	record := func(rendered image.Image) model.Meme {
		return model.Meme{TopText: "TOP", BottomText: "BOTTOM", MemeImage: rendered}
	}
	f.sink = NewShareSink(f.surface, f.dialogs, f.saver, DefaultMessages(), record)
	f.sink.OnComplete = func(o ShareOutcome, _ *model.MemeInfo) { f.outcomes = append(f.outcomes, o) }
	return f
}

func TestShareSink_PresentsBitmap(t *testing.T) {
	f := newShareFixture()
	bitmap := image.NewRGBA(image.Rect(0, 0, 10, 10))

	f.sink.Share(bitmap)

	require.Len(t, f.surface.requests, 1)
	require.Len(t, f.surface.requests[0].Payload, 1)
	assert.Same(t, bitmap, f.surface.requests[0].Payload[0])
	assert.Empty(t, f.saver.saved, "nothing is saved before completion")
}

func TestShareSink_ErrorDoesNotPersist(t *testing.T) {
	f := newShareFixture()
	f.sink.Share(image.NewRGBA(image.Rect(0, 0, 2, 2)))

	f.surface.pending(ShareResult{Destination: model.DestinationSaveToLibrary, Err: errors.New("denied")})

	assert.Empty(t, f.saver.saved)
	require.Len(t, f.dialogs.presented, 1)
	assert.Equal(t, Dialog{
		Title:   "Meme not saved",
		Message: "Fail to save meme to app library: denied",
		Buttons: []string{"Dismiss"},
	}, f.dialogs.presented[0])
	assert.Equal(t, []ShareOutcome{ShareFailed}, f.outcomes)
}

func TestShareSink_RecognizedDestinations(t *testing.T) {
	kinds := []model.DestinationKind{
		model.DestinationSaveToLibrary,
		model.DestinationAirDrop,
		model.DestinationPostToFacebook,
		model.DestinationCopyToPasteboard,
		model.DestinationMail,
		model.DestinationPostToTwitter,
		model.DestinationMessage,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			f := newShareFixture()
			bitmap := image.NewRGBA(image.Rect(0, 0, 2, 2))
			f.sink.Share(bitmap)

			f.surface.pending(ShareResult{Completed: true, Destination: kind})

			require.Len(t, f.saver.saved, 1)
			assert.Same(t, bitmap, f.saver.saved[0].MemeImage)
			assert.Equal(t, "TOP", f.saver.saved[0].TopText)
			require.Len(t, f.dialogs.presented, 1)
			assert.Equal(t, Dialog{
				Title:   "Meme Saved",
				Message: "Your meme is saved to photos",
				Buttons: []string{"Ok"},
			}, f.dialogs.presented[0])
			assert.Equal(t, []ShareOutcome{ShareSaved}, f.outcomes)
		})
	}
}

func TestShareSink_UnrecognizedDestinationStillPersists(t *testing.T) {
	tests := []struct {
		name string
		kind model.DestinationKind
	}{
		{"save to file", model.DestinationSaveToFile},
		{"third party", model.DestinationKind("com.example.share")},
		{"absent", model.DestinationKind("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShareFixture()
			f.sink.Share(image.NewRGBA(image.Rect(0, 0, 2, 2)))

			f.surface.pending(ShareResult{Completed: true, Destination: tt.kind})

			assert.Len(t, f.saver.saved, 1)
			assert.Empty(t, f.dialogs.presented)
			assert.Equal(t, []ShareOutcome{ShareSavedFallback}, f.outcomes)
		})
	}
}

func TestShareSink_SaveFailure(t *testing.T) {
	f := newShareFixture()
	f.saver.err = errors.New("disk full")

	outcome := f.sink.Complete(image.NewRGBA(image.Rect(0, 0, 2, 2)), ShareResult{Destination: model.DestinationMail})

	assert.Equal(t, ShareFailed, outcome)
	assert.Equal(t, "Meme not saved", f.dialogs.last().Title)
	assert.Contains(t, f.dialogs.last().Message, "disk full")
}

func TestShareSink_ConfirmationCanBeTurnedOff(t *testing.T) {
	f := newShareFixture()
	f.sink.ConfirmSaved = false

	outcome := f.sink.Complete(image.NewRGBA(image.Rect(0, 0, 2, 2)), ShareResult{Destination: model.DestinationSaveToLibrary})

	assert.Equal(t, ShareSaved, outcome)
	assert.Len(t, f.saver.saved, 1)
	assert.Empty(t, f.dialogs.presented)
}

func TestShareOutcome_String(t *testing.T) {
	assert.Equal(t, "failed", ShareFailed.String())
	assert.Equal(t, "saved", ShareSaved.String())
	assert.Equal(t, "saved-fallback", ShareSavedFallback.String())
	assert.Equal(t, "unknown", ShareOutcome(42).String())
}
