package editor

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mememe-app/mememe/internal/fonts"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/render"
)

func TestScreen_LoadReflectsCamera(t *testing.T) {
	tests := []struct {
		name     string
		caps     fakeCaps
		disabled bool
	}{
		{"camera present", fakeCaps{model.SourceCamera: true, model.SourceLibrary: true}, false},
		{"camera missing", fakeCaps{model.SourceLibrary: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, model.NewFontCatalog("Impact"), tt.caps, []string{"Impact"})
			h.camera.disabled = !tt.disabled

			h.screen.Load("")

			assert.Equal(t, tt.disabled, h.camera.Disabled())
			assert.Equal(t, "TOP", h.top.text)
			assert.Equal(t, "BOTTOM", h.bottom.text)
			assert.False(t, h.screen.Fonts().Visible())
			assert.True(t, h.done.Disabled())
		})
	}
}

func TestScreen_LoadUnknownSavedFontFallsBackToFirst(t *testing.T) {
	h := newHarness(t, model.NewFontCatalog("Impact", "Comic"), allSources, []string{"Impact", "Comic"})

	h.screen.Load("Papyrus")

	assert.Equal(t, 0, h.screen.Fonts().Selected())
	assert.Equal(t, "Impact", h.top.style.FontName)
}

func TestScreen_RenderRestoresChromeOnFailure(t *testing.T) {
	boom := errors.New("boom")
	var h *harness
	h = newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"}, func(c *Config) {
		c.Flatten = func() (image.Image, error) {
			assert.False(t, h.topBar.visible, "bars are hidden while flattening")
			assert.False(t, h.botBar.visible)
			return nil, boom
		}
	})
	h.botBar.visible = false

	_, err := h.screen.Render()

	require.ErrorIs(t, err, boom)
	assert.True(t, h.topBar.visible)
	assert.False(t, h.botBar.visible, "a hidden bar stays hidden")
}

func TestScreen_RenderRestoresChromeOnPanic(t *testing.T) {
	h := newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"}, func(c *Config) {
		c.Flatten = func() (image.Image, error) { panic("renderer exploded") }
	})

	_, err := h.screen.Render()

	require.ErrorIs(t, err, render.ErrFlattenPanic)
	assert.True(t, h.topBar.visible)
	assert.True(t, h.botBar.visible)
}

func TestScreen_RenderFlattensCurrentState(t *testing.T) {
	h := newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"})
	h.screen.Load("")

	photo := image.NewRGBA(image.Rect(0, 0, 32, 24))
	for i := range photo.Pix {
		photo.Pix[i] = 0xff
	}
	h.canvas.img = photo
	h.top.text = ""
	h.bottom.text = ""

	img, err := h.screen.Render()

	require.NoError(t, err)
	assert.Equal(t, image.Pt(320, 240), img.Bounds().Size())
	r, g, b, _ := img.At(160, 120).RGBA()
	assert.True(t, r > 0xf000 && g > 0xf000 && b > 0xf000, "photo fills the canvas")
	assert.True(t, h.topBar.visible)
	assert.True(t, h.botBar.visible)
}

func TestScreen_RenderMatchesPreviewOutput(t *testing.T) {
	var resolver fonts.Resolver
	h := newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"}, func(c *Config) {
		resolver = c.Fonts
	})
	h.screen.Load("")
	h.canvas.img = image.NewRGBA(image.Rect(0, 0, 32, 24))
	h.top.text = "TOP"
	h.bottom.text = "BOTTOM"

	preview, err := render.Flatten(h.screen.Scene(), resolver)
	require.NoError(t, err)

	shown, err := h.screen.Render()
	require.NoError(t, err)

	h.topBar.visible = false
	h.botBar.visible = false
	hidden, err := h.screen.Render()
	require.NoError(t, err)

	assert.Equal(t, preview.Pix, shown.(*image.RGBA).Pix, "capture is the preview bitmap")
	assert.Equal(t, shown.(*image.RGBA).Pix, hidden.(*image.RGBA).Pix, "bar visibility never reaches the bitmap")
	assert.False(t, h.topBar.visible)
	assert.False(t, h.botBar.visible)
}

func TestScreen_SceneUsesLiveCaptions(t *testing.T) {
	h := newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"}, func(c *Config) {
		c.Background = color.White
	})
	h.screen.Load("")
	h.top.text = "WHEN THE BUILD"
	h.bottom.text = "PASSES FIRST TRY"

	scene := h.screen.Scene()

	assert.Equal(t, "WHEN THE BUILD", scene.TopText)
	assert.Equal(t, "PASSES FIRST TRY", scene.BottomText)
	assert.Equal(t, "Impact", scene.Style.FontName)
	assert.Equal(t, image.Pt(320, 240), scene.Size)
	assert.Equal(t, color.Color(color.White), scene.Background)
}

func TestScreen_ShareEndToEnd(t *testing.T) {
	h := newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"})
	h.screen.Load("")
	photo := image.NewRGBA(image.Rect(0, 0, 16, 16))
	h.canvas.img = photo
	h.top.text = "TOP TEXT"

	h.screen.Share()
	require.Len(t, h.surface.requests, 1)
	require.NotNil(t, h.surface.pending)

	h.surface.pending(ShareResult{Completed: true, Destination: model.DestinationSaveToLibrary})

	require.Len(t, h.saver.saved, 1)
	saved := h.saver.saved[0]
	assert.Equal(t, "TOP TEXT", saved.TopText)
	assert.Equal(t, "BOTTOM", saved.BottomText)
	assert.Equal(t, "Impact", saved.FontName)
	assert.Same(t, photo, saved.OriginalImage)
	assert.Same(t, h.surface.requests[0].Payload[0], saved.MemeImage)
	assert.Equal(t, "Meme Saved", h.dialogs.last().Title)
}

func TestScreen_ShareRenderFailure(t *testing.T) {
	h := newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"}, func(c *Config) {
		c.Flatten = func() (image.Image, error) { return nil, render.ErrEmptyCanvas }
	})

	h.screen.Share()

	assert.Empty(t, h.surface.requests)
	assert.Empty(t, h.saver.saved)
	assert.Equal(t, "Meme not saved", h.dialogs.last().Title)
}

func TestScreen_Reset(t *testing.T) {
	tests := []struct {
		name    string
		answer  bool
		wantTop string
		cleared bool
	}{
		{"confirmed", true, "TOP", true},
		{"declined", false, "MY CAPTION", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"})
			h.screen.Load("")
			h.dialogs.answer = tt.answer
			h.top.text = "MY CAPTION"
			h.canvas.img = image.NewRGBA(image.Rect(0, 0, 2, 2))

			h.screen.Reset()

			require.Len(t, h.dialogs.confirms, 1)
			assert.Equal(t, Dialog{
				Title:   "Delete",
				Message: "Are you sure want to cancel? Any changes made will be reset.",
				Buttons: []string{"Yes", "No"},
			}, h.dialogs.confirms[0])
			assert.Equal(t, tt.wantTop, h.top.text)
			assert.Equal(t, tt.cleared, h.canvas.img == nil)
		})
	}
}

func TestScreen_TakePhotoNotifiesChange(t *testing.T) {
	h := newHarness(t, model.NewFontCatalog("Impact"), allSources, []string{"Impact"})
	h.screen.Load("")
	changed := 0
	h.screen.OnChanged = func() { changed++ }

	require.True(t, h.screen.TakePhoto(model.SourceCamera))
	h.picker.pending(PickResult{Image: image.NewRGBA(image.Rect(0, 0, 3, 3))})

	assert.Equal(t, 1, changed)
}

func TestScreen_SetMessages(t *testing.T) {
	h := newHarness(t, model.NewFontCatalog("Impact"), fakeCaps{}, []string{"Impact"})
	messages := DefaultMessages()
	messages.NotFoundTitle = "Não Encontrado"
	messages.NotSavedTitle = "Meme não salvo"

	h.screen.SetMessages(messages)
	h.screen.TakePhoto(model.SourceCamera)
	h.screen.Sink().Complete(image.NewRGBA(image.Rect(0, 0, 1, 1)), ShareResult{Err: errors.New("x")})

	require.Len(t, h.dialogs.presented, 2)
	assert.Equal(t, "Não Encontrado", h.dialogs.presented[0].Title)
	assert.Equal(t, "Meme não salvo", h.dialogs.presented[1].Title)
}
