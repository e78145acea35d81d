package ui

import (
	"context"
	"fmt"
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/mememe-app/mememe/internal/editor"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/platform"
	"github.com/mememe-app/mememe/internal/render"
)

// Picker gets photos from the library through a file dialog and from the
// camera through the platform capture tool.
type Picker struct {
	window     fyne.Window
	camera     *platform.Camera
	libraryDir func() string
	canvasSize func() image.Point
}

var _ editor.Picker = (*Picker)(nil)

// NewPicker creates a picker. canvasSize is the crop target when editing is
// allowed; libraryDir is where the file dialog starts.
func NewPicker(window fyne.Window, camera *platform.Camera, libraryDir func() string, canvasSize func() image.Point) *Picker {
	return &Picker{
		window:     window,
		camera:     camera,
		libraryDir: libraryDir,
		canvasSize: canvasSize,
	}
}

// Pick presents the picker for req.Source; done runs on the UI thread
func (p *Picker) Pick(req editor.PickRequest, done func(editor.PickResult)) {
	switch req.Source {
	case model.SourceCamera:
		p.capture(req, done)
	default:
		p.openLibrary(req, done)
	}
}

func (p *Picker) openLibrary(req editor.PickRequest, done func(editor.PickResult)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			done(editor.PickResult{Err: err})
			return
		}
		if reader == nil {
			done(editor.PickResult{Cancelled: true})
			return
		}
		defer reader.Close()

		img, err := render.Decode(reader)
		if err != nil {
			done(editor.PickResult{Err: fmt.Errorf("%s: %w", reader.URI().Name(), err)})
			return
		}
		done(editor.PickResult{Image: p.edit(req, img)})
	}, p.window)

	fd.SetFilter(storage.NewExtensionFileFilter(PhotoExtensions))
	if p.libraryDir != nil {
		if dir := p.libraryDir(); dir != "" {
			if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
				fd.SetLocation(lister)
			}
		}
	}
	fd.Show()
}

func (p *Picker) capture(req editor.PickRequest, done func(editor.PickResult)) {
	if p.camera == nil {
		done(editor.PickResult{Err: platform.ErrCameraUnavailable})
		return
	}

	go func() {
		img, err := p.camera.Capture(context.Background())
		if err != nil {
			log.Printf("Camera capture failed: %v", err)
		}
		fyne.Do(func() {
			if err != nil {
				done(editor.PickResult{Err: err})
				return
			}
			done(editor.PickResult{Image: p.edit(req, img)})
		})
	}()
}

// edit applies the in-picker crop
func (p *Picker) edit(req editor.PickRequest, img image.Image) image.Image {
	if !req.AllowEditing || p.canvasSize == nil {
		return img
	}
	return render.CropToAspect(img, p.canvasSize())
}
