package ui

import (
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/mememe-app/mememe/internal/editor"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/platform"
	"github.com/mememe-app/mememe/internal/render"
)

var errNothingToShare = errors.New("nothing to share")

// ShareSheet is the desktop share surface: save to the photos folder, save
// to a chosen file or copy to the clipboard.
type ShareSheet struct {
	window       fyne.Window
	app          fyne.App
	localization *Localization
	libraryDir   func() string
	now          func() time.Time
}

var _ editor.ShareSurface = (*ShareSheet)(nil)

// NewShareSheet creates a share sheet. Photos are saved into libraryDir().
func NewShareSheet(window fyne.Window, app fyne.App, localization *Localization, libraryDir func() string) *ShareSheet {
	return &ShareSheet{
		window:       window,
		app:          app,
		localization: localization,
		libraryDir:   libraryDir,
		now:          time.Now,
	}
}

// Present shows the sheet for the first payload image. Closing it without a
// choice completes with no destination.
func (s *ShareSheet) Present(req editor.ShareRequest, done func(editor.ShareResult)) {
	if len(req.Payload) == 0 || req.Payload[0] == nil {
		done(editor.ShareResult{Err: errNothingToShare})
		return
	}
	img := req.Payload[0]
	text := s.localization.GetText

	var sheet dialog.Dialog
	finished := false
	finish := func(res editor.ShareResult) {
		if finished {
			return
		}
		finished = true
		sheet.Hide()
		done(res)
	}

	saveBtn := widget.NewButton(text(KeySaveToPhotos), func() {
		_, err := s.SaveToLibrary(img)
		finish(editor.ShareResult{Completed: err == nil, Destination: model.DestinationSaveToLibrary, Err: err})
	})
	saveBtn.Importance = widget.HighImportance

	saveAsBtn := widget.NewButton(text(KeySaveAs), func() {
		s.saveAs(img, finish)
	})

	copyBtn := widget.NewButton(text(KeyCopyToClipboard), func() {
		path, err := s.SaveToLibrary(img)
		if err == nil {
			s.app.Clipboard().SetContent(path)
		}
		finish(editor.ShareResult{Completed: err == nil, Destination: model.DestinationCopyToPasteboard, Err: err})
	})

	cancelBtn := widget.NewButton(text(KeyCancel), func() {
		finish(editor.ShareResult{})
	})
	cancelBtn.Importance = widget.LowImportance

	content := container.NewVBox(saveBtn, saveAsBtn, copyBtn, widget.NewSeparator(), cancelBtn)
	sheet = dialog.NewCustomWithoutButtons(text(KeyShare), content, s.window)
	sheet.SetOnClosed(func() { finish(editor.ShareResult{}) })
	sheet.Resize(fyne.NewSize(ShareSheetWidth, content.MinSize().Height))
	sheet.Show()
}

// SaveToLibrary writes img into the photos folder and returns its path
func (s *ShareSheet) SaveToLibrary(img image.Image) (string, error) {
	dir := s.libraryDir()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("creating photos directory: %w", err)
	}

	path := filepath.Join(dir, s.libraryFileName())
	if err := render.WritePNGFile(path, img); err != nil {
		return "", err
	}
	if err := platform.NotifyMediaScanner(path); err != nil {
		log.Printf("Media scanner: %v", err)
	}
	log.Printf("Meme written to %s", path)
	return path, nil
}

func (s *ShareSheet) saveAs(img image.Image, finish func(editor.ShareResult)) {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			finish(editor.ShareResult{Destination: model.DestinationSaveToFile, Err: err})
			return
		}
		if w == nil {
			return // back to the sheet
		}

		err = render.EncodePNG(w, img)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err == nil {
			log.Printf("Meme written to %s", w.URI().Path())
		}
		finish(editor.ShareResult{Completed: err == nil, Destination: model.DestinationSaveToFile, Err: err})
	}, s.window)

	fd.SetFileName(s.libraryFileName())
	fd.SetFilter(storage.NewExtensionFileFilter([]string{PNGExtension}))
	fd.Show()
}

func (s *ShareSheet) libraryFileName() string {
	return LibraryFilePrefix + s.now().Format(LibraryTimeFormat) + "-" + uuid.NewString()[:8] + PNGExtension
}
