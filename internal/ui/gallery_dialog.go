package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mememe-app/mememe/internal/gallery"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/platform"
)

// GalleryDialog lists the memes recorded in the app gallery
type GalleryDialog struct {
	store        *gallery.Store
	window       fyne.Window
	localization *Localization

	items []*model.MemeInfo
	list  *widget.List
	empty *widget.Label
}

// NewGalleryDialog creates a gallery browser over store
func NewGalleryDialog(store *gallery.Store, window fyne.Window, localization *Localization) *GalleryDialog {
	gd := &GalleryDialog{
		store:        store,
		window:       window,
		localization: localization,
	}

	gd.list = widget.NewList(
		func() int { return len(gd.items) },
		gd.createItem,
		gd.updateItem,
	)
	gd.empty = widget.NewLabel(localization.GetText(KeyGalleryEmpty))
	gd.empty.Alignment = fyne.TextAlignCenter
	return gd
}

// Show reloads the gallery and displays it
func (gd *GalleryDialog) Show() {
	gd.reload()

	openBtn := widget.NewButton(gd.localization.GetText(KeyOpenFolder), func() {
		if err := platform.OpenFolder(gd.store.Dir()); err != nil {
			log.Printf("Error opening gallery folder: %v", err)
			dialog.ShowError(err, gd.window)
		}
	})

	content := container.NewBorder(nil, openBtn, nil, nil, container.NewStack(gd.list, gd.empty))
	d := dialog.NewCustom(gd.localization.GetText(KeyGallery), gd.localization.GetText(KeyOk), content, gd.window)
	d.Resize(fyne.NewSize(GalleryWidth, GalleryHeight))
	d.Show()
}

// Items returns the records currently listed
func (gd *GalleryDialog) Items() []*model.MemeInfo {
	return gd.items
}

func (gd *GalleryDialog) reload() {
	items, err := gd.store.List()
	if err != nil {
		log.Printf("Error listing gallery: %v", err)
	}
	gd.items = items

	if len(gd.items) == 0 {
		gd.empty.Show()
	} else {
		gd.empty.Hide()
	}
	gd.list.Refresh()
}

func (gd *GalleryDialog) createItem() fyne.CanvasObject {
	thumb := canvas.NewImageFromFile("")
	thumb.FillMode = canvas.ImageFillContain
	thumb.SetMinSize(fyne.NewSize(GalleryThumbSize, GalleryThumbSize))

	title := widget.NewLabel("")
	title.Truncation = fyne.TextTruncateEllipsis
	removeBtn := widget.NewButton(IconClose, nil)
	removeBtn.Importance = widget.LowImportance

	return container.NewBorder(nil, nil, thumb, removeBtn, title)
}

func (gd *GalleryDialog) updateItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(gd.items) {
		return
	}
	info := gd.items[id]

	row := item.(*fyne.Container)
	title := row.Objects[0].(*widget.Label)
	thumb := row.Objects[1].(*canvas.Image)
	removeBtn := row.Objects[2].(*widget.Button)

	title.SetText(info.GetDisplayTitle() + MiddleDotSeparator + info.CreatedAt.Format("2006-01-02 15:04"))
	thumb.File = info.ImagePath
	thumb.Refresh()
	removeBtn.OnTapped = func() { gd.remove(info) }
}

func (gd *GalleryDialog) remove(info *model.MemeInfo) {
	if err := gd.store.Remove(info.ID); err != nil {
		log.Printf("Error removing %s: %v", info.ID, err)
		dialog.ShowError(err, gd.window)
		return
	}
	gd.reload()
}
