package ui

import (
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/mememe-app/mememe/internal/config"
	"github.com/mememe-app/mememe/internal/editor"
	"github.com/mememe-app/mememe/internal/fonts"
	"github.com/mememe-app/mememe/internal/gallery"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/platform"
	"github.com/mememe-app/mememe/internal/render"
)

// Services are the non-UI dependencies of the meme screen
type Services struct {
	Fonts        *fonts.Registry
	Catalog      model.FontCatalog
	Gallery      *gallery.Store
	Capabilities *platform.Capabilities
}

// RootUI represents the main UI structure: the meme editor screen
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	services     Services

	screen   *editor.Screen
	notifier *editor.KeyboardNotifier
	keyboard *WindowKeyboard

	top     *CaptionEntry
	bottom  *CaptionEntry
	preview *Preview

	cameraBtn   *widget.Button
	albumBtn    *widget.Button
	fontBtn     *widget.Button
	doneBtn     *widget.Button
	shareBtn    *widget.Button
	cancelBtn   *widget.Button
	settingsBtn *widget.Button
	galleryBtn  *widget.Button

	topBar     *fyne.Container
	bottomBar  *fyne.Container
	fontPanel  *fyne.Container
	fontList   *widget.List
	editorArea *fyne.Container

	// keyboard avoidance
	frameBase    fyne.Position
	frameShifted bool

	// preview debouncing
	previewMu    sync.Mutex
	previewTimer *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, services Services) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		services:     services,
		notifier:     editor.NewKeyboardNotifier(),
		keyboard:     NewWindowKeyboard(window),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.screen.Load(settings.GetFontName())
	ui.screen.Appear()

	log.Printf("Meme screen ready with %d fonts", services.Catalog.Len())
	return ui
}

// Screen returns the editor controller behind the UI
func (ui *RootUI) Screen() *editor.Screen {
	return ui.screen
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	ui.createWidgets()

	ui.screen = editor.NewScreen(editor.Config{
		Top:          ui.top,
		Bottom:       ui.bottom,
		Canvas:       ui.preview,
		Keyboard:     ui.keyboard,
		Notifier:     ui.notifier,
		Dialogs:      NewDialogs(ui.window),
		Capabilities: ui.services.Capabilities,
		Picker:       NewPicker(ui.window, ui.services.Capabilities.Camera(), ui.settings.GetLibraryDirectory, ui.preview.PixelSize),
		Surface:      NewShareSheet(ui.window, ui.app, ui.localization, ui.settings.GetLibraryDirectory),
		Saver:        ui.services.Gallery,
		Fonts:        ui.services.Fonts,
		Catalog:      ui.services.Catalog,
		Controls: editor.Controls{
			Camera:  ui.cameraBtn,
			Library: ui.albumBtn,
			Font:    ui.fontBtn,
			Done:    ui.doneBtn,
		},
		Messages:     ui.localization.Messages(),
		Chrome:       []render.Chrome{ui.topBar, ui.bottomBar},
		CanvasSize:   ui.preview.PixelSize,
		AllowEditing: ui.settings.GetCropOnPick(),
	})

	ui.screen.OnChanged = ui.refreshPreview
	ui.screen.OnFontConfirmed = ui.settings.SetFontName
	ui.screen.Captions().OnOffsetChanged = ui.onFrameOffset
	ui.screen.Fonts().OnVisibilityChanged = ui.onFontPickerVisibility
	ui.screen.Sink().ConfirmSaved = ui.settings.GetConfirmSaving()
	ui.screen.Sink().OnComplete = func(outcome editor.ShareOutcome, info *model.MemeInfo) {
		if info != nil {
			log.Printf("Share %s, recorded %s", outcome, info.ID)
			return
		}
		log.Printf("Share %s", outcome)
	}

	ui.window.SetOnClosed(ui.screen.Disappear)
	ui.app.Lifecycle().SetOnEnteredForeground(ui.screen.Appear)
	ui.app.Lifecycle().SetOnExitedForeground(ui.screen.Disappear)

	bottom := container.NewVBox(ui.fontPanel, ui.bottomBar)
	content := container.NewBorder(ui.topBar, bottom, nil, nil, ui.editorArea)
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createWidgets builds the captions, preview, toolbars and font list
func (ui *RootUI) createWidgets() {
	text := ui.localization.GetText

	ui.top = ui.createCaptionEntry(false)
	ui.bottom = ui.createCaptionEntry(true)

	ui.preview = NewPreview()
	ui.preview.OnTapped = ui.keyboard.Dismiss
	ui.preview.OnLongPress = func() { ui.screen.TakePhoto(model.SourceLibrary) }
	ui.preview.OnResized = ui.refreshPreview

	ui.editorArea = container.NewBorder(ui.top, ui.bottom, nil, nil, ui.preview)

	ui.cameraBtn = ui.mobile.CreateMobileButton(text(KeyCamera), func() { ui.screen.TakePhoto(model.SourceCamera) })
	ui.albumBtn = ui.mobile.CreateMobileButton(text(KeyAlbum), func() { ui.screen.TakePhoto(model.SourceLibrary) })
	ui.fontBtn = ui.mobile.CreateMobileButton(text(KeyFont), func() { ui.screen.OpenFontPicker() })
	ui.doneBtn = ui.mobile.CreateMobileButton(text(KeyDone), ui.onConfirmFont)
	ui.doneBtn.Importance = widget.HighImportance

	ui.shareBtn = ui.mobile.CreateMobileButton(text(KeyShare), func() { ui.screen.Share() })
	ui.shareBtn.Importance = widget.HighImportance
	ui.cancelBtn = ui.mobile.CreateMobileButton(text(KeyCancel), func() { ui.screen.Reset() })

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	ui.galleryBtn = widget.NewButton(IconGallery, ui.onShowGallery)
	ui.galleryBtn.Importance = widget.LowImportance

	ui.topBar = container.NewHBox(ui.shareBtn, layout.NewSpacer(), ui.galleryBtn, ui.settingsBtn, ui.cancelBtn)
	ui.bottomBar = container.NewHBox(layout.NewSpacer(), ui.cameraBtn, ui.albumBtn, ui.fontBtn, ui.doneBtn, layout.NewSpacer())

	ui.fontList = widget.NewList(
		func() int { return ui.screen.Fonts().RowCount() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(ui.screen.Fonts().RowLabel(id))
		},
	)
	ui.fontList.OnSelected = func(id widget.ListItemID) { ui.screen.Fonts().OnSelect(id) }

	spacer := canvas.NewRectangle(nil)
	spacer.SetMinSize(fyne.NewSize(0, FontListMinHeight))
	ui.fontPanel = container.NewStack(spacer, ui.fontList)
	ui.fontPanel.Hide()
}

// createCaptionEntry wires a caption entry to the caption editor. Only the
// bottom entry sits under the keyboard, so only it publishes keyboard events.
func (ui *RootUI) createCaptionEntry(bottom bool) *CaptionEntry {
	e := NewCaptionEntry()
	e.OnFocusGained = func(entry *CaptionEntry) {
		ui.screen.Captions().FocusGained(entry)
		if bottom {
			ui.publishKeyboard(true)
		}
	}
	e.OnFocusLost = func(entry *CaptionEntry) {
		if bottom {
			ui.publishKeyboard(false)
		}
		ui.screen.Captions().FocusLost(entry)
	}
	e.OnSubmitted = func(string) { ui.screen.Captions().Submit(e) }
	e.OnChanged = func(string) { ui.schedulePreview() }
	return e
}

func (ui *RootUI) publishKeyboard(visible bool) {
	ev := ui.mobile.KeyboardEvent(visible, ui.window.Canvas().Size().Height)
	if ev.Height <= 0 {
		return
	}
	ui.notifier.Publish(ev)
}

// onFrameOffset moves the editing area by the keyboard offset
func (ui *RootUI) onFrameOffset(offset float32) {
	if !ui.frameShifted {
		ui.frameBase = ui.editorArea.Position()
		ui.frameShifted = true
	}
	ui.editorArea.Move(ui.frameBase.AddXY(0, offset))
	if offset == 0 {
		ui.frameShifted = false
	}
}

func (ui *RootUI) onFontPickerVisibility(visible bool) {
	if ui.fontPanel == nil {
		return
	}
	if visible {
		ui.fontList.Select(ui.screen.Fonts().Selected())
		ui.fontPanel.Show()
	} else {
		ui.fontPanel.Hide()
	}
}

func (ui *RootUI) onConfirmFont() {
	if err := ui.screen.ConfirmFont(); err != nil {
		log.Printf("Font change failed: %v", err)
	}
}

// schedulePreview re-renders once typing pauses
func (ui *RootUI) schedulePreview() {
	ui.previewMu.Lock()
	defer ui.previewMu.Unlock()

	if ui.previewTimer != nil {
		ui.previewTimer.Stop()
	}
	ui.previewTimer = time.AfterFunc(PreviewDebounce, func() {
		fyne.Do(ui.refreshPreview)
	})
}

// refreshPreview flattens the scene into the preview
func (ui *RootUI) refreshPreview() {
	if ui.screen == nil {
		return
	}
	img, err := ui.renderScene()
	if err != nil {
		log.Printf("Preview not updated: %v", err)
		return
	}
	ui.preview.ShowRendered(img)
}

func (ui *RootUI) renderScene() (image.Image, error) {
	return render.Flatten(ui.screen.Scene(), ui.services.Fonts)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	galleryItem := fyne.NewMenuItem(ui.localization.GetText(KeyGallery), ui.onShowGallery)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), galleryItem, settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.window.SetTitle(text(KeyAppTitle))
	ui.cameraBtn.SetText(text(KeyCamera))
	ui.albumBtn.SetText(text(KeyAlbum))
	ui.fontBtn.SetText(text(KeyFont))
	ui.doneBtn.SetText(text(KeyDone))
	ui.shareBtn.SetText(text(KeyShare))
	ui.cancelBtn.SetText(text(KeyCancel))

	ui.screen.SetMessages(ui.localization.Messages())
}

func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window, ui.localization)
	sd.OnSaved = ui.applySettings
	sd.Show()
}

func (ui *RootUI) onShowGallery() {
	NewGalleryDialog(ui.services.Gallery, ui.window, ui.localization).Show()
}

// applySettings applies what can change without a restart. Gallery and fonts
// directories are read at startup.
func (ui *RootUI) applySettings() {
	ui.screen.Acquirer().SetAllowEditing(ui.settings.GetCropOnPick())
	ui.screen.Sink().ConfirmSaved = ui.settings.GetConfirmSaving()

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
}
