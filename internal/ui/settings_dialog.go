package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mememe-app/mememe/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// OnSaved runs after the settings were written
	OnSaved func()

	// UI components
	galleryDirEntry *widget.Entry
	libraryDirEntry *widget.Entry
	fontsDirEntry   *widget.Entry
	cropCheck       *widget.Check
	confirmCheck    *widget.Check
	languageSelect  *widget.Select

	languageCodes map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.galleryDirEntry = widget.NewEntry()
	sd.libraryDirEntry = widget.NewEntry()
	sd.fontsDirEntry = widget.NewEntry()

	sd.cropCheck = widget.NewCheck(text(KeyCropOnPick), nil)
	sd.confirmCheck = widget.NewCheck(text(KeyConfirmSaving), nil)

	// Language selection shows display names and stores codes
	sd.languageCodes = make(map[string]string)
	var languageOptions []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyLibraryDirectory)+":"),
		sd.directoryRow(sd.libraryDirEntry),

		widget.NewLabel(text(KeyGalleryDirectory)+":"),
		sd.directoryRow(sd.galleryDirEntry),

		widget.NewLabel(text(KeyFontsDirectory)+":"),
		sd.directoryRow(sd.fontsDirEntry),

		widget.NewSeparator(),
		sd.cropCheck,
		sd.confirmCheck,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// directoryRow pairs entry with a Browse button
func (sd *SettingsDialog) directoryRow(entry *widget.Entry) fyne.CanvasObject {
	browseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			entry.SetText(uri.Path())
		}, sd.window)
	})
	return container.NewBorder(nil, nil, nil, browseBtn, entry)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.galleryDirEntry.SetText(sd.settings.GetGalleryDirectory())
	sd.libraryDirEntry.SetText(sd.settings.GetLibraryDirectory())
	sd.fontsDirEntry.SetText(sd.settings.GetFontsDirectory())
	sd.cropCheck.SetChecked(sd.settings.GetCropOnPick())
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmSaving())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.galleryDirEntry.Text; dir != "" {
		sd.settings.SetGalleryDirectory(dir)
	}
	if dir := sd.libraryDirEntry.Text; dir != "" {
		sd.settings.SetLibraryDirectory(dir)
	}
	// An empty fonts directory means bundled fonts only
	sd.settings.SetFontsDirectory(sd.fontsDirEntry.Text)

	sd.settings.SetCropOnPick(sd.cropCheck.Checked)
	sd.settings.SetConfirmSaving(sd.confirmCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.OnSaved != nil {
		sd.OnSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
