package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyFontName      = "caption_font"
	KeyLanguage      = "app_language"
	KeyGalleryDir    = "gallery_directory"
	KeyLibraryDir    = "library_directory"
	KeyFontsDir      = "fonts_directory"
	KeyCropOnPick    = "crop_on_pick"
	KeyConfirmSaving = "confirm_saving"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultCropOnPick    = true
	DefaultConfirmSaving = true
	GalleryDirName       = "gallery"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFontName returns the last confirmed caption font, or the first bundled font
func (s *Settings) GetFontName() string {
	name := s.app.Preferences().String(KeyFontName)
	if name == "" {
		return model.DefaultFontNames[0]
	}
	return name
}

// SetFontName remembers the confirmed caption font
func (s *Settings) SetFontName(name string) {
	s.app.Preferences().SetString(KeyFontName, name)
}

// GetGalleryDirectory returns where saved memes are recorded. Defaults to a
// folder inside the app's private storage.
func (s *Settings) GetGalleryDirectory() string {
	dir := s.app.Preferences().String(KeyGalleryDir)
	if dir == "" {
		dir = s.defaultGalleryDirectory()
		s.SetGalleryDirectory(dir)
	}
	return dir
}

// SetGalleryDirectory sets the gallery directory
func (s *Settings) SetGalleryDirectory(dir string) {
	s.app.Preferences().SetString(KeyGalleryDir, dir)
}

func (s *Settings) defaultGalleryDirectory() string {
	if storage := s.app.Storage(); storage != nil {
		if root := storage.RootURI(); root != nil && root.Path() != "" {
			return filepath.Join(root.Path(), GalleryDirName)
		}
	}
	return filepath.Join(os.TempDir(), platform.AppAlbumName, GalleryDirName)
}

// GetLibraryDirectory returns the photo library folder used by "Save to Photos"
func (s *Settings) GetLibraryDirectory() string {
	dir := s.app.Preferences().String(KeyLibraryDir)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), platform.AppAlbumName)
		}
		s.SetLibraryDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetLibraryDirectory sets the photo library folder
func (s *Settings) SetLibraryDirectory(dir string) {
	s.app.Preferences().SetString(KeyLibraryDir, dir)
}

// GetFontsDirectory returns the folder scanned for extra .ttf fonts. Empty
// means only bundled fonts are offered.
func (s *Settings) GetFontsDirectory() string {
	return s.app.Preferences().String(KeyFontsDir)
}

// SetFontsDirectory sets the extra fonts folder
func (s *Settings) SetFontsDirectory(dir string) {
	s.app.Preferences().SetString(KeyFontsDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCropOnPick returns whether picked photos are cropped to the canvas
func (s *Settings) GetCropOnPick() bool {
	return s.app.Preferences().BoolWithFallback(KeyCropOnPick, DefaultCropOnPick)
}

// SetCropOnPick sets whether picked photos are cropped to the canvas
func (s *Settings) SetCropOnPick(crop bool) {
	s.app.Preferences().SetBool(KeyCropOnPick, crop)
}

// GetConfirmSaving returns whether a dialog confirms recognized shares
func (s *Settings) GetConfirmSaving() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmSaving, DefaultConfirmSaving)
}

// SetConfirmSaving sets whether a dialog confirms recognized shares
func (s *Settings) SetConfirmSaving(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmSaving, confirm)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
