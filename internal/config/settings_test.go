package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestFontName(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if name := settings.GetFontName(); name != model.DefaultFontNames[0] {
		t.Errorf("Expected default font %s, got %s", model.DefaultFontNames[0], name)
	}

	// Test setting custom value
	settings.SetFontName("Impact")
	if name := settings.GetFontName(); name != "Impact" {
		t.Errorf("Expected font Impact, got %s", name)
	}
}

func TestGalleryDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetGalleryDirectory()
	if dir == "" {
		t.Fatal("Gallery directory should not be empty")
	}
	if filepath.Base(dir) != GalleryDirName {
		t.Errorf("Expected default gallery to end with %s, got %s", GalleryDirName, dir)
	}

	// Test setting custom value
	customDir := "/custom/gallery"
	settings.SetGalleryDirectory(customDir)
	if got := settings.GetGalleryDirectory(); got != customDir {
		t.Errorf("Expected gallery directory %s, got %s", customDir, got)
	}
}

func TestLibraryDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	dir := settings.GetLibraryDirectory()
	if dir == "" {
		t.Fatal("Library directory should not be empty")
	}
	if filepath.Base(dir) != platform.AppAlbumName {
		t.Errorf("Expected library album %s, got %s", platform.AppAlbumName, dir)
	}

	settings.SetLibraryDirectory("/custom/pictures")
	if got := settings.GetLibraryDirectory(); got != "/custom/pictures" {
		t.Errorf("Expected /custom/pictures, got %s", got)
	}
}

func TestFontsDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetFontsDirectory(); dir != "" {
		t.Errorf("Expected no fonts directory by default, got %s", dir)
	}

	settings.SetFontsDirectory("/fonts")
	if dir := settings.GetFontsDirectory(); dir != "/fonts" {
		t.Errorf("Expected /fonts, got %s", dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestBooleanToggles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetCropOnPick() != DefaultCropOnPick {
		t.Error("Unexpected crop default")
	}
	if settings.GetConfirmSaving() != DefaultConfirmSaving {
		t.Error("Unexpected confirm default")
	}

	settings.SetCropOnPick(false)
	settings.SetConfirmSaving(false)

	if settings.GetCropOnPick() {
		t.Error("Crop should be disabled")
	}
	if settings.GetConfirmSaving() {
		t.Error("Confirm should be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
