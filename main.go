package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/mememe-app/mememe/internal/config"
	"github.com/mememe-app/mememe/internal/fonts"
	"github.com/mememe-app/mememe/internal/gallery"
	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/platform"
	"github.com/mememe-app/mememe/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.mememe-app.mememe"
	AppName = "MemeMe"

	WindowWidth  = 480
	WindowHeight = 720
)

func main() {
	fmt.Printf("MemeMe v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewMemeTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	// Bundled fonts first, then anything the user dropped into the fonts folder
	registry := fonts.NewDefaultRegistry()
	names := append([]string{}, model.DefaultFontNames...)
	if dir := settings.GetFontsDirectory(); dir != "" {
		loaded, err := registry.LoadDir(dir)
		if err != nil {
			log.Printf("failed to load fonts from %s: %v", dir, err)
		}
		names = append(names, loaded...)
	}

	galleryDir := settings.GetGalleryDirectory()
	if err := platform.CreateDirectoryIfNotExists(galleryDir); err != nil {
		log.Printf("failed to ensure gallery dir: %v", err)
	}

	services := ui.Services{
		Fonts:        registry,
		Catalog:      model.NewFontCatalog(names...),
		Gallery:      gallery.NewStore(galleryDir),
		Capabilities: platform.NewCapabilities(platform.NewCamera()),
	}

	ui.NewRootUI(myWindow, myApp, settings, services)

	myWindow.ShowAndRun()
}
