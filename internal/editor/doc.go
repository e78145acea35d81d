package editor

// Package editor is the meme screen's controller, free of any widget toolkit.
// It owns caption editing, font selection, image acquisition, capture and the
// share flow, and reaches the platform only through the small interfaces in
// platform.go. The ui package supplies Fyne implementations; tests supply fakes.
