// Package ui contains the Fyne user interface of the meme editor. It provides
// the Fyne implementations of the editor's platform interfaces (caption
// entries, toolbar buttons, dialogs, the photo picker and the share surface)
// and lays them out on a single screen. All UI strings are localized via
// Localization.
package ui
