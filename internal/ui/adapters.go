package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mememe-app/mememe/internal/editor"
	"github.com/mememe-app/mememe/internal/model"
)

// CaptionEntry is a single-line caption input that reports focus changes
type CaptionEntry struct {
	widget.Entry

	style model.CaptionStyle

	OnFocusGained func(*CaptionEntry)
	OnFocusLost   func(*CaptionEntry)
}

var _ editor.CaptionField = (*CaptionEntry)(nil)

// NewCaptionEntry creates a centered, bold caption entry
func NewCaptionEntry() *CaptionEntry {
	e := &CaptionEntry{}
	e.ExtendBaseWidget(e)
	e.TextStyle = fyne.TextStyle{Bold: true}
	e.Wrapping = fyne.TextWrapOff
	return e
}

// CaptionText returns the current text
func (e *CaptionEntry) CaptionText() string {
	return e.Text
}

// ApplyStyle records the caption style and mirrors what the entry can show of it
func (e *CaptionEntry) ApplyStyle(style model.CaptionStyle) {
	e.style = style
	name := strings.ToLower(style.FontName)
	e.TextStyle = fyne.TextStyle{
		Bold:      true,
		Italic:    strings.Contains(name, "italic"),
		Monospace: strings.Contains(name, "mono"),
	}
	e.Refresh()
}

// CaptionStyle returns the last applied style
func (e *CaptionEntry) CaptionStyle() model.CaptionStyle {
	return e.style
}

// FocusGained implements fyne.Focusable
func (e *CaptionEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.OnFocusGained != nil {
		e.OnFocusGained(e)
	}
}

// FocusLost implements fyne.Focusable
func (e *CaptionEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.OnFocusLost != nil {
		e.OnFocusLost(e)
	}
}

// Dialogs presents editor dialogs as Fyne dialogs on a window
type Dialogs struct {
	window fyne.Window
}

var _ editor.Dialogs = (*Dialogs)(nil)

// NewDialogs creates dialogs parented to window
func NewDialogs(window fyne.Window) *Dialogs {
	return &Dialogs{window: window}
}

// Present shows a message with a single dismiss button
func (d *Dialogs) Present(dlg editor.Dialog) {
	button := "OK"
	if len(dlg.Buttons) > 0 {
		button = dlg.Buttons[0]
	}
	message := widget.NewLabel(dlg.Message)
	message.Wrapping = fyne.TextWrapWord
	dialog.NewCustom(dlg.Title, button, message, d.window).Show()
}

// Confirm shows a two-button question; the first button confirms
func (d *Dialogs) Confirm(dlg editor.Dialog, onChoice func(bool)) {
	c := dialog.NewConfirm(dlg.Title, dlg.Message, onChoice, d.window)
	if len(dlg.Buttons) > 0 {
		c.SetConfirmText(dlg.Buttons[0])
	}
	if len(dlg.Buttons) > 1 {
		c.SetDismissText(dlg.Buttons[1])
	}
	c.Show()
}

// WindowKeyboard dismisses the keyboard by clearing the window's focus
type WindowKeyboard struct {
	window fyne.Window
	// dismissing guards against the FocusLost that Unfocus triggers
	dismissing bool
}

// NewWindowKeyboard creates a keyboard for window
func NewWindowKeyboard(window fyne.Window) *WindowKeyboard {
	return &WindowKeyboard{window: window}
}

// Dismiss unfocuses the active entry, which hides a virtual keyboard
func (k *WindowKeyboard) Dismiss() {
	if k.dismissing || k.window.Canvas().Focused() == nil {
		return
	}
	k.dismissing = true
	defer func() { k.dismissing = false }()
	k.window.Canvas().Unfocus()
}
