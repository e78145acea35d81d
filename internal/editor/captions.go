package editor

import (
	"fmt"
	"log"

	"github.com/mememe-app/mememe/internal/fonts"
	"github.com/mememe-app/mememe/internal/model"
)

// CaptionEditor manages the two caption fields: placeholder clearing,
// keyboard dismissal, shared styling and keyboard avoidance.
type CaptionEditor struct {
	top      CaptionField
	bottom   CaptionField
	keyboard Keyboard
	resolver fonts.Resolver
	style    model.CaptionStyle

	// offset is the vertical shift of the visible frame; negative moves it up
	offset      float32
	unsubscribe func()

	// OnOffsetChanged is called whenever keyboard avoidance moves the frame
	OnOffsetChanged func(offset float32)
}

// NewCaptionEditor creates an editor over the two fields, styled with style
func NewCaptionEditor(top, bottom CaptionField, keyboard Keyboard, resolver fonts.Resolver, style model.CaptionStyle) *CaptionEditor {
	return &CaptionEditor{
		top:      top,
		bottom:   bottom,
		keyboard: keyboard,
		resolver: resolver,
		style:    style,
	}
}

// ResetText puts the placeholders back in both fields
func (e *CaptionEditor) ResetText() {
	e.top.SetText(TopPlaceholder)
	e.bottom.SetText(BottomPlaceholder)
}

// FocusGained clears field if it still shows its placeholder
func (e *CaptionEditor) FocusGained(field CaptionField) {
	if field.CaptionText() == e.placeholder(field) {
		field.SetText("")
	}
}

// FocusLost dismisses the keyboard
func (e *CaptionEditor) FocusLost(field CaptionField) {
	e.dismissKeyboard()
}

// Submit handles the return key
func (e *CaptionEditor) Submit(field CaptionField) {
	e.dismissKeyboard()
}

// Captions returns the live text of both fields
func (e *CaptionEditor) Captions() (top, bottom string) {
	return e.top.CaptionText(), e.bottom.CaptionText()
}

// Style returns the style currently applied to both captions
func (e *CaptionEditor) Style() model.CaptionStyle {
	return e.style
}

// ApplyStyle applies style to both captions. If its font cannot be resolved
// the current style stays in place and the error is returned.
func (e *CaptionEditor) ApplyStyle(style model.CaptionStyle) error {
	if e.resolver == nil {
		return fmt.Errorf("apply caption style: no font resolver")
	}
	if _, err := e.resolver.Resolve(style.FontName); err != nil {
		return fmt.Errorf("apply caption style: %w", err)
	}

	e.style = style
	e.top.ApplyStyle(style)
	e.bottom.ApplyStyle(style)
	return nil
}

// Subscribe starts reacting to keyboard events. It is a no-op while already subscribed.
func (e *CaptionEditor) Subscribe(n *KeyboardNotifier) {
	if e.unsubscribe != nil || n == nil {
		return
	}
	e.unsubscribe = n.Subscribe(e.onKeyboard)
}

// Unsubscribe stops reacting to keyboard events
func (e *CaptionEditor) Unsubscribe() {
	if e.unsubscribe == nil {
		return
	}
	e.unsubscribe()
	e.unsubscribe = nil
}

// Subscribed reports whether keyboard events are being handled
func (e *CaptionEditor) Subscribed() bool {
	return e.unsubscribe != nil
}

// Offset returns the current vertical shift of the visible frame
func (e *CaptionEditor) Offset() float32 {
	return e.offset
}

func (e *CaptionEditor) onKeyboard(ev KeyboardEvent) {
	if ev.Visible {
		e.offset -= ev.Height
	} else if e.offset+ev.Height <= 0 {
		e.offset += ev.Height
	} else {
		return
	}
	log.Printf("Frame offset %.0f", e.offset)
	if e.OnOffsetChanged != nil {
		e.OnOffsetChanged(e.offset)
	}
}

func (e *CaptionEditor) dismissKeyboard() {
	if e.keyboard != nil {
		e.keyboard.Dismiss()
	}
}

func (e *CaptionEditor) placeholder(field CaptionField) string {
	switch field {
	case e.top:
		return TopPlaceholder
	case e.bottom:
		return BottomPlaceholder
	}
	return ""
}
