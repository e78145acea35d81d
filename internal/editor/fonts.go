package editor

import (
	"log"

	"github.com/mememe-app/mememe/internal/model"
)

// FontSelector drives the font picker list. It implements the list contract
// RowCount / RowLabel / OnSelect consumed by the presentation layer.
type FontSelector struct {
	catalog  model.FontCatalog
	selected int
	visible  bool

	done     Control
	triggers []Control
	// disabled holds the triggers Open switched off, so Confirm restores
	// exactly those.
	disabled []Control

	// OnVisibilityChanged shows or hides the picker list
	OnVisibilityChanged func(visible bool)
}

// NewFontSelector creates a selector over catalog. triggers are the controls
// locked while the picker is open (acquisition buttons and the font button);
// done confirms the choice.
func NewFontSelector(catalog model.FontCatalog, done Control, triggers ...Control) *FontSelector {
	return &FontSelector{
		catalog:  catalog,
		done:     done,
		triggers: triggers,
	}
}

// RowCount returns the number of fonts
func (s *FontSelector) RowCount() int {
	return s.catalog.Len()
}

// RowLabel returns the font name at row i
func (s *FontSelector) RowLabel(i int) string {
	return s.catalog.Name(i)
}

// OnSelect records the highlighted row. Out-of-range rows are clamped.
func (s *FontSelector) OnSelect(i int) {
	s.selected = s.catalog.Clamp(i)
	log.Printf("User chose %s", s.catalog.Name(s.selected))
}

// SelectName highlights the row holding name and reports whether it exists
func (s *FontSelector) SelectName(name string) bool {
	i := s.catalog.Index(name)
	if i < 0 {
		return false
	}
	s.selected = i
	return true
}

// Selected returns the highlighted row
func (s *FontSelector) Selected() int {
	return s.selected
}

// SelectedName returns the highlighted font name
func (s *FontSelector) SelectedName() string {
	return s.catalog.Name(s.selected)
}

// Visible reports whether the picker list is showing
func (s *FontSelector) Visible() bool {
	return s.visible
}

// Open reveals the list and locks the trigger controls
func (s *FontSelector) Open() {
	if s.visible {
		return
	}
	s.visible = true

	s.disabled = s.disabled[:0]
	for _, c := range s.triggers {
		if !c.Disabled() {
			c.Disable()
			s.disabled = append(s.disabled, c)
		}
	}
	if s.done != nil {
		s.done.Enable()
	}
	s.notify()
}

// Confirm hides the list, unlocks the controls Open locked and returns current
// with its font swapped for the highlighted one.
func (s *FontSelector) Confirm(current model.CaptionStyle) model.CaptionStyle {
	if s.visible {
		s.visible = false
		for _, c := range s.disabled {
			c.Enable()
		}
		s.disabled = s.disabled[:0]
		if s.done != nil {
			s.done.Disable()
		}
		s.notify()
	}

	name := s.SelectedName()
	log.Printf("User picked %s", name)
	return current.WithFont(name)
}

// Reset hides the list without choosing, as on first load
func (s *FontSelector) Reset() {
	s.visible = false
	s.disabled = s.disabled[:0]
	if s.done != nil {
		s.done.Disable()
	}
	s.notify()
}

func (s *FontSelector) notify() {
	if s.OnVisibilityChanged != nil {
		s.OnVisibilityChanged(s.visible)
	}
}
