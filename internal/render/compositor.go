package render

import (
	"errors"
	"fmt"
	"image"
)

// ErrFlattenPanic wraps a panic raised while flattening
var ErrFlattenPanic = errors.New("flatten panicked")

// Chrome is screen decoration that must not appear in a capture, such as the
// toolbars. Every fyne.CanvasObject satisfies it.
type Chrome interface {
	Show()
	Hide()
	Visible() bool
}

// FlattenFunc produces the bitmap of what is currently visible
type FlattenFunc func() (image.Image, error)

// Compositor captures the canvas with the chrome hidden
type Compositor struct {
	flatten FlattenFunc
	chrome  []Chrome
}

// NewCompositor creates a compositor that hides chrome around each flatten call
func NewCompositor(flatten FlattenFunc, chrome ...Chrome) *Compositor {
	return &Compositor{flatten: flatten, chrome: chrome}
}

// Render hides the chrome, flattens, and restores each bar to the visibility it
// had before the call. Restoration also happens when flatten fails or panics.
func (c *Compositor) Render() (img image.Image, err error) {
	if c.flatten == nil {
		return nil, fmt.Errorf("render: no flatten step configured")
	}

	restore := c.hideChrome()
	defer restore()
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("%w: %v", ErrFlattenPanic, r)
		}
	}()

	img, err = c.flatten()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return img, nil
}

// hideChrome hides every bar and returns the function that puts them back
func (c *Compositor) hideChrome() func() {
	was := make([]bool, len(c.chrome))
	for i, bar := range c.chrome {
		was[i] = bar.Visible()
		bar.Hide()
	}
	return func() {
		for i, bar := range c.chrome {
			if was[i] {
				bar.Show()
			} else {
				bar.Hide()
			}
		}
	}
}
