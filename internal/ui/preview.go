package ui

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Preview shows the flattened meme. It holds the picked photo for the editor
// and displays whatever bitmap was last rendered from it.
type Preview struct {
	widget.BaseWidget

	display *canvas.Image
	source  image.Image

	// OnTapped runs on a tap; the screen uses it to dismiss the keyboard
	OnTapped func()
	// OnLongPress runs on a long press or a secondary tap
	OnLongPress func()
	// OnResized runs when the preview changes size
	OnResized func()
}

var (
	_ fyne.Tappable          = (*Preview)(nil)
	_ fyne.SecondaryTappable = (*Preview)(nil)
)

// NewPreview creates an empty preview
func NewPreview() *Preview {
	p := &Preview{display: canvas.NewImageFromImage(nil)}
	p.display.FillMode = canvas.ImageFillContain
	p.display.ScaleMode = canvas.ImageScaleSmooth
	p.display.SetMinSize(fyne.NewSize(DefaultCanvasWidth/2, DefaultCanvasHeight/2))
	p.ExtendBaseWidget(p)
	return p
}

// Image returns the picked photo, nil when none was picked
func (p *Preview) Image() image.Image {
	return p.source
}

// SetImage replaces the picked photo
func (p *Preview) SetImage(img image.Image) {
	p.source = img
}

// ShowRendered displays a rendered bitmap
func (p *Preview) ShowRendered(img image.Image) {
	p.display.Image = img
	p.display.Refresh()
}

// Rendered returns the bitmap on display
func (p *Preview) Rendered() image.Image {
	return p.display.Image
}

// PixelSize returns the preview size in device pixels
func (p *Preview) PixelSize() image.Point {
	size := p.Size()
	if size.Width <= 0 || size.Height <= 0 {
		size = fyne.NewSize(DefaultCanvasWidth, DefaultCanvasHeight)
	}

	scale := float32(1)
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(p); c != nil {
			scale = c.Scale()
		}
	}
	return image.Pt(
		int(math.Round(float64(size.Width*scale))),
		int(math.Round(float64(size.Height*scale))),
	)
}

// Resize also re-renders through OnResized
func (p *Preview) Resize(size fyne.Size) {
	changed := size != p.Size()
	p.BaseWidget.Resize(size)
	if changed && p.OnResized != nil {
		p.OnResized()
	}
}

// CreateRenderer implements fyne.Widget
func (p *Preview) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.display)
}

// Tapped implements fyne.Tappable
func (p *Preview) Tapped(*fyne.PointEvent) {
	if p.OnTapped != nil {
		p.OnTapped()
	}
}

// TappedSecondary implements fyne.SecondaryTappable. Mobile drivers deliver a
// long press as a secondary tap.
func (p *Preview) TappedSecondary(*fyne.PointEvent) {
	if p.OnLongPress != nil {
		p.OnLongPress()
	}
}
