package render

import (
	"fmt"
	"image"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/mememe-app/mememe/internal/model"
)

const (
	dpi           = 72.0 // one point per pixel
	captionMargin = 12   // padding from the canvas edge
	minFontSize   = 10.0
	outlineSteps  = 16 // samples around the outline circle
)

// CaptionPosition anchors a caption to the top or bottom edge
type CaptionPosition int

const (
	CaptionTop CaptionPosition = iota
	CaptionBottom
)

// drawCaption draws text centered horizontally near the given edge, outline
// first, then fill.
func drawCaption(dst *image.RGBA, f *truetype.Font, style model.CaptionStyle, text string, pos CaptionPosition) error {
	if text == "" {
		return nil
	}

	bounds := dst.Bounds()
	size := fitFontSize(f, style.FontSize, text, bounds.Dx()-2*captionMargin)

	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()

	x := bounds.Min.X + (bounds.Dx()-width)/2
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	var y int
	switch pos {
	case CaptionTop:
		y = bounds.Min.Y + captionMargin + metrics.Ascent.Ceil()
	default:
		y = bounds.Max.Y - captionMargin - metrics.Descent.Ceil()
	}

	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetClip(bounds)
	c.SetDst(dst)
	c.SetHinting(font.HintingFull)

	origin := freetype.Pt(x, y)

	// Scale the outline with the font when the caption had to shrink.
	radius := style.OutlineRadius()
	if style.FontSize > 0 {
		radius *= size / style.FontSize
	}
	if radius > 0 && style.StrokeColor != nil {
		c.SetSrc(image.NewUniform(style.StrokeColor))
		for _, off := range outlineOffsets(radius) {
			p := fixed.Point26_6{X: origin.X + off.X, Y: origin.Y + off.Y}
			if _, err := c.DrawString(text, p); err != nil {
				return fmt.Errorf("drawing outline at offset %v: %w", off, err)
			}
		}
	}

	if style.Fills() && style.FillColor != nil {
		c.SetSrc(image.NewUniform(style.FillColor))
		if _, err := c.DrawString(text, origin); err != nil {
			return fmt.Errorf("drawing fill: %w", err)
		}
	}
	return nil
}

// fitFontSize shrinks size until text fits in avail pixels, bottoming out at minFontSize
func fitFontSize(f *truetype.Font, size float64, text string, avail int) float64 {
	if size <= 0 {
		size = model.DefaultFontSize
	}
	if avail <= 0 {
		return minFontSize
	}
	width := measureString(f, size, text)
	if width <= avail {
		return size
	}
	scaled := math.Floor(size * float64(avail) / float64(width))
	if scaled < minFontSize {
		return minFontSize
	}
	return scaled
}

// measureString returns the advance width of text in pixels
func measureString(f *truetype.Font, size float64, text string) int {
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
	return font.MeasureString(face, text).Ceil()
}

// outlineOffsets samples a circle of the given radius, in 26.6 fixed point
func outlineOffsets(radius float64) []fixed.Point26_6 {
	offsets := make([]fixed.Point26_6, 0, outlineSteps)
	for i := 0; i < outlineSteps; i++ {
		a := 2 * math.Pi * float64(i) / outlineSteps
		offsets = append(offsets, fixed.Point26_6{
			X: fixed.Int26_6(math.Round(radius * math.Cos(a) * 64)),
			Y: fixed.Int26_6(math.Round(radius * math.Sin(a) * 64)),
		})
	}
	return offsets
}
