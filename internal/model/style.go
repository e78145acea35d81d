package model

import "image/color"

// Default caption styling
const (
	DefaultFontSize    = 40.0
	DefaultStrokeWidth = -3.0
)

// CaptionStyle describes how both captions are drawn. It is a value type:
// changing the font produces a new style and leaves the receiver untouched.
type CaptionStyle struct {
	StrokeColor color.Color
	FillColor   color.Color
	// StrokeWidth follows the attributed-string convention: a percentage of
	// the font size, negative meaning stroke and fill, positive stroke only.
	StrokeWidth float64
	FontName    string
	FontSize    float64
}

// NewCaptionStyle returns the default meme styling with the given font:
// black stroke, white fill, stroke width -3 and size 40.
func NewCaptionStyle(fontName string) CaptionStyle {
	return CaptionStyle{
		StrokeColor: color.Black,
		FillColor:   color.White,
		StrokeWidth: DefaultStrokeWidth,
		FontName:    fontName,
		FontSize:    DefaultFontSize,
	}
}

// WithFont returns a copy of the style using the named font at the default size
func (s CaptionStyle) WithFont(fontName string) CaptionStyle {
	s.FontName = fontName
	s.FontSize = DefaultFontSize
	return s
}

// Fills reports whether the glyph interiors are painted
func (s CaptionStyle) Fills() bool {
	return s.StrokeWidth <= 0
}

// OutlineRadius returns the outline thickness in points
func (s CaptionStyle) OutlineRadius() float64 {
	w := s.StrokeWidth
	if w < 0 {
		w = -w
	}
	r := w / 100 * s.FontSize
	if w > 0 && r < 1 {
		r = 1
	}
	return r
}
