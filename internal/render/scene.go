package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/mememe-app/mememe/internal/fonts"
	"github.com/mememe-app/mememe/internal/model"
)

// ErrEmptyCanvas is returned when a scene has no drawable area
var ErrEmptyCanvas = errors.New("canvas has zero size")

// DefaultBackground is painted behind the photo and shows through letterboxing
var DefaultBackground color.Color = color.Black

// Scene is everything visible on the canvas at capture time
type Scene struct {
	Size       image.Point
	Background color.Color
	Source     image.Image // nil when no photo was picked
	TopText    string
	BottomText string
	Style      model.CaptionStyle
}

// Flatten draws the scene into a new RGBA bitmap of s.Size
func Flatten(s Scene, resolver fonts.Resolver) (*image.RGBA, error) {
	if s.Size.X <= 0 || s.Size.Y <= 0 {
		return nil, fmt.Errorf("flatten %dx%d: %w", s.Size.X, s.Size.Y, ErrEmptyCanvas)
	}

	dst := image.NewRGBA(image.Rect(0, 0, s.Size.X, s.Size.Y))
	bg := s.Background
	if bg == nil {
		bg = DefaultBackground
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if s.Source != nil {
		drawFitted(dst, s.Source)
	}

	if s.TopText == "" && s.BottomText == "" {
		return dst, nil
	}

	f, err := resolver.Resolve(s.Style.FontName)
	if err != nil {
		return nil, fmt.Errorf("flatten captions: %w", err)
	}
	if err := drawCaption(dst, f, s.Style, s.TopText, CaptionTop); err != nil {
		return nil, fmt.Errorf("drawing top caption: %w", err)
	}
	if err := drawCaption(dst, f, s.Style, s.BottomText, CaptionBottom); err != nil {
		return nil, fmt.Errorf("drawing bottom caption: %w", err)
	}
	return dst, nil
}

// FitRect returns the largest rectangle with src's aspect ratio centered in bounds
func FitRect(bounds image.Rectangle, src image.Point) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 {
		return image.Rectangle{}
	}
	bw, bh := bounds.Dx(), bounds.Dy()
	w, h := bw, src.Y*bw/src.X
	if h > bh {
		w, h = src.X*bh/src.Y, bh
	}
	x := bounds.Min.X + (bw-w)/2
	y := bounds.Min.Y + (bh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// drawFitted scales src to fit dst, preserving aspect ratio
func drawFitted(dst *image.RGBA, src image.Image) {
	r := FitRect(dst.Bounds(), src.Bounds().Size())
	if r.Empty() {
		return
	}
	xdraw.CatmullRom.Scale(dst, r, src, src.Bounds(), xdraw.Over, nil)
}
