package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// CropToAspect center-crops img to the aspect ratio of target. It is the
// editing step applied to freshly picked photos. A zero target returns img as is.
func CropToAspect(img image.Image, target image.Point) image.Image {
	if img == nil || target.X <= 0 || target.Y <= 0 {
		return img
	}
	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return img
	}

	w, h := size.X, size.X*target.Y/target.X
	if h > size.Y {
		w, h = size.Y*target.X/target.Y, size.Y
	}
	if w == size.X && h == size.Y {
		return img
	}
	return imaging.CropCenter(img, w, h)
}
