package renderer

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled render by the given integer factor
// using Catmull-Rom filtering. A factor <= 1 returns the image unchanged.
func Downsample(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
