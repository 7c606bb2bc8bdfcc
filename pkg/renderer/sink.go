package renderer

import (
	"image"
	"image/color"

	"github.com/EpikSushi21/CSE287/pkg/core"
)

// ImageSink is a FrameSink backed by an image.RGBA. The sink's pixel origin
// is the bottom left corner, so rows are flipped when writing into the
// top-left-origin image.
type ImageSink struct {
	img   *image.RGBA
	gamma float64
}

// NewImageSink creates an image-backed frame sink with gamma 2.0 output
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		gamma: 2.0,
	}
}

// SetGamma overrides the output gamma. Use 1.0 for linear output.
func (s *ImageSink) SetGamma(gamma float64) {
	s.gamma = gamma
}

// Width returns the sink width in pixels
func (s *ImageSink) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the sink height in pixels
func (s *ImageSink) Height() int {
	return s.img.Rect.Dy()
}

// SetPixel writes a color at (x, y) in bottom-left-origin coordinates
func (s *ImageSink) SetPixel(x, y int, c core.Vec3) {
	s.img.SetRGBA(x, s.Height()-1-y, s.vec3ToColor(c))
}

// Image returns the rendered image
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and
// clamping
func (s *ImageSink) vec3ToColor(colorVec core.Vec3) color.RGBA {
	if s.gamma != 1.0 {
		colorVec = colorVec.GammaCorrect(s.gamma)
	}
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
