package renderer

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// FrameBuffer holds one unclamped color per pixel. Rows are stored top to
// bottom, the way image files expect them.
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []mgl64.Vec4
}

// NewFrameBuffer allocates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]mgl64.Vec4, width*height),
	}
}

// SetColor stores the color for renderer pixel (ix, iy). The renderer counts
// iy from the bottom, so the row is inverted here.
func (fb *FrameBuffer) SetColor(ix, iy int, c mgl64.Vec4) {
	row := fb.Height - iy - 1
	fb.Pixels[row*fb.Width+ix] = c
}

// At returns the color at image coordinates (x, y), with y=0 the top row
func (fb *FrameBuffer) At(x, y int) mgl64.Vec4 {
	return fb.Pixels[y*fb.Width+x]
}

// Quantize maps a linear channel value to 8 bits: clamp to [0,1] and scale
// by 255.9.
func Quantize(channel float64) uint8 {
	v := core.Clamp01(channel) * 255.9
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// RGBA returns the display color of image pixel (x, y)
func (fb *FrameBuffer) RGBA(x, y int) color.RGBA {
	c := fb.At(x, y)
	return color.RGBA{
		R: Quantize(c[0]),
		G: Quantize(c[1]),
		B: Quantize(c[2]),
		A: 255,
	}
}

// Image converts the frame buffer to an 8-bit image
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.RGBA(x, y))
		}
	}
	return img
}
