package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ImageSink receives the final color of each rendered pixel
type ImageSink interface {
	Bounds() image.Rectangle
	SetColor(x, y int, c core.Vec3)
}

// FrameBuffer is a persistent linear RGB image. Rows written by different
// goroutines never overlap, so concurrent row rendering needs no locking.
type FrameBuffer struct {
	width, height int
	pixels        []core.Vec3
	Exposure      float64 // Gain applied when converting to 8-bit (0 or 1 = none)
}

// NewFrameBuffer creates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Bounds returns the pixel rectangle of the buffer
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// SetColor stores c at (x, y); writes outside the buffer are ignored
func (fb *FrameBuffer) SetColor(x, y int, c core.Vec3) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = c
}

// Color returns the stored color at (x, y)
func (fb *FrameBuffer) Color(x, y int) core.Vec3 {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return core.Vec3{}
	}
	return fb.pixels[y*fb.width+x]
}

// Clear resets every pixel to black
func (fb *FrameBuffer) Clear() {
	clear(fb.pixels)
}

// Image converts the buffer to 8-bit RGBA without gamma correction
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, fb.toRGBA(fb.pixels[y*fb.width+x]))
		}
	}
	return img
}

// toRGBA scales a color to 8 bits, truncating like a float-to-byte conversion
func (fb *FrameBuffer) toRGBA(c core.Vec3) color.RGBA {
	if fb.Exposure > 0 && fb.Exposure != 1 {
		c = c.Multiply(fb.Exposure)
	}
	c = c.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}
