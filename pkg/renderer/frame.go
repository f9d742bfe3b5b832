package renderer

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Frame holds accumulated radiance for every pixel. Pixels are row-major and
// row 0 is the bottom of the image. Values are sums over Samples samples.
type Frame struct {
	Width   int
	Height  int
	Samples int
	Pixels  []core.Vec3
}

// NewFrame creates an empty frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the accumulated radiance of a pixel
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Color returns the average radiance of a pixel
func (f *Frame) Color(x, y int) core.Vec3 {
	if f.Samples == 0 {
		return core.Vec3{}
	}
	return f.At(x, y).Multiply(1.0 / float64(f.Samples))
}

// Rows returns the slice of pixels covering rows [start, end)
func (f *Frame) Rows(start, end int) []core.Vec3 {
	return f.Pixels[start*f.Width : end*f.Width]
}

// Add accumulates other into the frame. Both frames must have the same size.
func (f *Frame) Add(other *Frame) {
	for i := range f.Pixels {
		f.Pixels[i] = f.Pixels[i].Add(other.Pixels[i])
	}
	f.Samples += other.Samples
}

// Reset clears all accumulated radiance
func (f *Frame) Reset() {
	for i := range f.Pixels {
		f.Pixels[i] = core.Vec3{}
	}
	f.Samples = 0
}

// Clone returns a deep copy of the frame
func (f *Frame) Clone() *Frame {
	clone := &Frame{
		Width:   f.Width,
		Height:  f.Height,
		Samples: f.Samples,
		Pixels:  make([]core.Vec3, len(f.Pixels)),
	}
	copy(clone.Pixels, f.Pixels)
	return clone
}
