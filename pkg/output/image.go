package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// DefaultGamma is the display gamma applied when writing images
const DefaultGamma = 2.0

// ToImage converts an accumulated frame into an 8-bit image. Each pixel is
// averaged over the frame's samples, gamma corrected and clamped to [0, 1].
// A gamma of 1 or less leaves values linear. Frame row 0 is the bottom of the
// picture, so rows are flipped on the way out.
func ToImage(frame *renderer.Frame, gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))

	for y := 0; y < frame.Height; y++ {
		imageY := frame.Height - 1 - y
		for x := 0; x < frame.Width; x++ {
			c := frame.Color(x, y).Clamp(0, 1)
			if gamma > 1 {
				c = c.GammaCorrect(gamma)
			}
			img.SetRGBA(x, imageY, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}

	return img
}

// toByte maps a value in [0, 1] to [0, 255]
func toByte(v float64) uint8 {
	return uint8(v * 255.999)
}

// WritePNG writes the frame as a gamma corrected PNG, creating any missing
// parent directories
func WritePNG(path string, frame *renderer.Frame) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encodePNG(file, frame); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// encodePNG encodes the frame into w and closes it. A failed Close is
// reported, since buffered data may not have reached the file.
func encodePNG(w io.WriteCloser, frame *renderer.Frame) error {
	if err := png.Encode(w, ToImage(frame, DefaultGamma)); err != nil {
		w.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close: %w", err)
	}
	return nil
}
