package output

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

func TestToImageAveragesAndFlips(t *testing.T) {
	frame := renderer.NewFrame(2, 2)
	frame.Samples = 4
	frame.Pixels[0] = core.NewVec3(4, 0, 0)   // bottom-left, red after averaging
	frame.Pixels[3] = core.NewVec3(0, 0, 2)   // top-right, half blue
	frame.Pixels[1] = core.NewVec3(-1, 8, 40) // out of range, clamped

	img := ToImage(frame, 1)

	tests := []struct {
		name     string
		x, y     int
		expected color.RGBA
	}{
		{"Bottom row lands at the bottom", 0, 1, color.RGBA{255, 0, 0, 255}},
		{"Top row lands at the top", 1, 0, color.RGBA{0, 0, 127, 255}},
		{"Values are clamped", 1, 1, color.RGBA{0, 255, 255, 255}},
		{"Black stays black", 0, 0, color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestToImageGamma(t *testing.T) {
	frame := renderer.NewFrame(1, 1)
	frame.Samples = 1
	frame.Pixels[0] = core.NewVec3(0.25, 0.25, 0.25)

	// sqrt(0.25) = 0.5
	got := ToImage(frame, DefaultGamma).RGBAAt(0, 0)
	if got.R != 127 || got.G != 127 || got.B != 127 {
		t.Errorf("Expected gamma corrected value 127, got %v", got)
	}
}

func TestToImageEmptyFrame(t *testing.T) {
	frame := renderer.NewFrame(3, 2)

	img := ToImage(frame, DefaultGamma)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black for a frame without samples, got %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.png")

	frame := renderer.NewFrame(4, 3)
	frame.Samples = 1
	for i := range frame.Pixels {
		frame.Pixels[i] = core.NewVec3(1, 1, 1)
	}

	if err := WritePNG(path, frame); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected file to exist: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode written png: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("Expected 4x3 image, got %v", img.Bounds())
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected white pixel, got %d %d %d", r>>8, g>>8, b>>8)
	}
}

// closeRecorder buffers writes and fails on Close when closeErr is set
type closeRecorder struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestEncodePNGReportsCloseError(t *testing.T) {
	frame := renderer.NewFrame(2, 2)
	diskFull := errors.New("disk full")

	tests := []struct {
		name     string
		closeErr error
	}{
		{"close succeeds", nil},
		{"close fails", diskFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &closeRecorder{closeErr: tt.closeErr}
			err := encodePNG(w, frame)

			if !w.closed {
				t.Error("Expected writer to be closed")
			}
			if w.Len() == 0 {
				t.Error("Expected encoded bytes before close")
			}
			if tt.closeErr == nil && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if tt.closeErr != nil && !errors.Is(err, tt.closeErr) {
				t.Errorf("Expected %v, got %v", tt.closeErr, err)
			}
		})
	}
}

func TestWritePNGIntoDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	if err := WritePNG(dir, renderer.NewFrame(1, 1)); err == nil {
		t.Error("Expected error when the output path is a directory")
	}
}
