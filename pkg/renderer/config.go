package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Config contains rendering configuration
type Config struct {
	Width           int       // Image width in pixels
	Height          int       // Image height in pixels
	SamplesPerPixel int       // Number of rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	Ambient         core.Vec3 // Sky color, also used for paths that run out of bounces
	ChunkRows       int       // Rows per work chunk
	UseBVH          bool      // Intersect through a BVH instead of a linear scan
	NumWorkers      int       // Number of parallel workers (0 = use CPU count)
	Seed            int64     // Base seed for BVH construction and per-chunk samplers
	AspectRatio     float64   // Camera aspect ratio (0 = Width/Height)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 10,
		MaxDepth:        64,
		Ambient:         core.NewVec3(0.5, 0.7, 1.0),
		ChunkRows:       2,
		UseBVH:          true,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            42,
	}
}

// Validate reports configuration values that cannot be rendered
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.ChunkRows <= 0 {
		return fmt.Errorf("chunk rows must be positive, got %d", c.ChunkRows)
	}
	if c.NumWorkers < 0 {
		return errors.New("number of workers must not be negative")
	}
	if c.AspectRatio < 0 {
		return fmt.Errorf("aspect ratio must not be negative, got %f", c.AspectRatio)
	}
	return nil
}

// CameraAspect returns the aspect ratio the camera should use
func (c Config) CameraAspect() float64 {
	if c.AspectRatio > 0 {
		return c.AspectRatio
	}
	return float64(c.Width) / float64(c.Height)
}
