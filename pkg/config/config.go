package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// Config is the on-disk render configuration
type Config struct {
	Scene        string     `json:"scene"`         // Built-in scene name or path to a scene file
	AmbientColor [3]float64 `json:"ambient_color"` // Sky color
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	AspectRatio  float64    `json:"aspect_ratio"` // 0 derives the ratio from width and height
	Samples      int        `json:"samples"`      // Samples per pixel
	TTL          int        `json:"ttl"`          // Maximum bounces per path
	ChunkSize    int        `json:"chunk_size"`   // Rows per work chunk
	BVHEnabled   *bool      `json:"bvh_enabled"`
	Seed         int64      `json:"seed"`
	Workers      int        `json:"workers"` // 0 uses every CPU
}

// Default returns the configuration used when no file is present
func Default() Config {
	defaults := renderer.DefaultConfig()
	enabled := defaults.UseBVH
	return Config{
		Scene:        "random-spheres",
		AmbientColor: [3]float64{defaults.Ambient.X, defaults.Ambient.Y, defaults.Ambient.Z},
		Width:        defaults.Width,
		Height:       defaults.Height,
		Samples:      defaults.SamplesPerPixel,
		TTL:          defaults.MaxDepth,
		ChunkSize:    defaults.ChunkRows,
		BVHEnabled:   &enabled,
		Seed:         defaults.Seed,
	}
}

// Load reads the configuration at path. A missing file yields Default().
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	config, err := Read(file)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return config, nil
}

// Read decodes a JSON configuration on top of Default(). Omitted keys keep
// their defaults; keys present in the input win, zero values included.
func Read(r io.Reader) (Config, error) {
	config := Default()
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// RenderConfig converts the file configuration into renderer settings
func (c Config) RenderConfig() renderer.Config {
	useBVH := true
	if c.BVHEnabled != nil {
		useBVH = *c.BVHEnabled
	}
	return renderer.Config{
		Width:           c.Width,
		Height:          c.Height,
		SamplesPerPixel: c.Samples,
		MaxDepth:        c.TTL,
		Ambient:         core.NewVec3(c.AmbientColor[0], c.AmbientColor[1], c.AmbientColor[2]),
		ChunkRows:       c.ChunkSize,
		UseBVH:          useBVH,
		NumWorkers:      c.Workers,
		Seed:            c.Seed,
		AspectRatio:     c.AspectRatio,
	}
}
