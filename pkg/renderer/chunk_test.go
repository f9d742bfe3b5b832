package renderer

import (
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name           string
		height, rows   int
		expectedChunks int
		lastRows       int
	}{
		{"exact", 8, 2, 4, 2},
		{"remainder", 7, 2, 4, 1},
		{"single chunk", 3, 10, 1, 3},
		{"one row each", 5, 1, 5, 1},
		{"non-positive rows", 3, 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitRows(tt.height, tt.rows)
			if len(chunks) != tt.expectedChunks {
				t.Fatalf("Expected %d chunks, got %d", tt.expectedChunks, len(chunks))
			}

			// Chunks are contiguous, disjoint and cover every row
			next := 0
			for i, chunk := range chunks {
				if chunk.Index != i {
					t.Errorf("Expected index %d, got %d", i, chunk.Index)
				}
				if chunk.StartRow != next {
					t.Errorf("Chunk %d starts at %d, expected %d", i, chunk.StartRow, next)
				}
				next = chunk.EndRow
			}
			if next != tt.height {
				t.Errorf("Chunks end at row %d, expected %d", next, tt.height)
			}
			if last := chunks[len(chunks)-1]; last.Rows() != tt.lastRows {
				t.Errorf("Expected last chunk of %d rows, got %d", tt.lastRows, last.Rows())
			}
		})
	}
}

func TestChunkSeedUnique(t *testing.T) {
	const numChunks = 13
	seen := make(map[int64]bool)
	for pass := 0; pass < 5; pass++ {
		for chunk := 0; chunk < numChunks; chunk++ {
			seed := ChunkSeed(42, pass, numChunks, chunk)
			if seen[seed] {
				t.Fatalf("Seed %d reused at pass %d chunk %d", seed, pass, chunk)
			}
			seen[seed] = true
		}
	}
}

func TestFrame(t *testing.T) {
	frame := NewFrame(3, 2)
	frame.Rows(1, 2)[2] = core.NewVec3(4, 8, 12)
	frame.Samples = 4

	if !frame.At(2, 1).Equals(core.NewVec3(4, 8, 12)) {
		t.Errorf("Expected row slice to alias the frame, got %v", frame.At(2, 1))
	}
	if !frame.Color(2, 1).Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("Expected averaged color (1,2,3), got %v", frame.Color(2, 1))
	}

	clone := frame.Clone()
	frame.Add(clone)
	if frame.Samples != 8 || !frame.At(2, 1).Equals(core.NewVec3(8, 16, 24)) {
		t.Errorf("Unexpected frame after Add: samples %d, pixel %v", frame.Samples, frame.At(2, 1))
	}
	if clone.Samples != 4 || !clone.At(2, 1).Equals(core.NewVec3(4, 8, 12)) {
		t.Error("Expected clone to be independent of the original")
	}

	frame.Reset()
	if frame.Samples != 0 || !frame.At(2, 1).Equals(core.Vec3{}) {
		t.Error("Expected reset frame to be empty")
	}
	if !frame.Color(0, 0).Equals(core.Vec3{}) {
		t.Error("Expected zero color with no samples")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"no samples", func(c *Config) { c.SamplesPerPixel = 0 }, true},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, true},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, false},
		{"no chunk rows", func(c *Config) { c.ChunkRows = 0 }, true},
		{"negative workers", func(c *Config) { c.NumWorkers = -2 }, true},
		{"negative aspect", func(c *Config) { c.AspectRatio = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Width != 800 || config.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel != 10 || config.MaxDepth != 64 || config.ChunkRows != 2 {
		t.Errorf("Unexpected sampling defaults %+v", config)
	}
	if !config.UseBVH {
		t.Error("Expected BVH enabled by default")
	}
	if config.CameraAspect() != 800.0/600.0 {
		t.Errorf("Expected aspect from image size, got %f", config.CameraAspect())
	}

	config.AspectRatio = 2
	if config.CameraAspect() != 2 {
		t.Errorf("Expected explicit aspect 2, got %f", config.CameraAspect())
	}
}
