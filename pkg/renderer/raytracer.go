package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/log"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

// Raytracer renders a scene into frames. The scene, acceleration structure
// and integrator are built once and shared read-only by every render.
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	world      geometry.Intersector
	bvh        *geometry.BVH // nil when the BVH is disabled
	camera     *Camera
	integrator integrator.Integrator
	logger     log.Logger
}

// NewRaytracer validates the scene and configuration and prepares the world
// for intersection
func NewRaytracer(s *scene.Scene, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	rt := &Raytracer{
		scene:      s,
		config:     config,
		camera:     NewCamera(s.Camera, config.CameraAspect()),
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, config.Ambient),
		logger:     log.New("renderer"),
	}

	if config.UseBVH {
		start := time.Now()
		rt.bvh = geometry.NewBVH(s.Primitives, rand.New(rand.NewSource(config.Seed)))
		rt.world = rt.bvh

		stats := rt.bvh.Stats()
		rt.logger.Infof("built BVH over %d primitives in %v: %d nodes, max depth %d, avg leaf depth %.1f",
			len(s.Primitives), time.Since(start), stats.TotalNodes, stats.MaxDepth, stats.AvgDepth)
	} else {
		rt.world = geometry.PrimitiveList(s.Primitives)
		rt.logger.Infof("BVH disabled, intersecting %d primitives by linear scan", len(s.Primitives))
	}

	return rt, nil
}

// Config returns the render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Camera returns the camera defined by the scene
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// BVHStats returns statistics about the acceleration structure, or false
// when rendering without one
func (rt *Raytracer) BVHStats() (geometry.BVHStats, bool) {
	if rt.bvh == nil {
		return geometry.BVHStats{}, false
	}
	return rt.bvh.Stats(), true
}

// Render renders the scene once with the configured samples per pixel
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	frame := NewFrame(rt.config.Width, rt.config.Height)
	stats, err := rt.renderPass(ctx, rt.camera, frame, 0, rt.config.SamplesPerPixel)
	if err != nil {
		return nil, stats, err
	}
	return frame, stats, nil
}

// renderPass adds samples samples per pixel to frame using parallel workers.
// The chunk seeds depend only on the base seed, the pass and the chunk, so
// the result is identical for any number of workers.
func (rt *Raytracer) renderPass(ctx context.Context, camera *Camera, frame *Frame, pass, samples int) (RenderStats, error) {
	start := time.Now()
	chunks := SplitRows(frame.Height, rt.config.ChunkRows)
	chunkRenderer := NewChunkRenderer(camera, rt.world, rt.scene.Materials, rt.integrator, frame.Width, frame.Height)

	workerPool := NewWorkerPool(rt.config.NumWorkers, len(chunks))
	workerPool.Start(ctx)

	for _, chunk := range chunks {
		workerPool.SubmitTask(ChunkTask{
			TaskID:   chunk.Index,
			Chunk:    chunk,
			Pixels:   frame.Rows(chunk.StartRow, chunk.EndRow),
			Seed:     ChunkSeed(rt.config.Seed, pass, len(chunks), chunk.Index),
			Samples:  samples,
			Renderer: chunkRenderer,
		})
	}

	stats := RenderStats{Workers: workerPool.NumWorkers()}
	var firstErr error
	for i := 0; i < len(chunks); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.add(result.Stats)
	}
	workerPool.Stop()

	if firstErr != nil {
		return stats, firstErr
	}

	frame.Samples += samples
	stats.Elapsed = time.Since(start)
	stats.finalize()

	rt.logger.Debugf("pass %d: %d chunks, %d samples/pixel on %d workers in %v",
		pass, stats.Chunks, samples, stats.Workers, stats.Elapsed)

	return stats, nil
}
