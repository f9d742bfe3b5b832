package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/log"
)

// ProgressiveRenderer refines an accumulation buffer pass by pass. A mutex
// guards the buffer and the camera. It is held only to swap state, never
// while a pass is computed, so readers observe pass-wise refinement.
type ProgressiveRenderer struct {
	raytracer      *Raytracer
	samplesPerPass int
	logger         log.Logger

	mu           sync.Mutex
	camera       *Camera
	accum        *Frame
	pass         int  // Passes accumulated since the last reset
	dispatched   int  // Passes started since the last reset; selects chunk seeds
	generation   int  // Incremented on every camera change
	resetPending bool // Clear the buffer before the next pass
}

// NewProgressiveRenderer creates a progressive renderer starting from the
// scene's camera
func NewProgressiveRenderer(rt *Raytracer, samplesPerPass int) *ProgressiveRenderer {
	if samplesPerPass <= 0 {
		samplesPerPass = 1
	}
	return &ProgressiveRenderer{
		raytracer:      rt,
		samplesPerPass: samplesPerPass,
		logger:         log.New("progressive"),
		camera:         rt.Camera(),
		accum:          NewFrame(rt.config.Width, rt.config.Height),
	}
}

// SetCamera switches to a new camera. Accumulated samples are dropped before
// the next pass and a pass still running for the old camera is discarded.
func (pr *ProgressiveRenderer) SetCamera(camera *Camera) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	pr.camera = camera
	pr.generation++
	pr.resetPending = true
}

// RenderPass renders one pass of samples and merges it into the buffer.
// Concurrent callers each reserve their own pass index, so their samples
// never repeat.
func (pr *ProgressiveRenderer) RenderPass(ctx context.Context) (RenderStats, error) {
	pr.mu.Lock()
	if pr.resetPending {
		pr.accum.Reset()
		pr.pass = 0
		pr.dispatched = 0
		pr.resetPending = false
	}
	camera := pr.camera
	pass := pr.dispatched
	pr.dispatched++
	generation := pr.generation
	pr.mu.Unlock()

	// Render outside the lock into a private buffer
	scratch := NewFrame(pr.accum.Width, pr.accum.Height)
	stats, err := pr.raytracer.renderPass(ctx, camera, scratch, pass, pr.samplesPerPass)
	if err != nil {
		return stats, err
	}

	pr.mu.Lock()
	defer pr.mu.Unlock()

	if generation != pr.generation {
		pr.logger.Debugf("discarding pass %d rendered for a stale camera", pass)
		return stats, nil
	}
	pr.accum.Add(scratch)
	pr.pass++

	return stats, nil
}

// Snapshot returns a copy of the accumulation buffer
func (pr *ProgressiveRenderer) Snapshot() *Frame {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.accum.Clone()
}

// Passes returns the number of passes accumulated for the current camera
func (pr *ProgressiveRenderer) Passes() int {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.pass
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Frame      *Frame
	Stats      RenderStats
	IsLast     bool
}

// RenderProgressive renders up to maxPasses passes in the background.
// Each completed pass delivers a snapshot on the pass channel. The caller
// should read from both channels; both are closed when rendering stops.
func (pr *ProgressiveRenderer) RenderProgressive(ctx context.Context, maxPasses int) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		pr.logger.Infof("starting progressive rendering with %d passes of %d samples", maxPasses, pr.samplesPerPass)

		for pass := 1; pass <= maxPasses; pass++ {
			// Check if the caller gave up before starting this pass
			select {
			case <-ctx.Done():
				pr.logger.Infof("rendering cancelled before pass %d", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()
			stats, err := pr.RenderPass(ctx)
			if err != nil {
				errChan <- err
				return
			}

			pr.logger.Debugf("pass %d completed in %v", pass, time.Since(startTime))

			result := PassResult{
				PassNumber: pass,
				Frame:      pr.Snapshot(),
				Stats:      stats,
				IsLast:     pass == maxPasses,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return passChan, errChan
}
