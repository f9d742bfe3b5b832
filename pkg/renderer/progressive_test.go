package renderer

import (
	"context"
	"sync"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

func newTestProgressive(t *testing.T, samplesPerPass int) (*Raytracer, *ProgressiveRenderer) {
	t.Helper()
	config := smallConfig()
	config.SamplesPerPixel = samplesPerPass
	rt, err := NewRaytracer(scene.NewShowcaseScene(), config)
	if err != nil {
		t.Fatalf("Failed to create raytracer: %v", err)
	}
	return rt, NewProgressiveRenderer(rt, samplesPerPass)
}

func TestProgressiveFirstPassMatchesBatchRender(t *testing.T) {
	rt, pr := newTestProgressive(t, 2)

	if _, err := pr.RenderPass(context.Background()); err != nil {
		t.Fatalf("RenderPass failed: %v", err)
	}
	batch, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !framesEqual(pr.Snapshot(), batch) {
		t.Error("Expected first progressive pass to equal a batch render")
	}
}

func TestProgressiveAccumulates(t *testing.T) {
	_, pr := newTestProgressive(t, 1)

	for i := 0; i < 3; i++ {
		if _, err := pr.RenderPass(context.Background()); err != nil {
			t.Fatalf("RenderPass failed: %v", err)
		}
	}

	snapshot := pr.Snapshot()
	if snapshot.Samples != 3 {
		t.Errorf("Expected 3 accumulated samples, got %d", snapshot.Samples)
	}
	if pr.Passes() != 3 {
		t.Errorf("Expected 3 passes, got %d", pr.Passes())
	}

	// The snapshot is a copy
	snapshot.Pixels[0] = core.NewVec3(-1, -1, -1)
	if pr.Snapshot().Pixels[0].Equals(core.NewVec3(-1, -1, -1)) {
		t.Error("Expected snapshot to be independent of the buffer")
	}
}

func TestProgressiveSetCameraResets(t *testing.T) {
	_, pr := newTestProgressive(t, 1)

	for i := 0; i < 2; i++ {
		if _, err := pr.RenderPass(context.Background()); err != nil {
			t.Fatalf("RenderPass failed: %v", err)
		}
	}

	camera := NewCamera(scene.CameraSetup{
		LookFrom: core.NewVec3(0, 1, 3),
		LookAt:   core.NewVec3(0, 0.5, 0),
		VFov:     40,
	}, 16.0/12.0)
	pr.SetCamera(camera)
	if _, err := pr.RenderPass(context.Background()); err != nil {
		t.Fatalf("RenderPass failed: %v", err)
	}

	if pr.Passes() != 1 || pr.Snapshot().Samples != 1 {
		t.Errorf("Expected buffer reset to 1 pass, got %d passes and %d samples", pr.Passes(), pr.Snapshot().Samples)
	}

	// A fresh renderer given the same camera produces the same buffer
	_, fresh := newTestProgressive(t, 1)
	fresh.SetCamera(camera)
	if _, err := fresh.RenderPass(context.Background()); err != nil {
		t.Fatalf("RenderPass failed: %v", err)
	}
	if !framesEqual(pr.Snapshot(), fresh.Snapshot()) {
		t.Error("Expected reset buffer to match a fresh render for the same camera")
	}
}

func TestProgressiveConcurrentPassesUseDistinctSeeds(t *testing.T) {
	_, pr := newTestProgressive(t, 1)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pr.RenderPass(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("RenderPass failed: %v", err)
		}
	}

	// Two concurrent passes equal passes 0 and 1 rendered in sequence
	_, sequential := newTestProgressive(t, 1)
	for i := 0; i < 2; i++ {
		if _, err := sequential.RenderPass(context.Background()); err != nil {
			t.Fatalf("RenderPass failed: %v", err)
		}
	}

	if pr.Passes() != 2 {
		t.Errorf("Expected 2 passes, got %d", pr.Passes())
	}
	if !framesEqual(pr.Snapshot(), sequential.Snapshot()) {
		t.Error("Expected concurrent passes to match sequential passes 0 and 1")
	}
}

func TestRenderProgressive(t *testing.T) {
	_, pr := newTestProgressive(t, 1)

	passChan, errChan := pr.RenderProgressive(context.Background(), 3)

	var results []PassResult
	for result := range passChan {
		results = append(results, result)
	}
	for err := range errChan {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 pass results, got %d", len(results))
	}
	for i, result := range results {
		if result.PassNumber != i+1 {
			t.Errorf("Expected pass number %d, got %d", i+1, result.PassNumber)
		}
		if result.Frame.Samples != i+1 {
			t.Errorf("Pass %d: expected %d samples, got %d", i+1, i+1, result.Frame.Samples)
		}
		if result.IsLast != (i == 2) {
			t.Errorf("Pass %d: unexpected IsLast=%v", i+1, result.IsLast)
		}
	}
}

func TestRenderProgressiveCancelled(t *testing.T) {
	_, pr := newTestProgressive(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	passChan, errChan := pr.RenderProgressive(ctx, 5)
	for range passChan {
	}

	err, ok := <-errChan
	if !ok || err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
