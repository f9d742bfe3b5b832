package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/df07/go-bvh-raytracer/pkg/animation"
	"github.com/df07/go-bvh-raytracer/pkg/output"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// RenderOrbit renders an image sequence of the camera swinging around the
// scene's look-at point. Each frame is refined progressively for a fixed
// number of passes before it is written.
func RenderOrbit(ctx *cli.Context) error {
	setupLogging(ctx)

	frames := ctx.Int("frames")
	passes := ctx.Int("passes")
	if frames <= 0 || passes <= 0 {
		return fmt.Errorf("frames and passes must be positive, got %d and %d", frames, passes)
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	sc, err := loadScene(cfg.Scene, cfg.Seed)
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(sc, cfg.RenderConfig())
	if err != nil {
		return err
	}

	outDir := ctx.String("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderCtx, cancel := interruptContext()
	defer cancel()

	orbit := animation.NewOrbitPath(sc.Camera, ctx.Int("fps"), ctx.Float64("frequency"), animation.DefaultDamping)
	orbit.Rotate(ctx.Float64("yaw"))

	pr := renderer.NewProgressiveRenderer(rt, rt.Config().SamplesPerPixel)
	aspect := rt.Config().CameraAspect()

	for i := 0; i < frames; i++ {
		pr.SetCamera(renderer.NewCamera(orbit.Next(), aspect))

		passChan, errChan := pr.RenderProgressive(renderCtx, passes)
		var last renderer.PassResult
		for result := range passChan {
			last = result
			logger.Debugf("frame %d pass %d/%d: %d samples per pixel", i+1, result.PassNumber, passes, result.Frame.Samples)
		}
		if err := <-errChan; err != nil {
			return err
		}
		if !last.IsLast {
			return fmt.Errorf("frame %d stopped after %d passes: %w", i+1, last.PassNumber, renderCtx.Err())
		}

		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", i))
		if err := output.WritePNG(path, last.Frame); err != nil {
			return err
		}
		logger.Infof("frame %d/%d written to %s (yaw %.1f°)", i+1, frames, path, orbit.Yaw()*180/math.Pi)
	}

	logger.Noticef("%d frames written to %s", frames, outDir)
	return nil
}
