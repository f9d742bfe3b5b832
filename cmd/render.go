package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/output"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// RenderFrame renders a still frame and writes it as a PNG
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

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
	if stats, ok := rt.BVHStats(); ok {
		displayBVHStats(stats)
	}

	renderCtx, cancel := interruptContext()
	defer cancel()

	rc := rt.Config()
	logger.Noticef("rendering %s at %dx%d with %d spp", cfg.Scene, rc.Width, rc.Height, rc.SamplesPerPixel)
	frame, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	out := ctx.String("out")
	if err := output.WritePNG(out, frame); err != nil {
		return err
	}
	logger.Noticef("frame saved as %s", out)
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Avg spp", "Chunks", "Workers", "Samples/sec"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%d", stats.Chunks),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.Elapsed.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

func displayBVHStats(stats geometry.BVHStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Primitives", "Nodes", "Leaves", "Max depth", "Avg leaf depth"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPrimitives),
		fmt.Sprintf("%d", stats.TotalNodes),
		fmt.Sprintf("%d", stats.LeafNodes),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%.2f", stats.AvgDepth),
	})

	table.Render()
	logger.Infof("BVH statistics\n%s", buf.String())
}
