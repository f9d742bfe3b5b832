package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli"

	"github.com/df07/go-bvh-raytracer/pkg/config"
	"github.com/df07/go-bvh-raytracer/pkg/loaders"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

// RenderFlags are shared by every command that renders frames. Unset flags
// keep the value from the configuration file.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Value: "config.json",
		Usage: "render configuration file (defaults are used when it does not exist)",
	},
	cli.StringFlag{
		Name:  "scene, s",
		Usage: "built-in scene name or path to a .json scene file",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum number of bounces per path",
	},
	cli.IntFlag{
		Name:  "chunk",
		Usage: "rows per work chunk",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of render workers (0 = one per CPU)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "base seed for scene generation, BVH construction and sampling",
	},
	cli.BoolFlag{
		Name:  "no-bvh",
		Usage: "intersect primitives by linear scan instead of a BVH",
	},
}

// loadConfig reads the configuration file and applies flag overrides
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if ctx.IsSet("scene") {
		cfg.Scene = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		cfg.Samples = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		cfg.TTL = ctx.Int("depth")
	}
	if ctx.IsSet("chunk") {
		cfg.ChunkSize = ctx.Int("chunk")
	}
	if ctx.IsSet("workers") {
		cfg.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		cfg.Seed = ctx.Int64("seed")
	}
	if ctx.Bool("no-bvh") {
		disabled := false
		cfg.BVHEnabled = &disabled
	}

	return cfg, nil
}

// loadScene resolves a built-in scene name or a JSON scene file
func loadScene(name string, seed int64) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("no scene given")
	}
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return loaders.LoadScene(name)
	}
	return scene.BuiltIn(name, seed)
}

// interruptContext is cancelled on SIGINT so renders stop between chunks
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
