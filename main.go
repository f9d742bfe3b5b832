package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-bvh-raytracer/cmd"
	"github.com/df07/go-bvh-raytracer/pkg/log"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes of spheres, triangles and rectangles with a BVH path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Load a built-in scene or a JSON scene file, build a BVH over its primitives
and render one frame with the configured samples per pixel.

Settings are read from the configuration file; any flag given on the command
line overrides the file.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			}, cmd.RenderFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "orbit",
			Usage: "render an image sequence orbiting the scene",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "frames",
					Value: 60,
					Usage: "number of frames to render",
				},
				cli.IntFlag{
					Name:  "passes",
					Value: 1,
					Usage: "progressive passes per frame",
				},
				cli.Float64Flag{
					Name:  "yaw",
					Value: 360,
					Usage: "total rotation around the look-at point in degrees",
				},
				cli.IntFlag{
					Name:  "fps",
					Value: 30,
					Usage: "frame rate used to step the camera spring",
				},
				cli.Float64Flag{
					Name:  "frequency",
					Value: 4.0,
					Usage: "camera spring angular frequency",
				},
				cli.StringFlag{
					Name:  "out-dir",
					Value: "orbit",
					Usage: "directory for frame_NNNN.png files",
				},
			}, cmd.RenderFlags...),
			Action: cmd.RenderOrbit,
		},
		{
			Name:  "scene",
			Usage: "inspect built-in scenes",
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "list built-in scenes",
					Flags: []cli.Flag{
						cli.Int64Flag{
							Name:  "seed",
							Value: 42,
							Usage: "seed for generated scenes",
						},
					},
					Action: cmd.ListScenes,
				},
				{
					Name:      "export",
					Usage:     "write a built-in scene as JSON",
					ArgsUsage: "scene_name",
					Flags: []cli.Flag{
						cli.Int64Flag{
							Name:  "seed",
							Value: 42,
							Usage: "seed for generated scenes",
						},
						cli.StringFlag{
							Name:  "out, o",
							Usage: "output file (standard output when empty)",
						},
					},
					Action: cmd.ExportScene,
				},
			},
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("raytracer").Error(err)
		os.Exit(1)
	}
}
