package renderer

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// ChunkRenderer renders bands of rows with a fixed camera and world. It holds
// no mutable state and is shared by all workers.
type ChunkRenderer struct {
	camera     *Camera
	world      geometry.Intersector
	materials  []material.Material
	integrator integrator.Integrator
	width      int
	height     int
}

// NewChunkRenderer creates a chunk renderer for an image of the given size
func NewChunkRenderer(camera *Camera, world geometry.Intersector, materials []material.Material, integratorInst integrator.Integrator, width, height int) *ChunkRenderer {
	return &ChunkRenderer{
		camera:     camera,
		world:      world,
		materials:  materials,
		integrator: integratorInst,
		width:      width,
		height:     height,
	}
}

// RenderChunk adds samples jittered samples per pixel to pixels, which must
// hold exactly the chunk's rows
func (cr *ChunkRenderer) RenderChunk(chunk Chunk, pixels []core.Vec3, sampler core.Sampler, samples int) RenderStats {
	for j := chunk.StartRow; j < chunk.EndRow; j++ {
		row := pixels[(j-chunk.StartRow)*cr.width : (j-chunk.StartRow+1)*cr.width]
		for i := 0; i < cr.width; i++ {
			row[i] = row[i].Add(cr.samplePixel(i, j, sampler, samples))
		}
	}

	pixelCount := chunk.Rows() * cr.width
	return RenderStats{
		TotalPixels:  pixelCount,
		TotalSamples: pixelCount * samples,
		Chunks:       1,
	}
}

// samplePixel returns the summed radiance of samples rays through pixel (i, j)
func (cr *ChunkRenderer) samplePixel(i, j int, sampler core.Sampler, samples int) core.Vec3 {
	colorAccum := core.Vec3{}
	for sample := 0; sample < samples; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		s := (float64(i) + sampler.Get1D()) / float64(cr.width)
		t := (float64(j) + sampler.Get1D()) / float64(cr.height)

		ray := cr.camera.GetRay(s, t)
		colorAccum = colorAccum.Add(cr.integrator.RayColor(ray, cr.world, cr.materials, sampler))
	}
	return colorAccum
}
