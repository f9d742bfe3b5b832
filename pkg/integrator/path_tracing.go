package integrator

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// PathTracingIntegrator implements a depth-bounded random walk. Each hit
// scatters the path once; paths end when they escape to the sky, are
// absorbed, or run out of bounces.
type PathTracingIntegrator struct {
	MaxDepth int       // Maximum number of surface interactions per path
	Ambient  core.Vec3 // Sky color overhead, also returned for exhausted paths
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, ambient core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth: maxDepth,
		Ambient:  ambient,
	}
}

// RayColor computes the color for a single ray. The walk is a loop with a
// running throughput so deep bounce budgets do not grow the stack.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Intersector, materials []material.Material, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.MaxDepth; ; depth-- {
		// Out of bounces: cap the path with the ambient color
		if depth <= 0 {
			return throughput.MultiplyVec(pt.Ambient)
		}

		hit, isHit := world.Hit(ray, geometry.MinHitDistance, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.BackgroundColor(ray))
		}

		scatter, didScatter := materials[hit.Material].Scatter(ray, hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// BackgroundColor returns the sky gradient for rays that escape the scene:
// white straight down, blending to the ambient color straight up.
func (pt *PathTracingIntegrator) BackgroundColor(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	return white.Multiply(1.0 - t).Add(pt.Ambient.Multiply(t))
}
