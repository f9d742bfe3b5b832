package integrator

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. world finds hits,
	// and hit material indices refer to materials.
	RayColor(ray core.Ray, world geometry.Intersector, materials []material.Material, sampler core.Sampler) core.Vec3
}
