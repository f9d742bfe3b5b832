package material

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false when
	// the path is absorbed
	Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}
