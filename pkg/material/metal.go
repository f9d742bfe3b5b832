package material

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	// The perturbation is always drawn so every scatter consumes the same
	// number of samples
	perturbation := core.SamplePointInUnitSphere(sampler.Get3D())
	direction := reflected.Add(perturbation.Multiply(m.Fuzz))

	// Fuzz can push the reflection below the surface
	if direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, true
}
