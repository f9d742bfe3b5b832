package material

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// Offsetting the normal by a unit vector yields a cosine-weighted direction.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	offset := core.SamplePointInUnitSphere(sampler.Get3D()).Normalize()
	scatterDirection := hit.Normal.Add(offset)

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
