package scene

import (
	"math/rand"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// randomColor draws each channel uniformly from [0, 1)
func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// NewRandomSpheresScene creates the classic field of small random spheres and
// triangles around three large spheres. The layout depends only on seed.
func NewRandomSpheresScene(seed int64) *Scene {
	s := New(CameraSetup{
		LookFrom: core.NewVec3(13, 2, 3),
		LookAt:   core.NewVec3(0, 0, 0),
		VFov:     20,
	})
	random := rand.New(rand.NewSource(seed))

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), ground)

	// Keep the small objects clear of the big metal sphere
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var m material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				m = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(random).Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				fuzz := random.Float64() * 0.5
				m = material.NewMetal(albedo, fuzz)
			default:
				m = material.NewDielectric(1.5)
			}
			index := s.AddMaterial(m)

			if random.Intn(2) == 0 {
				s.Add(geometry.NewTriangle(
					center.Add(core.NewVec3(1, 0, 0)),
					center.Add(core.NewVec3(0, 1, 0)),
					center.Add(core.NewVec3(0, 0, 1)),
				), index)
			} else {
				s.Add(geometry.NewSphere(center, 0.2), index)
			}
		}
	}

	glass := s.AddMaterial(material.NewDielectric(1.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0), glass)

	brown := s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0), brown)

	mirror := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0), mirror)

	return s
}
