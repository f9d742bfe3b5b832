package scene

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// NewShowcaseScene creates a small scene using every shape and material kind
func NewShowcaseScene() *Scene {
	s := New(CameraSetup{
		LookFrom: core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:   core.NewVec3(0, 0.5, -1), // Look at the sphere center
		VFov:     40.0,
	})

	// Create materials
	lambertianGreen := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)))
	lambertianBlue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	lambertianRed := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))
	metalSilver := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0))
	metalGold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	glass := s.AddMaterial(material.NewDielectric(1.5))

	// Ground rectangle, large but finite for proper bounds
	s.Add(geometry.NewPlane(core.NewVec3(-50, 0, -50), core.NewVec3(50, 0, 50)), lambertianGreen)

	// Back wall
	s.Add(geometry.NewPlane(core.NewVec3(-3, 0, -3), core.NewVec3(3, 2.5, -3)), lambertianBlue)

	s.Add(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5), lambertianRed)
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5), metalSilver)
	s.Add(geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5), metalGold)

	// Hollow glass sphere: a negative radius flips the normals of the inner surface
	s.Add(geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25), glass)
	s.Add(geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.22), glass)

	// Triangle facing the camera
	s.Add(geometry.NewTriangle(
		core.NewVec3(0.3, 0.0, -0.4),
		core.NewVec3(0.8, 0.0, -0.4),
		core.NewVec3(0.55, 0.45, -0.4),
	), metalSilver)

	return s
}
