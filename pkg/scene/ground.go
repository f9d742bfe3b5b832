package scene

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// GroundAlbedo is the reflectance of the ground scene's only material
var GroundAlbedo = core.NewVec3(0.5, 0.5, 0.5)

// NewGroundScene creates a scene holding nothing but a huge diffuse sphere
// under the camera. Every path either escapes to the sky or bounces off the
// ground, which makes its converged color easy to predict.
func NewGroundScene() *Scene {
	s := New(CameraSetup{
		LookFrom: core.NewVec3(0, 1, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		VFov:     90,
	})

	ground := s.AddMaterial(material.NewLambertian(GroundAlbedo))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), ground)

	return s
}
