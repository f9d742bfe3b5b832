package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

var (
	// ErrEmptyScene is returned when a scene has no primitives to render
	ErrEmptyScene = errors.New("scene has no primitives")
	// ErrMaterialIndex is returned when a primitive references a missing material
	ErrMaterialIndex = errors.New("material index out of range")
)

// CameraSetup describes where the camera sits and what it looks at
type CameraSetup struct {
	LookFrom core.Vec3
	LookAt   core.Vec3
	VFov     float64 // Vertical field of view in degrees
}

// Scene contains all the elements needed for rendering. Primitives refer to
// materials by index into Materials. A scene is read-only once rendering
// starts.
type Scene struct {
	Primitives []geometry.Primitive
	Materials  []material.Material
	Camera     CameraSetup
}

// New creates an empty scene with the given camera
func New(camera CameraSetup) *Scene {
	return &Scene{
		Primitives: make([]geometry.Primitive, 0),
		Materials:  make([]material.Material, 0),
		Camera:     camera,
	}
}

// AddMaterial appends a material and returns its index
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// Add appends a shape using the material at the given index
func (s *Scene) Add(shape geometry.Shape, materialIndex int) {
	s.Primitives = append(s.Primitives, geometry.NewPrimitive(shape, materialIndex))
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if len(s.Primitives) == 0 {
		return ErrEmptyScene
	}
	for i, primitive := range s.Primitives {
		if primitive.Shape == nil {
			return fmt.Errorf("primitive %d has no shape", i)
		}
		if box := primitive.BoundingBox(); !box.IsValid() {
			return fmt.Errorf("primitive %d has invalid bounds %v", i, box)
		}
		if primitive.Material < 0 || primitive.Material >= len(s.Materials) {
			return fmt.Errorf("primitive %d references material %d of %d: %w",
				i, primitive.Material, len(s.Materials), ErrMaterialIndex)
		}
		if s.Materials[primitive.Material] == nil {
			return fmt.Errorf("primitive %d references nil material %d", i, primitive.Material)
		}
	}
	if s.Camera.VFov <= 0 || s.Camera.VFov >= 180 {
		return fmt.Errorf("camera field of view %.1f out of range (0, 180)", s.Camera.VFov)
	}
	if s.Camera.LookFrom.Equals(s.Camera.LookAt) {
		return errors.New("camera look_from and look_at coincide")
	}
	return nil
}

// ShapeCounts returns the number of primitives of each kind
func (s *Scene) ShapeCounts() (spheres, triangles, planes int) {
	for _, primitive := range s.Primitives {
		switch primitive.Shape.(type) {
		case *geometry.Sphere:
			spheres++
		case *geometry.Triangle:
			triangles++
		case *geometry.Plane:
			planes++
		}
	}
	return spheres, triangles, planes
}
