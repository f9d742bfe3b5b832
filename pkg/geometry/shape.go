package geometry

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Primitive is a shape paired with the index of its material in the scene
type Primitive struct {
	Shape    Shape
	Material int
}

// NewPrimitive creates a primitive referencing the given material index
func NewPrimitive(shape Shape, material int) Primitive {
	return Primitive{Shape: shape, Material: material}
}

// Hit intersects the underlying shape and tags the hit with the material index
func (p Primitive) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	hit, isHit := p.Shape.Hit(ray, tMin, tMax)
	if !isHit {
		return core.HitRecord{}, false
	}
	hit.Material = p.Material
	return hit, true
}

// BoundingBox returns the bounds of the underlying shape
func (p Primitive) BoundingBox() core.AABB {
	return p.Shape.BoundingBox()
}

// PrimitiveList is a flat list of primitives intersected by linear scan
type PrimitiveList []Primitive

// Hit tests every primitive and returns the closest hit
func (pl PrimitiveList) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closestHit core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, primitive := range pl {
		if hit, isHit := primitive.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns the box enclosing every primitive in the list
func (pl PrimitiveList) BoundingBox() core.AABB {
	boxes := make([]core.AABB, len(pl))
	for i, primitive := range pl {
		boxes[i] = primitive.BoundingBox()
	}
	return core.MergeAll(boxes...)
}

// NearestHit is a convenience wrapper searching from MinHitDistance to infinity
func NearestHit(world Intersector, ray core.Ray) (core.HitRecord, bool) {
	return world.Hit(ray, MinHitDistance, math.Inf(1))
}
