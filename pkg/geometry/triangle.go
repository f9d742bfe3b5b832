package geometry

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// triangleEpsilon bounds the determinant below which a ray counts as parallel
// to (or behind) the triangle
const triangleEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices.
// Only the side from which the vertices appear counter-clockwise is hit.
type Triangle struct {
	A, B, C core.Vec3 // The three vertices
	edge1   core.Vec3 // Cached B - A
	edge2   core.Vec3 // Cached C - A
	normal  core.Vec3 // Cached normal vector
	bbox    core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c core.Vec3) *Triangle {
	t := &Triangle{A: a, B: b, C: c}
	t.edge1 = b.Subtract(a)
	t.edge2 = c.Subtract(a)
	t.normal = t.edge1.Cross(t.edge2).Normalize()
	t.bbox = core.NewAABBFromPoints(a, b, c)
	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	h := ray.Direction.Cross(t.edge2)
	det := t.edge1.Dot(h)

	// Back faces and rays lying in the triangle's plane are culled
	if det < triangleEpsilon {
		return core.HitRecord{}, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.A)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.HitRecord{}, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.HitRecord{}, false
	}

	tHit := f * t.edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return core.HitRecord{}, false
	}

	hitRecord := core.HitRecord{
		T:     tHit,
		Point: ray.At(tHit),
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
