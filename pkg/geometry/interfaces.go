package geometry

import "github.com/df07/go-bvh-raytracer/pkg/core"

// MinHitDistance is the smallest accepted ray parameter. Rays scattered off a
// surface start exactly on it; ignoring hits closer than this avoids
// re-intersecting the surface they left (shadow acne).
const MinHitDistance = 0.001

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool)
	BoundingBox() core.AABB
}

// Intersector finds the nearest intersection of a ray with a set of primitives
type Intersector interface {
	Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool)
}
