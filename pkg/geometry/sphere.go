package geometry

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients in half-b form: at² + 2ht + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return core.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	hitRecord := core.HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	// Outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.Splat(math.Abs(s.Radius))
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
