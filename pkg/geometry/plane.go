package geometry

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// planePadding thickens the flat axis of a rectangle's bounding box
const planePadding = 1e-4

// Plane is a finite axis-aligned rectangle. Bounds is a flat box: its
// smallest extent selects the axis the rectangle is perpendicular to.
type Plane struct {
	Bounds core.AABB
	axis   int       // Axis perpendicular to the rectangle
	offset float64   // Coordinate of the rectangle along axis
	normal core.Vec3 // Unit normal along +axis
}

// NewPlane creates a rectangle spanning the box between two corners
func NewPlane(min, max core.Vec3) *Plane {
	bounds := core.NewAABBFromPoints(min, max)
	axis := bounds.ShortestAxis()

	var normal core.Vec3
	switch axis {
	case 0:
		normal = core.NewVec3(1, 0, 0)
	case 1:
		normal = core.NewVec3(0, 1, 0)
	default:
		normal = core.NewVec3(0, 0, 1)
	}

	return &Plane{
		Bounds: bounds,
		axis:   axis,
		offset: 0.5 * (bounds.Min.Axis(axis) + bounds.Max.Axis(axis)),
		normal: normal,
	}
}

// Axis returns the axis (0=X, 1=Y, 2=Z) the rectangle is perpendicular to
func (p *Plane) Axis() int {
	return p.axis
}

// Hit solves the ray-plane equation and bounds checks the two free axes
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denominator := ray.Direction.Axis(p.axis)

	// Ray parallel to the rectangle never hits it
	if math.Abs(denominator) < 1e-12 {
		return core.HitRecord{}, false
	}

	t := (p.offset - ray.Origin.Axis(p.axis)) / denominator
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	point := ray.At(t)
	for axis := 0; axis < 3; axis++ {
		if axis == p.axis {
			continue
		}
		c := point.Axis(axis)
		if c < p.Bounds.Min.Axis(axis) || c > p.Bounds.Max.Axis(axis) {
			return core.HitRecord{}, false
		}
	}

	hitRecord := core.HitRecord{
		T:     t,
		Point: point,
	}
	hitRecord.SetFaceNormal(ray, p.normal)

	return hitRecord, true
}

// BoundingBox returns the rectangle bounds padded along the flat axis
func (p *Plane) BoundingBox() core.AABB {
	box := p.Bounds
	switch p.axis {
	case 0:
		box.Min.X -= planePadding
		box.Max.X += planePadding
	case 1:
		box.Min.Y -= planePadding
		box.Max.Y += planePadding
	default:
		box.Min.Z -= planePadding
		box.Max.Z += planePadding
	}
	return box
}
