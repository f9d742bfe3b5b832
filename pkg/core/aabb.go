package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return AABB{Min: min, Max: max}
}

// MergeAll returns the smallest box enclosing every given box
func MergeAll(boxes ...AABB) AABB {
	if len(boxes) == 0 {
		return AABB{}
	}
	merged := boxes[0]
	for _, box := range boxes[1:] {
		merged = merged.Union(box)
	}
	return merged
}

// Union returns an AABB that bounds both this AABB and another.
// Union is commutative, associative and idempotent.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: aabb.Min.Min(other.Min),
		Max: aabb.Max.Max(other.Max),
	}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray) bool {
	return aabb.HitInverse(ray.Origin, ray.Direction.Recip())
}

// HitInverse is the slab test for callers that have already computed the
// reciprocal ray direction. A box is hit iff max(tsmall) <= min(tbig), so a
// ray grazing a face or edge counts as a hit.
//
// Zero direction components give infinite reciprocals and the test relies on
// IEEE-754 arithmetic. An origin lying exactly on the slab plane of such an
// axis yields NaN (0 * Inf): the ray runs along the boundary of that slab,
// which is a graze, so the axis places no constraint on the interval.
func (aabb AABB) HitInverse(origin, invDir Vec3) bool {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		inv := invDir.Axis(axis)
		t0 := (aabb.Min.Axis(axis) - origin.Axis(axis)) * inv
		t1 := (aabb.Max.Axis(axis) - origin.Axis(axis)) * inv

		if math.IsNaN(t0) || math.IsNaN(t1) {
			continue
		}

		tSmall, tBig := t0, t1
		if t1 < t0 {
			tSmall, tBig = t1, t0
		}

		if tSmall > tNear {
			tNear = tSmall
		}
		if tBig < tFar {
			tFar = tBig
		}
	}

	return tNear <= tFar
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// ShortestAxis returns the axis (0=X, 1=Y, 2=Z) with the shortest extent
func (aabb AABB) ShortestAxis() int {
	size := aabb.Size()
	if size.X <= size.Y && size.X <= size.Z {
		return 0
	}
	if size.Y <= size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
