package renderer

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

// worldUp is the reference up direction for camera orientation
var worldUp = core.NewVec3(0, 1, 0)

// Camera generates rays for rendering. Its image plane sits at focal
// distance 1 in front of the origin.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from a scene's camera setup
func NewCamera(setup scene.CameraSetup, aspectRatio float64) *Camera {
	return newLookAtCamera(setup.LookFrom, setup.LookAt, setup.VFov, aspectRatio)
}

func newLookAtCamera(lookFrom, lookAt core.Vec3, vfov, aspectRatio float64) *Camera {
	theta := vfov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis: w points backwards, u right, v up
	w := lookFrom.Subtract(lookAt).Normalize()
	up := worldUp
	if up.Cross(w).NearZero() {
		// Looking straight up or down
		up = core.NewVec3(0, 0, -1)
	}
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower left corner of the image.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
