package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

// Default spring parameters: moderate speed, critically damped (no overshoot)
const (
	DefaultFrequency = 4.0
	DefaultDamping   = 1.0
)

// settleEpsilon is the yaw and velocity magnitude below which the orbit is at rest
const settleEpsilon = 1e-4

// OrbitPath moves a camera around its look-at point at a fixed height and
// horizontal distance. The yaw is driven toward a target by a damped spring,
// so the camera eases in and out of each rotation.
type OrbitPath struct {
	center core.Vec3
	radius float64 // Horizontal distance from center
	height float64 // Camera height above center
	vfov   float64

	yaw         float64 // Radians, measured from +Z toward +X
	yawVelocity float64
	target      float64
	spring      harmonica.Spring
}

// NewOrbitPath starts an orbit at the given camera setup
func NewOrbitPath(setup scene.CameraSetup, fps int, frequency, damping float64) *OrbitPath {
	offset := setup.LookFrom.Subtract(setup.LookAt)
	yaw := math.Atan2(offset.X, offset.Z)

	return &OrbitPath{
		center: setup.LookAt,
		radius: math.Hypot(offset.X, offset.Z),
		height: offset.Y,
		vfov:   setup.VFov,
		yaw:    yaw,
		target: yaw,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Rotate moves the yaw target by the given number of degrees
func (o *OrbitPath) Rotate(degrees float64) {
	o.target += degrees * math.Pi / 180
}

// Next advances the spring by one frame and returns the new camera
func (o *OrbitPath) Next() scene.CameraSetup {
	o.yaw, o.yawVelocity = o.spring.Update(o.yaw, o.yawVelocity, o.target)
	return o.Camera()
}

// Camera returns the camera at the current position of the orbit
func (o *OrbitPath) Camera() scene.CameraSetup {
	sin, cos := math.Sincos(o.yaw)
	return scene.CameraSetup{
		LookFrom: o.center.Add(core.NewVec3(o.radius*sin, o.height, o.radius*cos)),
		LookAt:   o.center,
		VFov:     o.vfov,
	}
}

// Yaw returns the current yaw in radians
func (o *OrbitPath) Yaw() float64 {
	return o.yaw
}

// Settled reports whether the camera has come to rest at its target
func (o *OrbitPath) Settled() bool {
	return math.Abs(o.yaw-o.target) < settleEpsilon && math.Abs(o.yawVelocity) < settleEpsilon
}
