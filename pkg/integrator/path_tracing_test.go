package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

var skyBlue = core.NewVec3(0.5, 0.7, 1.0)

// mockWorld reports the same hit for every ray, or never hits
type mockWorld struct {
	hit   core.HitRecord
	isHit bool
	calls int
}

func (m *mockWorld) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	m.calls++
	return m.hit, m.isHit
}

// mockMaterial scatters straight up with a fixed attenuation, or absorbs
type mockMaterial struct {
	attenuation core.Vec3
	absorb      bool
}

func (m *mockMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	if m.absorb {
		return material.ScatterResult{}, false
	}
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
		Attenuation: m.attenuation,
	}, true
}

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance && math.Abs(a.Z-b.Z) <= tolerance
}

func TestPathTracingDepthTermination(t *testing.T) {
	world := &mockWorld{hit: core.HitRecord{Normal: core.NewVec3(0, 1, 0)}, isHit: true}
	materials := []material.Material{&mockMaterial{attenuation: core.NewVec3(0.5, 0.5, 0.5)}}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name     string
		maxDepth int
		expected core.Vec3
	}{
		{"depth 0 returns ambient", 0, skyBlue},
		{"depth 1 attenuates once", 1, skyBlue.Multiply(0.5)},
		{"depth 3 attenuates three times", 3, skyBlue.Multiply(0.125)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world.calls = 0
			integrator := NewPathTracingIntegrator(tt.maxDepth, skyBlue)
			color := integrator.RayColor(ray, world, materials, sampler)

			if !vecClose(color, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
			if world.calls != tt.maxDepth {
				t.Errorf("Expected %d intersection queries, got %d", tt.maxDepth, world.calls)
			}
		})
	}
}

func TestPathTracingDeepBudgetDoesNotRecurse(t *testing.T) {
	world := &mockWorld{hit: core.HitRecord{Normal: core.NewVec3(0, 1, 0)}, isHit: true}
	materials := []material.Material{&mockMaterial{attenuation: core.NewVec3(1, 1, 1)}}
	integrator := NewPathTracingIntegrator(1_000_000, skyBlue)

	color := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), world, materials, core.NewSeededSampler(1))
	if !vecClose(color, skyBlue, 1e-12) {
		t.Errorf("Expected ambient after exhausting the budget, got %v", color)
	}
}

func TestPathTracingAbsorption(t *testing.T) {
	world := &mockWorld{hit: core.HitRecord{Normal: core.NewVec3(0, 1, 0)}, isHit: true}
	materials := []material.Material{&mockMaterial{absorb: true}}
	integrator := NewPathTracingIntegrator(10, skyBlue)

	color := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), world, materials, core.NewSeededSampler(1))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed path, got %v", color)
	}
}

func TestPathTracingBackground(t *testing.T) {
	integrator := NewPathTracingIntegrator(10, skyBlue)
	world := &mockWorld{}

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), skyBlue},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := integrator.RayColor(core.NewRay(core.Vec3{}, tt.direction), world, nil, core.NewSeededSampler(1))
			if !vecClose(color, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracingGroundConvergence(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.5, 0.5)
	materials := []material.Material{material.NewLambertian(albedo)}
	world := geometry.PrimitiveList{
		geometry.NewPrimitive(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), 0),
	}
	integrator := NewPathTracingIntegrator(64, skyBlue)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Straight down onto the top of the sphere
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	var sum core.Vec3
	const samples = 20000
	for i := 0; i < samples; i++ {
		sum = sum.Add(integrator.RayColor(ray, world, materials, sampler))
	}
	mean := sum.Multiply(1.0 / samples)

	// One cosine-weighted bounce then escape: E[cos θ] = 2/3, so the sky
	// blend factor averages 5/6
	expected := albedo.MultiplyVec(core.NewVec3(1, 1, 1).Multiply(1.0 / 6).Add(skyBlue.Multiply(5.0 / 6)))
	if !vecClose(mean, expected, 0.005) {
		t.Errorf("Expected convergence to %v, got %v", expected, mean)
	}
}
