package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Min", a.Min(b), NewVec3(1, -5, 3)},
		{"Max", a.Max(b), NewVec3(4, 2, 6)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot product 12, got %f", dot)
	}
	if a.MinComponent() != 1 || b.MaxComponent() != 6 {
		t.Errorf("Unexpected min/max component: %f %f", a.MinComponent(), b.MaxComponent())
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := Vec3{}.Normalize()
	if !zero.Equals(Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}

func TestVec3_RecipProducesInfinities(t *testing.T) {
	r := NewVec3(2, 0, math.Copysign(0, -1)).Recip()

	if r.X != 0.5 {
		t.Errorf("Expected 0.5, got %f", r.X)
	}
	if !math.IsInf(r.Y, 1) {
		t.Errorf("Expected +Inf for +0 component, got %f", r.Y)
	}
	if !math.IsInf(r.Z, -1) {
		t.Errorf("Expected -Inf for -0 component, got %f", r.Z)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for axis, expected := range []float64{7, 8, 9} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis %d: expected %f, got %f", axis, expected, got)
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestVec3_Reflect(t *testing.T) {
	incoming := NewVec3(1, -1, 0)
	normal := NewVec3(0, 1, 0)

	reflected := incoming.Reflect(normal)
	expected := NewVec3(1, 1, 0)
	if !reflected.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestVec3_Refract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	// Normal incidence passes straight through regardless of ratio
	straight := NewVec3(0, -1, 0).Refract(normal, 1/1.5)
	if straight.Subtract(NewVec3(0, -1, 0)).Length() > 1e-12 {
		t.Errorf("Expected undeflected ray, got %v", straight)
	}

	// Snell's law: sin(out) = ratio * sin(in)
	in := NewVec3(1, -1, 0).Normalize()
	ratio := 1 / 1.5
	out := in.Refract(normal, ratio)

	sinIn := math.Abs(in.X)
	sinOut := math.Abs(out.X) / out.Length()
	if math.Abs(sinOut-ratio*sinIn) > 1e-9 {
		t.Errorf("Snell's law violated: sinOut=%f expected %f", sinOut, ratio*sinIn)
	}
	if math.Abs(out.Length()-1) > 1e-9 {
		t.Errorf("Expected unit refracted vector, got length %f", out.Length())
	}
}

func TestRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -10))

	if !ray.Direction.Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Expected normalized direction, got %v", ray.Direction)
	}
	if p := ray.At(2); !p.Equals(NewVec3(1, 2, 1)) {
		t.Errorf("Expected point (1,2,1), got %v", p)
	}
}
