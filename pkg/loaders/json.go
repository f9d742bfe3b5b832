package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/log"
	"github.com/df07/go-bvh-raytracer/pkg/material"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

var logger = log.New("loaders")

type vec3 [3]float64

func (v vec3) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func fromVec3(v core.Vec3) *vec3 {
	return &vec3{v.X, v.Y, v.Z}
}

// sceneFile is the JSON layout of a scene
type sceneFile struct {
	LookFrom  vec3            `json:"look_from"`
	LookAt    vec3            `json:"look_at"`
	Fov       float64         `json:"fov"`
	Materials []materialEntry `json:"materials"`
	Shapes    []shapeEntry    `json:"shapes"`
	Models    []modelEntry    `json:"models,omitempty"`
}

type materialEntry struct {
	Kind   string  `json:"kind"` // diffuse, metal or dielectric
	Albedo *vec3   `json:"albedo,omitempty"`
	Fuzz   float64 `json:"fuzz,omitempty"`
	IOR    float64 `json:"ior,omitempty"`
}

type shapeEntry struct {
	Kind     string  `json:"kind"` // sphere, triangle or plane
	Center   *vec3   `json:"center,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	A        *vec3   `json:"a,omitempty"`
	B        *vec3   `json:"b,omitempty"`
	C        *vec3   `json:"c,omitempty"`
	Min      *vec3   `json:"min,omitempty"`
	Max      *vec3   `json:"max,omitempty"`
	Material int     `json:"material"`
}

type modelEntry struct {
	Path     string  `json:"path"`
	Material int     `json:"material"`
	Offset   vec3    `json:"offset"`
	Scale    float64 `json:"scale,omitempty"` // 0 means 1
}

// LoadScene reads a JSON scene file. Model paths inside it are resolved
// relative to the file's directory.
func LoadScene(path string) (*scene.Scene, error) {
	if err := validateFilePath(path, ".json"); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ReadScene(file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}
	return s, nil
}

// ReadScene decodes a JSON scene and validates it
func ReadScene(r io.Reader, baseDir string) (*scene.Scene, error) {
	var file sceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("invalid scene json: %w", err)
	}

	s := scene.New(scene.CameraSetup{
		LookFrom: file.LookFrom.toVec3(),
		LookAt:   file.LookAt.toVec3(),
		VFov:     file.Fov,
	})

	for i, entry := range file.Materials {
		m, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
		s.AddMaterial(m)
	}

	for i, entry := range file.Shapes {
		shape, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		s.Add(shape, entry.Material)
	}

	for i, entry := range file.Models {
		primitives, err := entry.load(baseDir)
		if err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
		s.Primitives = append(s.Primitives, primitives...)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	spheres, triangles, planes := s.ShapeCounts()
	logger.Debugf("read scene: %d spheres, %d triangles, %d planes, %d materials",
		spheres, triangles, planes, len(s.Materials))
	return s, nil
}

func (entry materialEntry) build() (material.Material, error) {
	switch entry.Kind {
	case "diffuse":
		if entry.Albedo == nil {
			return nil, fmt.Errorf("diffuse material requires albedo")
		}
		return material.NewLambertian(entry.Albedo.toVec3()), nil
	case "metal":
		if entry.Albedo == nil {
			return nil, fmt.Errorf("metal material requires albedo")
		}
		return material.NewMetal(entry.Albedo.toVec3(), entry.Fuzz), nil
	case "dielectric":
		if entry.IOR <= 0 {
			return nil, fmt.Errorf("dielectric material requires a positive ior, got %g", entry.IOR)
		}
		return material.NewDielectric(entry.IOR), nil
	default:
		return nil, fmt.Errorf("unknown material kind %q", entry.Kind)
	}
}

func (entry shapeEntry) build() (geometry.Shape, error) {
	switch entry.Kind {
	case "sphere":
		if entry.Center == nil {
			return nil, fmt.Errorf("sphere requires center")
		}
		if entry.Radius == 0 {
			return nil, fmt.Errorf("sphere requires a non-zero radius")
		}
		return geometry.NewSphere(entry.Center.toVec3(), entry.Radius), nil
	case "triangle":
		if entry.A == nil || entry.B == nil || entry.C == nil {
			return nil, fmt.Errorf("triangle requires vertices a, b and c")
		}
		return geometry.NewTriangle(entry.A.toVec3(), entry.B.toVec3(), entry.C.toVec3()), nil
	case "plane":
		if entry.Min == nil || entry.Max == nil {
			return nil, fmt.Errorf("plane requires min and max corners")
		}
		return geometry.NewPlane(entry.Min.toVec3(), entry.Max.toVec3()), nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", entry.Kind)
	}
}

func (entry modelEntry) load(baseDir string) ([]geometry.Primitive, error) {
	path := entry.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	transform := Transform{Offset: entry.Offset.toVec3(), Scale: entry.Scale}
	if transform.Scale == 0 {
		transform.Scale = 1
	}
	return LoadGLB(path, entry.Material, transform)
}

// WriteScene encodes a scene as indented JSON. Imported models are written
// out as their individual triangles.
func WriteScene(w io.Writer, s *scene.Scene) error {
	file := sceneFile{
		LookFrom:  *fromVec3(s.Camera.LookFrom),
		LookAt:    *fromVec3(s.Camera.LookAt),
		Fov:       s.Camera.VFov,
		Materials: make([]materialEntry, 0, len(s.Materials)),
		Shapes:    make([]shapeEntry, 0, len(s.Primitives)),
	}

	for i, m := range s.Materials {
		switch m := m.(type) {
		case *material.Lambertian:
			file.Materials = append(file.Materials, materialEntry{Kind: "diffuse", Albedo: fromVec3(m.Albedo)})
		case *material.Metal:
			file.Materials = append(file.Materials, materialEntry{Kind: "metal", Albedo: fromVec3(m.Albedo), Fuzz: m.Fuzz})
		case *material.Dielectric:
			file.Materials = append(file.Materials, materialEntry{Kind: "dielectric", IOR: m.RefractiveIndex})
		default:
			return fmt.Errorf("material %d: unsupported type %T", i, m)
		}
	}

	for i, primitive := range s.Primitives {
		entry := shapeEntry{Material: primitive.Material}
		switch shape := primitive.Shape.(type) {
		case *geometry.Sphere:
			entry.Kind = "sphere"
			entry.Center = fromVec3(shape.Center)
			entry.Radius = shape.Radius
		case *geometry.Triangle:
			entry.Kind = "triangle"
			entry.A, entry.B, entry.C = fromVec3(shape.A), fromVec3(shape.B), fromVec3(shape.C)
		case *geometry.Plane:
			entry.Kind = "plane"
			entry.Min = fromVec3(shape.Bounds.Min)
			entry.Max = fromVec3(shape.Bounds.Max)
		default:
			return fmt.Errorf("primitive %d: unsupported shape %T", i, shape)
		}
		file.Shapes = append(file.Shapes, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(file)
}
