package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
)

// Transform places an imported mesh in the scene: positions are scaled about
// the model origin, then offset
type Transform struct {
	Offset core.Vec3
	Scale  float64
}

// IdentityTransform leaves positions unchanged
var IdentityTransform = Transform{Scale: 1}

// Apply transforms a single position
func (t Transform) Apply(p core.Vec3) core.Vec3 {
	return p.Multiply(t.Scale).Add(t.Offset)
}

// LoadGLB loads every triangle of a glTF or GLB file as primitives using the
// given material index
func LoadGLB(path string, material int, transform Transform) ([]geometry.Primitive, error) {
	if err := validateFilePath(path, ".glb", ".gltf"); err != nil {
		return nil, err
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	primitives, err := TrianglesFromDocument(doc, material, transform)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Infof("loaded %d triangles from %s", len(primitives), path)
	return primitives, nil
}

// TrianglesFromDocument converts the triangle-mode primitives of every mesh
// in doc. Indexed primitives use their index buffer, others are read as
// sequential vertex triples. Lines and points are skipped.
func TrianglesFromDocument(doc *gltf.Document, material int, transform Transform) ([]geometry.Primitive, error) {
	var primitives []geometry.Primitive

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				logger.Debugf("skipping non-triangle primitive in mesh %q", mesh.Name)
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if posIdx < 0 || posIdx >= len(doc.Accessors) {
				return nil, fmt.Errorf("mesh %q: position accessor %d out of range", mesh.Name, posIdx)
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", mesh.Name, err)
			}

			indices, err := primitiveIndices(doc, prim, len(positions))
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
			}

			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := indices[i], indices[i+1], indices[i+2]
				if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
					return nil, fmt.Errorf("mesh %q: index out of range in triangle %d", mesh.Name, i/3)
				}
				triangle := geometry.NewTriangle(
					transform.Apply(toVec3(positions[a])),
					transform.Apply(toVec3(positions[b])),
					transform.Apply(toVec3(positions[c])),
				)
				primitives = append(primitives, geometry.NewPrimitive(triangle, material))
			}
		}
	}

	return primitives, nil
}

// primitiveIndices returns the primitive's index buffer, or 0..count-1 when
// the primitive is not indexed
func primitiveIndices(doc *gltf.Document, prim *gltf.Primitive, count int) ([]uint32, error) {
	if prim.Indices == nil {
		indices := make([]uint32, count)
		for i := range indices {
			indices[i] = uint32(i)
		}
		return indices, nil
	}

	if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
		return nil, fmt.Errorf("index accessor %d out of range", *prim.Indices)
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return nil, fmt.Errorf("read indices: %w", err)
	}
	return indices, nil
}

func toVec3(p [3]float32) core.Vec3 {
	return core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))
}
