package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// A node with no children is a leaf holding a single primitive.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Primitive   int // Index into BVH.Primitives (leaf nodes only)
}

// IsLeaf reports whether the node holds a primitive instead of children
func (n *BVHNode) IsLeaf() bool {
	return n.Left == nil
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is immutable once built and safe for concurrent use.
type BVH struct {
	Root       *BVHNode
	Primitives []Primitive
}

// boxedPrimitive pairs a primitive index with its precomputed bounds
type boxedPrimitive struct {
	index int
	box   core.AABB
}

// NewBVH constructs a BVH over the primitives. Split axes are drawn from
// random, so the same seed always yields the same tree. A nil random uses a
// fixed seed.
func NewBVH(primitives []Primitive, random *rand.Rand) *BVH {
	if len(primitives) == 0 {
		return &BVH{Root: nil}
	}
	if random == nil {
		random = rand.New(rand.NewSource(0))
	}

	// Bounds are computed once; the build only reorders this slice
	items := make([]boxedPrimitive, len(primitives))
	for i, primitive := range primitives {
		items[i] = boxedPrimitive{index: i, box: primitive.BoundingBox()}
	}

	return &BVH{
		Root:       buildBVH(items, random),
		Primitives: primitives,
	}
}

// buildBVH recursively builds the tree by median split along a random axis.
// No surface area heuristic is used: the tree is balanced by primitive count,
// which keeps the build fast and its height at ceil(log2 n).
func buildBVH(items []boxedPrimitive, random *rand.Rand) *BVHNode {
	boxes := make([]core.AABB, len(items))
	for i, item := range items {
		boxes[i] = item.box
	}
	boundingBox := core.MergeAll(boxes...)

	axis := random.Intn(3)

	if len(items) == 1 {
		return &BVHNode{
			BoundingBox: boundingBox,
			Primitive:   items[0].index,
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].box.Min.Axis(axis) < items[j].box.Min.Axis(axis)
	})

	mid := len(items) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(items[:mid], random),
		Right:       buildBVH(items[mid:], random),
	}
}

// Hit returns the nearest primitive hit with t in [tMin, tMax]
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if bvh.Root == nil {
		return core.HitRecord{}, false
	}
	invDir := ray.Direction.Recip()
	return bvh.hitNode(bvh.Root, ray, invDir, tMin, tMax)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, invDir core.Vec3, tMin, tMax float64) (core.HitRecord, bool) {
	// Missing the box prunes the whole subtree
	if !node.BoundingBox.HitInverse(ray.Origin, invDir) {
		return core.HitRecord{}, false
	}

	if node.IsLeaf() {
		return bvh.Primitives[node.Primitive].Hit(ray, tMin, tMax)
	}

	// Both children are always visited. The right child only needs to beat
	// the left child's hit, so its primitives are tested up to that distance.
	leftHit, leftIsHit := bvh.hitNode(node.Left, ray, invDir, tMin, tMax)
	closestSoFar := tMax
	if leftIsHit {
		closestSoFar = leftHit.T
	}

	if rightHit, rightIsHit := bvh.hitNode(node.Right, ray, invDir, tMin, closestSoFar); rightIsHit {
		return rightHit, true
	}
	return leftHit, leftIsHit
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes      int
	LeafNodes       int
	MaxDepth        int
	AvgDepth        float64
	TotalPrimitives int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.IsLeaf() {
		stats.LeafNodes++
		stats.TotalPrimitives++
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
