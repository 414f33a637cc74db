package accel

import (
	"sort"

	"github.com/example/go-raytracer/pkg/core"
)

// bvhNode represents a node in the Bounding Volume Hierarchy
type bvhNode struct {
	boundingBox core.AABB
	left        *bvhNode
	right       *bvhNode
	shapes      []core.Shape // Leaf shapes (nil for internal nodes)
}

// BVH is a Bounding Volume Hierarchy for fast ray-shape intersection.
// It answers the same queries as LinearList; traversal order may
// differ, so exact equal-t tie-breaking is only preserved up to
// floating-point tolerance.
type BVH struct {
	root *bvhNode
}

// Leaf threshold: nodes with this many or fewer shapes become leaves
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []core.Shape) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}

	// Building sorts the slice in place, so work on a copy
	shapesCopy := make([]core.Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{root: buildBVH(shapesCopy)}, nil
}

// buildBVH recursively builds the BVH with a median split along the
// longest axis of the node's bounding box
func buildBVH(shapes []core.Shape) *bvhNode {
	boundingBox := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		boundingBox = boundingBox.Union(shapes[i].BoundingBox())
	}

	// Small groups use linear search within the leaf
	if len(shapes) <= leafThreshold {
		return &bvhNode{
			boundingBox: boundingBox,
			shapes:      shapes,
		}
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	return &bvhNode{
		boundingBox: boundingBox,
		left:        buildBVH(shapes[:mid]),
		right:       buildBVH(shapes[mid:]),
	}
}

// sortShapesByAxis sorts shapes by their bounding box center along the specified axis
func sortShapesByAxis(shapes []core.Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		centerI := shapes[i].BoundingBox().Center()
		centerJ := shapes[j].BoundingBox().Center()

		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})
}

// Hit returns the closest hit in [tMin, tMax], or false on a miss
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return hitNode(b.root, ray, tMin, tMax)
}

// BoundingBox returns the box enclosing the whole hierarchy, letting a
// built BVH nest inside another structure as a composite shape.
func (b *BVH) BoundingBox() core.AABB {
	return b.root.boundingBox
}

// hitNode recursively tests ray intersection with BVH nodes
func hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !node.boundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// Leaf node: linear search over the contained shapes
	if node.shapes != nil {
		var closestHit *core.HitRecord
		hitAnything := false
		closestSoFar := tMax

		for _, shape := range node.shapes {
			hit, isHit := shape.Hit(ray, tMin, closestSoFar)
			if !isHit {
				continue
			}
			// Shapes accept t == tMax; keep the earlier shape on ties
			if hitAnything && hit.T >= closestSoFar {
				continue
			}
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}

		return closestHit, hitAnything
	}

	// Internal node: test both children, narrowing the interval with
	// the left result before descending right
	var closestHit *core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	if hit, isHit := hitNode(node.left, ray, tMin, closestSoFar); isHit {
		hitAnything = true
		closestSoFar = hit.T
		closestHit = hit
	}

	if hit, isHit := hitNode(node.right, ray, tMin, closestSoFar); isHit {
		if !hitAnything || hit.T < closestSoFar {
			hitAnything = true
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
