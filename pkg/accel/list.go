// Package accel provides acceleration structures that answer
// nearest-hit queries over a scene's shapes. All structures implement
// core.Accel, so a spatial index can replace the linear baseline
// without changing callers.
package accel

import (
	"errors"

	"github.com/example/go-raytracer/pkg/core"
)

// ErrNoShapes is returned when a structure is constructed from an
// empty shape set.
var ErrNoShapes = errors.New("accel: at least one shape is required")

// LinearList is the baseline structure: an unordered scan over every
// shape. Slow, but trivially correct; the reference the spatial
// indexes are tested against.
type LinearList struct {
	shapes []core.Shape
}

// NewLinearList creates a linear-scan structure over the given shapes
func NewLinearList(shapes []core.Shape) (*LinearList, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}

	// Copy so later mutation of the caller's slice cannot be observed
	// by concurrent render workers
	shapesCopy := make([]core.Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &LinearList{shapes: shapesCopy}, nil
}

// BoundingBox returns the union of the contained shapes' boxes. A list
// satisfies core.Shape, so it can nest inside another structure as a
// single composite shape.
func (l *LinearList) BoundingBox() core.AABB {
	box := l.shapes[0].BoundingBox()
	for _, shape := range l.shapes[1:] {
		box = box.Union(shape.BoundingBox())
	}
	return box
}

// Hit returns the closest hit in [tMin, tMax], or false on a miss.
// The search interval narrows to each candidate's T, so later shapes
// are rejected cheaply and an exactly-equal later candidate loses to
// the first one found.
func (l *LinearList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.shapes {
		hit, isHit := shape.Hit(ray, tMin, closestSoFar)
		if !isHit {
			continue
		}
		// Shapes accept t == tMax, so reject the exact-tie case here
		if hitAnything && hit.T >= closestSoFar {
			continue
		}
		hitAnything = true
		closestSoFar = hit.T
		closestHit = hit
	}

	return closestHit, hitAnything
}
