package accel

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/example/go-raytracer/pkg/core"
	"github.com/example/go-raytracer/pkg/geometry"
)

func TestNewBVH_Empty(t *testing.T) {
	_, err := NewBVH(nil)
	if !errors.Is(err, ErrNoShapes) {
		t.Errorf("Expected ErrNoShapes, got %v", err)
	}
}

func TestBVH_Hit_SingleSphere(t *testing.T) {
	bvh, err := NewBVH([]core.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, nil),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected hit at t=1.5, got t=%f", hit.T)
	}

	miss := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if _, isHit := bvh.Hit(miss, 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss for ray pointing away")
	}
}

// sphereGrid builds enough spheres to force internal BVH nodes
func sphereGrid(n int) []core.Shape {
	shapes := make([]core.Shape, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			center := core.NewVec3(float64(i)*2, float64(j)*2, -5)
			shapes = append(shapes, geometry.NewSphere(center, 0.4, nil))
		}
	}
	return shapes
}

func TestBVH_MatchesLinearList(t *testing.T) {
	shapes := sphereGrid(8) // 64 spheres, well past the leaf threshold

	bvh, err := NewBVH(shapes)
	if err != nil {
		t.Fatalf("Unexpected BVH error: %v", err)
	}
	list, err := NewLinearList(shapes)
	if err != nil {
		t.Fatalf("Unexpected list error: %v", err)
	}

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		origin := core.NewVec3(
			random.Float64()*16-1,
			random.Float64()*16-1,
			random.Float64()*4,
		)
		direction := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64()))
		ray := core.NewRay(origin, direction)

		bvhHit, bvhIsHit := bvh.Hit(ray, 0.001, math.Inf(1))
		listHit, listIsHit := list.Hit(ray, 0.001, math.Inf(1))

		if bvhIsHit != listIsHit {
			t.Fatalf("Ray %d: BVH hit=%t, list hit=%t", i, bvhIsHit, listIsHit)
		}

		if bvhIsHit && math.Abs(bvhHit.T-listHit.T) > 1e-9 {
			t.Fatalf("Ray %d: BVH t=%f, list t=%f", i, bvhHit.T, listHit.T)
		}
	}
}

func TestBVH_IntervalBounds(t *testing.T) {
	shapes := sphereGrid(4)
	bvh, err := NewBVH(shapes)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Ray down the first column of spheres
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.6) > 1e-9 {
		t.Errorf("Expected nearest surface at t=4.6, got t=%f", hit.T)
	}

	if _, isHit := bvh.Hit(ray, 0.001, 4.0); isHit {
		t.Error("Expected miss due to tMax bound")
	}
}
