package camera

import (
	"math"
	"testing"

	"github.com/example/go-raytracer/pkg/core"
)

func TestNewPinhole_Validation(t *testing.T) {
	tests := []struct {
		name        string
		horizontal  core.Vec3
		vertical    core.Vec3
		expectError bool
	}{
		{"valid frame", core.NewVec3(4, 0, 0), core.NewVec3(0, 2, 0), false},
		{"zero horizontal", core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), true},
		{"parallel basis vectors", core.NewVec3(4, 0, 0), core.NewVec3(2, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPinhole(
				core.NewVec3(0, 0, 0),
				core.NewVec3(-2, -1, -1),
				tt.horizontal,
				tt.vertical,
			)
			if tt.expectError && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestNewPinholeLookAt_Validation(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 0)
	lookAt := core.NewVec3(0, 0, -1)
	up := core.NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		lookFrom core.Vec3
		lookAt   core.Vec3
		up       core.Vec3
		vfov     float64
		aspect   float64
	}{
		{"coincident eye and target", lookAt, lookAt, up, 90, 16.0 / 9.0},
		{"zero fov", lookFrom, lookAt, up, 0, 16.0 / 9.0},
		{"fov over 180", lookFrom, lookAt, up, 200, 16.0 / 9.0},
		{"non-positive aspect", lookFrom, lookAt, up, 90, 0},
		{"up parallel to view", lookFrom, lookAt, core.NewVec3(0, 0, 1), 90, 16.0 / 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPinholeLookAt(tt.lookFrom, tt.lookAt, tt.up, tt.vfov, tt.aspect); err == nil {
				t.Error("Expected error, got none")
			}
		})
	}
}

func TestPinhole_GetRay_Deterministic(t *testing.T) {
	cam, err := NewPinholeLookAt(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90, 2.0,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewSeededRandomSampler(42)

	// With no aperture, every ray from a fixed pixel coordinate is
	// identical across samples
	first := cam.GetRay(0.3, 0.7, sampler)
	for i := 0; i < 10; i++ {
		ray := cam.GetRay(0.3, 0.7, sampler)
		if ray != first {
			t.Fatalf("Pinhole rays differ across samples: %v vs %v", first, ray)
		}
	}

	if first.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected ray origin at the eye, got %v", first.Origin)
	}
}

func TestPinhole_GetRay_CenterPixel(t *testing.T) {
	cam, err := NewPinholeLookAt(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90, 1.0,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The ray through the image center points straight at the target
	ray := cam.GetRay(0.5, 0.5, nil)
	dir := ray.Direction.Normalize()
	expected := core.NewVec3(0, 0, -1)

	if dir.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray direction %v, got %v", expected, dir)
	}
}

func TestNewThinLens_Validation(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 0)
	lookAt := core.NewVec3(0, 0, -1)
	up := core.NewVec3(0, 1, 0)

	if _, err := NewThinLens(lookFrom, lookAt, up, 90, 1.0, -0.1, 1.0); err == nil {
		t.Error("Expected error for negative aperture")
	}
	if _, err := NewThinLens(lookFrom, lookAt, up, 90, 1.0, 0.5, 0); err == nil {
		t.Error("Expected error for non-positive focus distance")
	}
	if _, err := NewThinLens(lookFrom, lookAt, up, 90, 1.0, 0.5, 2.0); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestThinLens_GetRay_OriginsVary(t *testing.T) {
	cam, err := NewThinLens(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90, 1.0, 0.5, 3.0,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewSeededRandomSampler(42)

	origins := make(map[core.Vec3]bool)
	for i := 0; i < 32; i++ {
		ray := cam.GetRay(0.5, 0.5, sampler)
		origins[ray.Origin] = true

		// Origins stay within the aperture disc around the eye
		if ray.Origin.Length() > 0.25+1e-9 {
			t.Fatalf("Ray origin %v outside aperture radius", ray.Origin)
		}
	}

	if len(origins) < 2 {
		t.Error("Expected ray origins to vary across samples with a nonzero aperture")
	}
}

func TestThinLens_GetRay_ConvergesAtFocusPlane(t *testing.T) {
	const focusDistance = 3.0
	cam, err := NewThinLens(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90, 1.0, 0.5, focusDistance,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewSeededRandomSampler(42)

	// All rays from a fixed pixel coordinate intersect the same point
	// on the focus plane: with an unnormalized direction the plane is
	// reached at t=1
	focusPoint := cam.GetRay(0.25, 0.75, sampler).At(1.0)
	for i := 0; i < 32; i++ {
		point := cam.GetRay(0.25, 0.75, sampler).At(1.0)
		if point.Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Ray does not converge at focus point: %v vs %v", point, focusPoint)
		}
	}

	if math.Abs(focusPoint.Z+focusDistance) > 1e-9 {
		t.Errorf("Expected focus point on the z=-%f plane, got %v", focusDistance, focusPoint)
	}
}

func TestThinLens_ZeroAperture_Deterministic(t *testing.T) {
	cam, err := NewThinLens(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90, 1.0, 0, 2.0,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewSeededRandomSampler(42)
	first := cam.GetRay(0.4, 0.6, sampler)
	for i := 0; i < 10; i++ {
		if ray := cam.GetRay(0.4, 0.6, sampler); ray != first {
			t.Fatalf("Zero-aperture rays differ across samples: %v vs %v", first, ray)
		}
	}
}
