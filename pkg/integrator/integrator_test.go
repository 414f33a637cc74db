package integrator

import (
	"math"
	"testing"

	"github.com/example/go-raytracer/pkg/accel"
	"github.com/example/go-raytracer/pkg/core"
	"github.com/example/go-raytracer/pkg/geometry"
	"github.com/example/go-raytracer/pkg/material"
)

// testScene is a minimal core.Scene for integrator tests; camera and
// image parameters are unused here.
type testScene struct {
	accel      core.Accel
	background core.Vec3
}

func (s *testScene) GetCamera() core.Camera         { return nil }
func (s *testScene) GetAccel() core.Accel           { return s.accel }
func (s *testScene) GetIntegrator() core.Integrator { return nil }
func (s *testScene) Background() core.Vec3          { return s.background }
func (s *testScene) Width() int                     { return 1 }
func (s *testScene) Height() int                    { return 1 }
func (s *testScene) SamplesPerPixel() int           { return 1 }

func newTestScene(t *testing.T, background core.Vec3, shapes ...core.Shape) *testScene {
	t.Helper()
	list, err := accel.NewLinearList(shapes)
	if err != nil {
		t.Fatalf("Failed to build test scene: %v", err)
	}
	return &testScene{accel: list, background: background}
}

func mustLambertian(t *testing.T, albedo core.Vec3) core.Material {
	t.Helper()
	m, err := material.NewLambertian(albedo)
	if err != nil {
		t.Fatalf("Failed to create lambertian: %v", err)
	}
	return m
}

func mustMirror(t *testing.T, reflectance core.Vec3) core.Material {
	t.Helper()
	m, err := material.NewMirror(reflectance)
	if err != nil {
		t.Fatalf("Failed to create mirror: %v", err)
	}
	return m
}

func TestNormalIntegrator_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.2, 0.4, 0.6)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, mustLambertian(t, core.NewVec3(0.5, 0.5, 0.5)))
	scene := newTestScene(t, background, sphere)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color := NewNormalIntegrator().RayColor(ray, scene, core.NewSeededRandomSampler(42))

	// Misses return the background exactly, with no tone shift
	if color != background {
		t.Errorf("Expected background %v, got %v", background, color)
	}
}

func TestNormalIntegrator_HitMapsNormalToColor(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, mustLambertian(t, core.NewVec3(0.5, 0.5, 0.5)))
	scene := newTestScene(t, core.NewVec3(0, 0, 0), sphere)

	// Ray down the z axis hits the front of the sphere, normal (0,0,1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := NewNormalIntegrator().RayColor(ray, scene, core.NewSeededRandomSampler(42))

	expected := core.NewVec3(0.5, 0.5, 1.0)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal color %v, got %v", expected, color)
	}
}

func TestNewWhittedIntegrator_Validation(t *testing.T) {
	if _, err := NewWhittedIntegrator(0); err == nil {
		t.Error("Expected error for zero max depth")
	}
	if _, err := NewWhittedIntegrator(-3); err == nil {
		t.Error("Expected error for negative max depth")
	}
	if _, err := NewWhittedIntegrator(8); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestWhittedIntegrator_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.7, 0.8, 1.0)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, mustLambertian(t, core.NewVec3(0.5, 0.5, 0.5)))
	scene := newTestScene(t, background, sphere)

	whitted, err := NewWhittedIntegrator(8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color := whitted.RayColor(ray, scene, core.NewSeededRandomSampler(42))

	if color != background {
		t.Errorf("Expected background %v, got %v", background, color)
	}
}

func TestWhittedIntegrator_DepthCutoffIsBlack(t *testing.T) {
	// Two perfect mirrors facing each other down the z axis: a ray
	// between them bounces forever and must terminate at the depth
	// limit with zero contribution, not the background
	mirror := mustMirror(t, core.NewVec3(1, 1, 1))
	left := geometry.NewSphere(core.NewVec3(0, 0, 1000), 999, mirror)
	right := geometry.NewSphere(core.NewVec3(0, 0, -1000), 999, mirror)
	scene := newTestScene(t, core.NewVec3(0.7, 0.8, 1.0), left, right)

	whitted, err := NewWhittedIntegrator(4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := whitted.RayColor(ray, scene, core.NewSeededRandomSampler(42))

	if color != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black at depth cutoff, got %v", color)
	}
}

func TestWhittedIntegrator_EmissiveIsTerminal(t *testing.T) {
	emission := core.NewVec3(3, 2, 1)
	light, err := material.NewEmissive(emission)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, light)
	scene := newTestScene(t, core.NewVec3(0, 0, 0), sphere)

	whitted, err := NewWhittedIntegrator(8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The emitted value passes through unchanged, even above 1
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := whitted.RayColor(ray, scene, core.NewSeededRandomSampler(42))

	if color != emission {
		t.Errorf("Expected emission %v, got %v", emission, color)
	}
}

func TestWhittedIntegrator_MirrorAttenuatesBackground(t *testing.T) {
	// A head-on mirror sphere reflects the ray straight back out to
	// the background, so the result is background times reflectance
	reflectance := core.NewVec3(0.8, 0.9, 1.0)
	mirror := mustMirror(t, reflectance)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 0.5, mirror)
	background := core.NewVec3(0.5, 0.5, 0.5)
	scene := newTestScene(t, background, sphere)

	whitted, err := NewWhittedIntegrator(8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := whitted.RayColor(ray, scene, core.NewSeededRandomSampler(42))

	expected := background.MultiplyVec(reflectance)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected attenuated background %v, got %v", expected, color)
	}
}

func TestWhittedIntegrator_NoEnergyAmplification(t *testing.T) {
	// A closed diffuse scene with no emitters cannot return more
	// energy than the background provides
	gray := mustLambertian(t, core.NewVec3(0.9, 0.9, 0.9))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, gray)
	ground := geometry.NewSphere(core.NewVec3(0, -100.5, -2), 100, gray)
	scene := newTestScene(t, core.NewVec3(1, 1, 1), sphere, ground)

	whitted, err := NewWhittedIntegrator(16)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewSeededRandomSampler(42)
	for i := 0; i < 200; i++ {
		// Jitter directions toward the spheres
		dir := core.NewVec3(sampler.Get1D()-0.5, sampler.Get1D()-0.5, -1)
		color := whitted.RayColor(core.NewRay(core.NewVec3(0, 0, 0), dir), scene, sampler)

		if color.X > 1+1e-9 || color.Y > 1+1e-9 || color.Z > 1+1e-9 {
			t.Fatalf("Ray %d amplified energy: %v", i, color)
		}
		if math.IsNaN(color.X) || math.IsNaN(color.Y) || math.IsNaN(color.Z) {
			t.Fatalf("Ray %d produced NaN: %v", i, color)
		}
	}
}
