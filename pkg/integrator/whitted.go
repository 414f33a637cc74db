package integrator

import (
	"fmt"
	"math"

	"github.com/example/go-raytracer/pkg/core"
)

// shadowEpsilon is the lower intersection bound for all integrator
// queries. It keeps secondary rays from re-hitting the surface they
// just left due to floating point error.
const shadowEpsilon = 1e-3

// WhittedIntegrator implements recursive Whitted-style ray tracing.
// Each bounce multiplies the material attenuation into the recursive
// estimate; recursion stops with a hard cutoff at the depth limit.
type WhittedIntegrator struct {
	maxDepth int
}

// NewWhittedIntegrator creates a Whitted integrator with the given
// recursion depth limit.
func NewWhittedIntegrator(maxDepth int) (*WhittedIntegrator, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("integrator: max depth must be positive, got %d", maxDepth)
	}
	return &WhittedIntegrator{maxDepth: maxDepth}, nil
}

// RayColor computes the radiance carried by a camera ray
func (w *WhittedIntegrator) RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Vec3 {
	return w.rayColorRecursive(ray, scene, sampler, w.maxDepth)
}

func (w *WhittedIntegrator) rayColorRecursive(ray core.Ray, scene core.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// Past the bounce limit no more light is gathered; the cutoff
	// contributes zero rather than the background so deep mirror
	// corridors darken instead of glowing
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, isHit := scene.GetAccel().Hit(ray, shadowEpsilon, math.Inf(1))
	if !isHit {
		return scene.Background()
	}

	colorEmitted := w.getEmittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Absorbed: only emitted light escapes
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		w.rayColorRecursive(scatter.Scattered, scene, sampler, depth-1))
	return colorEmitted.Add(colorScattered)
}

// getEmittedLight returns the emitted light from a material if it's emissive
func (w *WhittedIntegrator) getEmittedLight(ray core.Ray, hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}
	return core.NewVec3(0, 0, 0)
}
