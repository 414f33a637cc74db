// Package material implements surface scattering models. Each
// material's Scatter is a pure function of (incoming ray, hit,
// sampler); absorption is reported by returning false, never by an
// error. Constructors validate physical parameters.
package material

import (
	"fmt"

	"github.com/example/go-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance per channel
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) (*Lambertian, error) {
	if err := validateUnitRange("albedo", albedo); err != nil {
		return nil, err
	}
	return &Lambertian{Albedo: albedo}, nil
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	// Cosine-weighted direction in the hemisphere around the normal
	scatterDirection := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	scattered := core.NewRay(hit.Point, scatterDirection)

	// With cosine-weighted sampling the cos/π terms of BRDF and PDF
	// cancel, leaving the albedo as the attenuation
	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}

// validateUnitRange checks that every component of v lies in [0, 1]
func validateUnitRange(name string, v core.Vec3) error {
	if v.X < 0 || v.X > 1 || v.Y < 0 || v.Y > 1 || v.Z < 0 || v.Z > 1 {
		return fmt.Errorf("material: %s components must be in [0, 1], got %v", name, v)
	}
	return nil
}
