package material

import (
	"github.com/example/go-raytracer/pkg/core"
)

// Mirror represents a perfect specular reflector
type Mirror struct {
	Reflectance core.Vec3 // Fraction of light reflected per channel
}

// NewMirror creates a new mirror material
func NewMirror(reflectance core.Vec3) (*Mirror, error) {
	if err := validateUnitRange("reflectance", reflectance); err != nil {
		return nil, err
	}
	return &Mirror{Reflectance: reflectance}, nil
}

// Scatter implements the Material interface for mirror reflection.
// The scattered direction is deterministic: the sampler is never
// consulted, so a mirror contributes zero sampling variance.
func (m *Mirror) Scatter(rayIn core.Ray, hit core.HitRecord, _ core.Sampler) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Grazing numerical error can reflect below the surface; treat
	// that as absorption
	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Reflectance,
	}, true
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
