package material

import (
	"fmt"

	"github.com/example/go-raytracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted radiance per channel
}

// NewEmissive creates a new emissive material. Emission components
// may exceed 1: lights are brighter than reflectors.
func NewEmissive(emission core.Vec3) (*Emissive, error) {
	if emission.X < 0 || emission.Y < 0 || emission.Z < 0 {
		return nil, fmt.Errorf("material: emission components must be non-negative, got %v", emission)
	}
	return &Emissive{Emission: emission}, nil
}

// Scatter implements the Material interface for emissive materials.
// Emissive materials never scatter; emission is a terminal event for
// the integrator.
func (e *Emissive) Scatter(rayIn core.Ray, hit core.HitRecord, _ core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted radiance for this material
func (e *Emissive) Emit(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return e.Emission
}
