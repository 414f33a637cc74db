package integrator

import (
	"math"

	"github.com/example/go-raytracer/pkg/core"
)

// NormalIntegrator visualizes surface normals for scene debugging.
// Each hit is shaded by remapping the unit normal from [-1,1] to [0,1]
// per component; misses show the scene background.
type NormalIntegrator struct{}

// NewNormalIntegrator creates a new normal visualization integrator
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{}
}

// RayColor maps the closest hit's normal to a color
func (n *NormalIntegrator) RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Vec3 {
	hit, isHit := scene.GetAccel().Hit(ray, shadowEpsilon, math.Inf(1))
	if !isHit {
		return scene.Background()
	}

	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
