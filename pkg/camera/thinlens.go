package camera

import (
	"fmt"

	"github.com/example/go-raytracer/pkg/core"
)

// ThinLens approximates a camera lens with a finite aperture: ray
// origins are spread across an aperture disc and re-aimed through the
// focus plane, producing depth of field without simulating refraction
// through actual lens elements.
type ThinLens struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
}

// NewThinLens creates a thin-lens camera. Aperture is the lens
// diameter; zero degenerates to pinhole behavior. Objects at
// focusDistance from the eye render sharp.
func NewThinLens(lookFrom, lookAt, up core.Vec3, vfovDegrees, aspect, aperture, focusDistance float64) (*ThinLens, error) {
	if aperture < 0 {
		return nil, fmt.Errorf("camera: aperture must be non-negative, got %f", aperture)
	}
	if focusDistance <= 0 {
		return nil, fmt.Errorf("camera: focus distance must be positive, got %f", focusDistance)
	}

	frame, err := lookAtFrame(lookFrom, lookAt, up, vfovDegrees, aspect, focusDistance)
	if err != nil {
		return nil, err
	}

	return &ThinLens{
		origin:          lookFrom,
		lowerLeftCorner: frame.lowerLeftCorner,
		horizontal:      frame.horizontal,
		vertical:        frame.vertical,
		u:               frame.u,
		v:               frame.v,
		lensRadius:      aperture / 2,
	}, nil
}

// GetRay generates a ray through image-plane coordinates (u, v) with
// its origin jittered across the aperture disc. The disc sample uses
// the concentric mapping, which is uniform over the disc and free of
// center bias.
func (c *ThinLens) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(origin, direction)
}
