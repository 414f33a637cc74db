// Package camera maps normalized pixel-plane coordinates to
// world-space rays. Both variants implement core.Camera.
package camera

import (
	"fmt"
	"math"

	"github.com/example/go-raytracer/pkg/core"
)

// Pinhole is the classic pinhole camera: every ray originates at a
// fixed eye point and passes through a virtual image plane described
// by its lower-left corner and two basis vectors. The raw
// parameterization lets a scene author specify an off-axis or
// anamorphic frustum directly.
type Pinhole struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewPinhole creates a pinhole camera from an eye point and an
// explicit image-plane frame
func NewPinhole(origin, lowerLeftCorner, horizontal, vertical core.Vec3) (*Pinhole, error) {
	if horizontal.Cross(vertical).LengthSquared() == 0 {
		return nil, fmt.Errorf("camera: degenerate image plane, horizontal %v and vertical %v are parallel or zero", horizontal, vertical)
	}

	return &Pinhole{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}, nil
}

// NewPinholeLookAt creates a pinhole camera from a viewpoint, target,
// up direction, vertical field of view in degrees and aspect ratio
func NewPinholeLookAt(lookFrom, lookAt, up core.Vec3, vfovDegrees, aspect float64) (*Pinhole, error) {
	frame, err := lookAtFrame(lookFrom, lookAt, up, vfovDegrees, aspect, 1.0)
	if err != nil {
		return nil, err
	}

	return &Pinhole{
		origin:          lookFrom,
		lowerLeftCorner: frame.lowerLeftCorner,
		horizontal:      frame.horizontal,
		vertical:        frame.vertical,
	}, nil
}

// GetRay generates the ray through image-plane coordinates (u, v).
// The sampler is unused: a pinhole camera is deterministic, rays from
// a fixed (u, v) are identical across samples.
func (c *Pinhole) GetRay(u, v float64, _ core.Sampler) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// viewFrame holds the image-plane frame shared by both camera variants
type viewFrame struct {
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
}

// lookAtFrame derives the image-plane frame from look-at parameters.
// The plane is placed focusDistance away from the eye so that a thin
// lens focuses there; a pinhole uses focusDistance 1.
func lookAtFrame(lookFrom, lookAt, up core.Vec3, vfovDegrees, aspect, focusDistance float64) (viewFrame, error) {
	if lookFrom == lookAt {
		return viewFrame{}, fmt.Errorf("camera: lookFrom and lookAt coincide at %v", lookFrom)
	}
	if vfovDegrees <= 0 || vfovDegrees >= 180 {
		return viewFrame{}, fmt.Errorf("camera: vertical fov must be in (0, 180), got %f", vfovDegrees)
	}
	if aspect <= 0 {
		return viewFrame{}, fmt.Errorf("camera: aspect ratio must be positive, got %f", aspect)
	}

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w)
	if u.LengthSquared() == 0 {
		return viewFrame{}, fmt.Errorf("camera: up vector %v is parallel to the view direction", up)
	}
	u = u.Normalize()
	v := w.Cross(u)

	theta := vfovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight

	horizontal := u.Multiply(2 * halfWidth * focusDistance)
	vertical := v.Multiply(2 * halfHeight * focusDistance)
	lowerLeftCorner := lookFrom.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return viewFrame{
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
	}, nil
}
