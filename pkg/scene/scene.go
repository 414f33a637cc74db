package scene

import (
	"fmt"

	"github.com/example/go-raytracer/pkg/core"
)

// Scene is the immutable aggregate consumed by the renderer: geometry
// behind an acceleration structure, a camera, an integrator, and the
// image parameters. All accessors are safe for concurrent use.
type Scene struct {
	camera          core.Camera
	accel           core.Accel
	integrator      core.Integrator
	background      core.Vec3
	width           int
	height          int
	samplesPerPixel int
}

// NewScene validates and assembles a scene
func NewScene(camera core.Camera, accel core.Accel, integrator core.Integrator,
	background core.Vec3, width, height, samplesPerPixel int) (*Scene, error) {
	if camera == nil {
		return nil, fmt.Errorf("scene: camera is required")
	}
	if accel == nil {
		return nil, fmt.Errorf("scene: acceleration structure is required")
	}
	if integrator == nil {
		return nil, fmt.Errorf("scene: integrator is required")
	}
	if width <= 0 {
		return nil, fmt.Errorf("scene: width must be positive, got %d", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("scene: height must be positive, got %d", height)
	}
	if samplesPerPixel <= 0 {
		return nil, fmt.Errorf("scene: samples per pixel must be positive, got %d", samplesPerPixel)
	}

	return &Scene{
		camera:          camera,
		accel:           accel,
		integrator:      integrator,
		background:      background,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}, nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() core.Camera { return s.camera }

// GetAccel returns the acceleration structure holding the geometry
func (s *Scene) GetAccel() core.Accel { return s.accel }

// GetIntegrator returns the light transport integrator
func (s *Scene) GetIntegrator() core.Integrator { return s.integrator }

// Background returns the color for rays that escape the scene
func (s *Scene) Background() core.Vec3 { return s.background }

// Width returns the image width in pixels
func (s *Scene) Width() int { return s.width }

// Height returns the image height in pixels
func (s *Scene) Height() int { return s.height }

// SamplesPerPixel returns the number of camera rays per pixel
func (s *Scene) SamplesPerPixel() int { return s.samplesPerPixel }
