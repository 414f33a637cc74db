package scene

import (
	"fmt"

	"github.com/example/go-raytracer/pkg/accel"
	"github.com/example/go-raytracer/pkg/camera"
	"github.com/example/go-raytracer/pkg/core"
	"github.com/example/go-raytracer/pkg/geometry"
	"github.com/example/go-raytracer/pkg/integrator"
	"github.com/example/go-raytracer/pkg/material"
)

// Config contains the image and integrator parameters shared by the
// built-in scenes.
type Config struct {
	Width           int  // Image width
	Height          int  // Image height
	SamplesPerPixel int  // Number of camera rays per pixel
	MaxDepth        int  // Maximum ray bounce depth
	NormalsOnly     bool // Visualize normals instead of shading
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          450,
		SamplesPerPixel: 100,
		MaxDepth:        16,
	}
}

// newIntegrator builds the integrator selected by the config
func newIntegrator(config Config) (core.Integrator, error) {
	if config.NormalsOnly {
		return integrator.NewNormalIntegrator(), nil
	}
	return integrator.NewWhittedIntegrator(config.MaxDepth)
}

// NewDefaultScene creates the demo scene: a ground sphere, one sphere
// per surface material, and an emissive sphere light under a sky
// background.
func NewDefaultScene(config Config) (*Scene, error) {
	whitted, err := newIntegrator(config)
	if err != nil {
		return nil, err
	}

	ground, err := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	if err != nil {
		return nil, err
	}
	matte, err := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	if err != nil {
		return nil, err
	}
	mirror, err := material.NewMirror(core.NewVec3(0.9, 0.9, 0.9))
	if err != nil {
		return nil, err
	}
	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	glossy, err := material.NewBlinnPhong(core.NewVec3(0.5, 0.15, 0.1), core.NewVec3(0.3, 0.3, 0.3), 64)
	if err != nil {
		return nil, err
	}
	light, err := material.NewEmissive(core.NewVec3(8, 7.5, 7))
	if err != nil {
		return nil, err
	}

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, matte),
		geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1), 0.5, mirror),
		geometry.NewSphere(core.NewVec3(1.1, 0.5, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(0.4, 0.2, -0.3), 0.2, glossy),
		geometry.NewSphere(core.NewVec3(-2, 3, 1), 1, light),
	}

	bvh, err := accel.NewBVH(shapes)
	if err != nil {
		return nil, err
	}

	aspect := float64(config.Width) / float64(config.Height)
	cam, err := camera.NewThinLens(
		core.NewVec3(0, 0.75, 2),  // lookFrom
		core.NewVec3(0, 0.5, -1),  // lookAt
		core.NewVec3(0, 1, 0),     // up
		40,                        // vertical fov in degrees
		aspect,
		0.05, // aperture
		3.0,  // focus distance, roughly the center sphere
	)
	if err != nil {
		return nil, err
	}

	skyBlue := core.NewVec3(0.5, 0.7, 1.0)
	return NewScene(cam, bvh, whitted, skyBlue, config.Width, config.Height, config.SamplesPerPixel)
}

// NewMirrorBoxScene creates two large mirror spheres facing each other
// with a small diffuse sphere between them. Rays bounce back and forth
// until the integrator's depth limit cuts them off, which makes this
// the stress scene for recursion termination.
func NewMirrorBoxScene(config Config) (*Scene, error) {
	whitted, err := newIntegrator(config)
	if err != nil {
		return nil, err
	}

	mirror, err := material.NewMirror(core.NewVec3(0.97, 0.97, 0.97))
	if err != nil {
		return nil, err
	}
	red, err := material.NewLambertian(core.NewVec3(0.7, 0.2, 0.2))
	if err != nil {
		return nil, err
	}

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, -103), 100, mirror),
		geometry.NewSphere(core.NewVec3(0, 0, 103), 100, mirror),
		geometry.NewSphere(core.NewVec3(0, -0.6, -1.5), 0.4, red),
	}

	list, err := accel.NewLinearList(shapes)
	if err != nil {
		return nil, err
	}

	aspect := float64(config.Width) / float64(config.Height)
	cam, err := camera.NewPinholeLookAt(
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		60,
		aspect,
	)
	if err != nil {
		return nil, err
	}

	dimGray := core.NewVec3(0.1, 0.1, 0.1)
	return NewScene(cam, list, whitted, dimGray, config.Width, config.Height, config.SamplesPerPixel)
}

// NewSceneByName builds one of the built-in scenes. Unknown names are
// reported back with the list of valid choices.
func NewSceneByName(name string, config Config) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(config)
	case "mirrorbox":
		return NewMirrorBoxScene(config)
	default:
		return nil, fmt.Errorf("scene: unknown scene %q (valid: default, mirrorbox)", name)
	}
}
