package material

import (
	"fmt"
	"math"

	"github.com/example/go-raytracer/pkg/core"
)

// BlinnPhong combines a diffuse lobe and a specular lobe weighted by a
// shininess exponent. Unlike Lambertian it does not importance-sample
// a distribution: the continuation direction is the deterministic
// mirror reflection and the lobes are evaluated analytically with the
// half vector.
type BlinnPhong struct {
	Albedo    core.Vec3 // Diffuse color
	Specular  core.Vec3 // Specular color
	Shininess float64   // Specular exponent; higher is glossier
}

// NewBlinnPhong creates a new Blinn-Phong material
func NewBlinnPhong(albedo, specular core.Vec3, shininess float64) (*BlinnPhong, error) {
	if err := validateUnitRange("albedo", albedo); err != nil {
		return nil, err
	}
	if err := validateUnitRange("specular", specular); err != nil {
		return nil, err
	}
	if albedo.X+specular.X > 1 || albedo.Y+specular.Y > 1 || albedo.Z+specular.Z > 1 {
		return nil, fmt.Errorf("material: albedo %v plus specular %v exceeds 1, material would amplify light", albedo, specular)
	}
	if shininess <= 0 {
		return nil, fmt.Errorf("material: shininess must be positive, got %f", shininess)
	}
	return &BlinnPhong{Albedo: albedo, Specular: specular, Shininess: shininess}, nil
}

// Scatter implements the Material interface for Blinn-Phong shading
func (bp *BlinnPhong) Scatter(rayIn core.Ray, hit core.HitRecord, _ core.Sampler) (core.ScatterResult, bool) {
	unitDirection := rayIn.Direction.Normalize()
	reflected := reflect(unitDirection, hit.Normal)

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	// The continuation is the mirror direction, so the half vector is
	// taken between the view direction and the normal. n·h falls off
	// with incidence angle, and the exponent narrows the lobe: high
	// shininess keeps the highlight only near normal incidence.
	half := unitDirection.Negate().Add(hit.Normal).Normalize()
	nDotH := math.Max(0, hit.Normal.Dot(half))
	specularWeight := math.Pow(nDotH, bp.Shininess)

	cosTheta := math.Max(0, reflected.Dot(hit.Normal))
	attenuation := bp.Albedo.Multiply(cosTheta).Add(bp.Specular.Multiply(specularWeight))

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: attenuation,
	}, true
}
