package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Each worker owns its own sampler instance; implementations are not
// safe for concurrent use.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededRandomSampler creates a deterministic sampler from a seed
func NewSeededRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// StratifiedSampler jitters 2D samples within an n×n stratum grid so
// that consecutive Get2D calls cover the unit square more evenly than
// independent uniform draws. 1D and 3D queries fall through to the
// underlying generator, as does Get2D once the grid is exhausted.
type StratifiedSampler struct {
	random  *rand.Rand
	n       int // strata per axis
	stratum int // next stratum index, row-major over the n×n grid
}

// NewStratifiedSampler creates a stratified sampler whose grid covers
// sampleCount 2D draws. sampleCount values that are not perfect
// squares are rounded down to the nearest square grid.
func NewStratifiedSampler(random *rand.Rand, sampleCount int) *StratifiedSampler {
	n := int(math.Sqrt(float64(sampleCount)))
	if n < 1 {
		n = 1
	}
	return &StratifiedSampler{random: random, n: n}
}

// Get1D returns a random float64 in [0, 1)
func (s *StratifiedSampler) Get1D() float64 {
	return s.random.Float64()
}

// Get2D returns the next stratified sample in [0, 1)²
func (s *StratifiedSampler) Get2D() Vec2 {
	if s.stratum >= s.n*s.n {
		return NewVec2(s.random.Float64(), s.random.Float64())
	}
	ix := s.stratum % s.n
	iy := s.stratum / s.n
	s.stratum++
	return NewVec2(
		(float64(ix)+s.random.Float64())/float64(s.n),
		(float64(iy)+s.random.Float64())/float64(s.n),
	)
}

// Get3D returns three random float64 values in [0, 1)
func (s *StratifiedSampler) Get3D() Vec3 {
	return NewVec3(s.random.Float64(), s.random.Float64(), s.random.Float64())
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	// Generate point in unit disk using uniform random sampling
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	// Create local coordinate system around normal
	// Find a vector perpendicular to normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	// Create orthonormal basis
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	// Transform to world space
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(zCoord))
}

// SamplePointInUnitDisk generates a random point in a unit disk using concentric mapping.
// This avoids both rejection sampling and the center bias of a naive
// square-to-disk mapping.
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	// Apply concentric mapping to point
	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}
