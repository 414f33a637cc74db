package core

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, opposing the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered continuation ray
	Attenuation Vec3 // Fraction of light retained per channel
}

// Material scatters incoming rays at surface intersections.
// Scatter must be a pure function of its inputs; returning false means
// the ray was absorbed, which is a normal outcome rather than an error.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emit(rayIn Ray, hit HitRecord) Vec3
}

// Shape interface for objects that can be hit by rays.
// Hit must not mutate shared state; shapes are read concurrently by
// every render worker.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}

// Accel answers nearest-hit queries over the whole scene. A miss is a
// normal result, never an error.
type Accel interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Camera maps normalized pixel-plane coordinates (u, v) in [0,1]² to a
// world-space ray. Stochastic cameras draw lens samples from the
// supplied sampler.
type Camera interface {
	GetRay(u, v float64, sampler Sampler) Ray
}

// Scene is the read-only aggregate consumed by integrators and the
// renderer. Implementations must be safe for concurrent reads.
type Scene interface {
	GetCamera() Camera
	GetAccel() Accel
	GetIntegrator() Integrator
	Background() Vec3
	Width() int
	Height() int
	SamplesPerPixel() int
}

// Integrator is a light transport algorithm: it converts a ray and a
// scene into a radiance estimate.
type Integrator interface {
	RayColor(ray Ray, scene Scene, sampler Sampler) Vec3
}
