package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Whitted implements recursive ray tracing with local illumination,
// hard shadows, mirror reflection and refraction.
// An engine is not safe for concurrent use; give each worker its own.
type Whitted struct {
	scene   *scene.Scene
	quality QualityConfig
	sampler core.Sampler
	calls   int64
}

// NewWhitted creates a shading engine for the scene. The sampler is only
// consulted when a shadow skip probability is non-zero.
func NewWhitted(s *scene.Scene, quality QualityConfig, sampler core.Sampler) *Whitted {
	return &Whitted{
		scene:   s,
		quality: quality,
		sampler: sampler,
	}
}

// SetInteractive toggles reduced quality shading
func (w *Whitted) SetInteractive(interactive bool) {
	w.quality.Interactive = interactive
}

// Quality returns the current quality configuration
func (w *Whitted) Quality() QualityConfig {
	return w.quality
}

// Calls returns the number of Shade invocations since creation or the last reset
func (w *Whitted) Calls() int64 {
	return w.calls
}

// ResetCalls zeroes the Shade invocation counter
func (w *Whitted) ResetCalls() {
	w.calls = 0
}

// Shade computes the color seen along ray, recursing at most depth levels
func (w *Whitted) Shade(ray core.Ray, depth int) core.Vec3 {
	w.calls++

	if depth <= 0 {
		return core.Vec3{}
	}

	hit := w.scene.FindClosest(ray)
	if !hit.Hit {
		return w.scene.Background
	}

	m := hit.Material
	color := w.localColor(ray, hit)

	if m.Reflectivity > 0 && w.quality.reflectionEnabled() {
		color = color.Add(w.reflectedColor(ray, hit, depth).Multiply(m.Reflectivity))
	}

	if m.Transparency > 0 {
		color = color.Add(w.refractedColor(ray, hit, depth).Multiply(m.Transparency))
	}

	return color.Clamp(0, 1)
}

// localColor sums emission, ambient and the direct contribution of every visible light
func (w *Whitted) localColor(ray core.Ray, hit geometry.Intersection) core.Vec3 {
	m := hit.Material
	color := m.Emission.Add(w.scene.Ambient.MultiplyVec(m.Diffuse))

	count := w.quality.lightCount(len(w.scene.Lights))
	for _, light := range w.scene.Lights[:count] {
		color = color.Add(w.directLight(ray, hit, light))
	}

	return color
}

// directLight returns the diffuse and specular contribution of one light, or black when shadowed
func (w *Whitted) directLight(ray core.Ray, hit geometry.Intersection, light lights.PointLight) core.Vec3 {
	toLight, distance := light.DirectionFrom(hit.Point)
	if w.inShadow(hit, toLight, distance) {
		return core.Vec3{}
	}

	m := hit.Material
	radiance := light.Radiance()
	nDotL := hit.Normal.Dot(toLight)

	color := m.Diffuse.MultiplyVec(radiance).Multiply(math.Max(0, nDotL))

	if nDotL > 0 && m.HasSpecular() && w.quality.specularEnabled() {
		// Blinn-Phong half vector between light and viewer
		halfway := toLight.Subtract(ray.Direction).Normalize()
		nDotH := math.Max(0, hit.Normal.Dot(halfway))
		color = color.Add(m.Specular.MultiplyVec(radiance).Multiply(math.Pow(nDotH, m.Shininess)))
	}

	return color
}

// inShadow casts a shadow ray toward the light. With a non-zero skip
// probability the test may be skipped, in which case the light is visible.
func (w *Whitted) inShadow(hit geometry.Intersection, toLight core.Vec3, distance float64) bool {
	if p := w.quality.shadowSkipProbability(); p > 0 && w.sampler.Get1D() < p {
		return false
	}

	// Offset along the normal on the light's side of the surface
	normal := hit.Normal
	if normal.Dot(toLight) < 0 {
		normal = normal.Negate()
	}
	shadowRay := core.NewRay(hit.Point.Add(normal.Multiply(core.Epsilon)), toLight)

	blocker := w.scene.FindClosest(shadowRay)
	return blocker.Hit && blocker.T < distance
}

// reflectedColor traces the mirror direction
func (w *Whitted) reflectedColor(ray core.Ray, hit geometry.Intersection, depth int) core.Vec3 {
	direction := ray.Direction.Reflect(hit.Normal)
	reflected := core.NewRay(hit.Point.Add(hit.Normal.Multiply(core.Epsilon)), direction)
	return w.Shade(reflected, depth-1)
}

// refractedColor traces the transmitted direction, or returns black on total internal reflection
func (w *Whitted) refractedColor(ray core.Ray, hit geometry.Intersection, depth int) core.Vec3 {
	direction, normal, ok := refract(ray.Direction, hit.Normal, hit.Material.RefractiveIndex)
	if !ok {
		return core.Vec3{}
	}

	refracted := core.NewRay(hit.Point.Subtract(normal.Multiply(core.Epsilon)), direction)
	return w.Shade(refracted, depth-1)
}

// refract bends the unit direction d through a surface with outward normal n and index ior.
// It returns the transmitted direction and the normal facing the incoming side.
// ok is false on total internal reflection.
func refract(d, n core.Vec3, ior float64) (direction, facing core.Vec3, ok bool) {
	cosi := -d.Dot(n)
	eta := 1.0 / ior
	facing = n

	if cosi <= 0 {
		// Leaving the medium
		eta = ior
		facing = n.Negate()
		cosi = -cosi
	}

	k := 1 - eta*eta*(1-cosi*cosi)
	if k <= 0 {
		return core.Vec3{}, facing, false
	}

	direction = d.Multiply(eta).Add(facing.Multiply(eta*cosi - math.Sqrt(k)))
	return direction, facing, true
}
