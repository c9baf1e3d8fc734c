package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light in the Whitted model.
// Materials are plain values: every intersection carries its own copy.
type Material struct {
	Diffuse         core.Vec3 // Lambertian color
	Specular        core.Vec3 // Highlight color
	Emission        core.Vec3 // Self-emitted color
	Shininess       float64   // Specular exponent (>= 0)
	Reflectivity    float64   // Mirror weight in [0,1]
	Transparency    float64   // Transmission weight in [0,1]
	RefractiveIndex float64   // Index of refraction (> 0, typically >= 1)
}

// New returns a black, fully opaque, non-reflective material with refractive index 1
func New() Material {
	return Material{RefractiveIndex: 1}
}

// NewDiffuse creates a matte material
func NewDiffuse(diffuse core.Vec3) Material {
	m := New()
	m.Diffuse = diffuse
	return m
}

// NewGlossy creates a diffuse material with a specular highlight and optional mirror reflection
func NewGlossy(diffuse, specular core.Vec3, shininess, reflectivity float64) Material {
	m := NewDiffuse(diffuse)
	m.Specular = specular
	m.Shininess = shininess
	m.Reflectivity = reflectivity
	return m
}

// NewMirror creates a perfect mirror
func NewMirror() Material {
	m := New()
	m.Reflectivity = 1
	return m
}

// NewGlass creates a transparent dielectric with a faint reflection
func NewGlass(refractiveIndex, transparency, reflectivity float64) Material {
	m := New()
	m.Diffuse = core.NewVec3(0.1, 0.1, 0.1)
	m.Specular = core.NewVec3(1, 1, 1)
	m.Shininess = 128
	m.Transparency = transparency
	m.Reflectivity = reflectivity
	m.RefractiveIndex = refractiveIndex
	return m
}

// HasSpecular reports whether the material produces a specular highlight
func (m Material) HasSpecular() bool {
	return m.Shininess > 0 && !m.Specular.IsZero()
}

// WithReflectivityStep returns a copy whose reflectivity is moved by delta and kept in [0,1]
func (m Material) WithReflectivityStep(delta float64) Material {
	m.Reflectivity = max(0, min(1, m.Reflectivity+delta))
	return m
}
