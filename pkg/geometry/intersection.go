package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersection contains information about a ray-object intersection
type Intersection struct {
	Hit      bool              // Whether anything was hit
	T        float64           // Parameter t along the ray, +Inf when nothing was hit
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Outward unit surface normal
	Material material.Material // Copy of the surface material
}

// NoHit returns the empty intersection
func NoHit() Intersection {
	return Intersection{T: math.Inf(1)}
}

// newIntersection fills in a hit record for parameter t along ray
func newIntersection(ray core.Ray, t float64, normal core.Vec3, m material.Material) Intersection {
	return Intersection{
		Hit:      true,
		T:        t,
		Point:    ray.At(t),
		Normal:   normal,
		Material: m,
	}
}
