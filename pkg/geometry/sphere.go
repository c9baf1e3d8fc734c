package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) Intersection {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return NoHit()
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2.0 * a)
	t2 := (-b + sqrtD) / (2.0 * a)

	// Nearer root first; the far root is the exit point when the origin is inside
	t := min(t1, t2)
	if t < core.Epsilon {
		t = max(t1, t2)
	}
	if t <= core.Epsilon {
		return NoHit()
	}

	point := ray.At(t)
	return newIntersection(ray, t, point.Subtract(s.Center).Normalize(), s.Material)
}

// Translate moves the sphere
func (s *Sphere) Translate(delta core.Vec3) {
	s.Center = s.Center.Add(delta)
}

// Scale multiplies the radius
func (s *Sphere) Scale(factor float64) {
	s.Radius *= factor
}

// Centroid returns the sphere center
func (s *Sphere) Centroid() core.Vec3 {
	return s.Center
}

// GetMaterial returns the sphere material
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}

// SetMaterial replaces the sphere material
func (s *Sphere) SetMaterial(m material.Material) {
	s.Material = m
}
