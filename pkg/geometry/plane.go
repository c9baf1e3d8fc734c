package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// planeParallelEpsilon is the |n·d| below which a ray counts as parallel to the plane
const planeParallelEpsilon = 1e-4

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal vector
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Material: material,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) Intersection {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) <= planeParallelEpsilon {
		return NoHit()
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= core.Epsilon {
		return NoHit()
	}

	return newIntersection(ray, t, p.Normal, p.Material)
}

// Translate moves the reference point
func (p *Plane) Translate(delta core.Vec3) {
	p.Point = p.Point.Add(delta)
}

// Scale is a no-op: an infinite plane has no size
func (p *Plane) Scale(factor float64) {}

// Centroid returns the plane's reference point
func (p *Plane) Centroid() core.Vec3 {
	return p.Point
}

// GetMaterial returns the plane material
func (p *Plane) GetMaterial() material.Material {
	return p.Material
}

// SetMaterial replaces the plane material
func (p *Plane) SetMaterial(m material.Material) {
	p.Material = m
}
