package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	// faceTolerance is how close a hit point must be to a face plane to take its normal
	faceTolerance = 1e-4
	// slabParallelEpsilon guards the per-axis division in the slab test
	slabParallelEpsilon = 1e-12
)

// Box represents an axis-aligned box given by its min and max corners
type Box struct {
	Min      core.Vec3
	Max      core.Vec3
	Material material.Material
}

// NewBox creates a new axis-aligned box
func NewBox(minCorner, maxCorner core.Vec3, material material.Material) *Box {
	return &Box{
		Min:      minCorner,
		Max:      maxCorner,
		Material: material,
	}
}

// NewBoxFromCenter creates a box from its center and half-extents
func NewBoxFromCenter(center, halfSize core.Vec3, material material.Material) *Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), material)
}

// Intersect tests if a ray intersects the box using the slab method
func (b *Box) Intersect(ray core.Ray) Intersection {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := ray.Origin.Component(axis)
		d := ray.Direction.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		// Parallel to this slab: either always inside it or never
		if math.Abs(d) < slabParallelEpsilon {
			if o < lo || o > hi {
				return NoHit()
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = max(tNear, t1)
		tFar = min(tFar, t2)
	}

	if tNear > tFar || tFar < core.Epsilon {
		return NoHit()
	}

	// Origin inside the box: take the exit point
	t := tNear
	if t <= core.Epsilon {
		t = tFar
	}
	if t <= core.Epsilon {
		return NoHit()
	}

	point := ray.At(t)
	return newIntersection(ray, t, b.faceNormal(point), b.Material)
}

// faceNormal picks the face the point lies on, in the fixed order -x, +x, -y, +y, -z, +z
func (b *Box) faceNormal(p core.Vec3) core.Vec3 {
	switch {
	case math.Abs(p.X-b.Min.X) < faceTolerance:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(p.X-b.Max.X) < faceTolerance:
		return core.NewVec3(1, 0, 0)
	case math.Abs(p.Y-b.Min.Y) < faceTolerance:
		return core.NewVec3(0, -1, 0)
	case math.Abs(p.Y-b.Max.Y) < faceTolerance:
		return core.NewVec3(0, 1, 0)
	case math.Abs(p.Z-b.Min.Z) < faceTolerance:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// Translate moves both corners
func (b *Box) Translate(delta core.Vec3) {
	b.Min = b.Min.Add(delta)
	b.Max = b.Max.Add(delta)
}

// Scale resizes the box about its center
func (b *Box) Scale(factor float64) {
	center := b.Centroid()
	half := b.HalfSize().Multiply(factor)
	b.Min = center.Subtract(half)
	b.Max = center.Add(half)
}

// Centroid returns the midpoint of the box
func (b *Box) Centroid() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// HalfSize returns the half-extents of the box
func (b *Box) HalfSize() core.Vec3 {
	return b.Max.Subtract(b.Min).Multiply(0.5)
}

// GetMaterial returns the box material
func (b *Box) GetMaterial() material.Material {
	return b.Material
}

// SetMaterial replaces the box material
func (b *Box) SetMaterial(m material.Material) {
	b.Material = m
}
