package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Intersect returns the shape's own nearest hit with t > core.Epsilon
	Intersect(ray core.Ray) Intersection
	Editable
}

// Editable is implemented by shapes the interactive editor can move and restyle
type Editable interface {
	Translate(delta core.Vec3)
	Scale(factor float64)
	Centroid() core.Vec3
	GetMaterial() material.Material
	SetMaterial(m material.Material)
}
