package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an infinitely small light source emitting equally in all directions
type PointLight struct {
	Position  core.Vec3 // World position
	Color     core.Vec3 // Light color
	Intensity float64   // Scalar multiplier applied to Color
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// Radiance returns the light color scaled by its intensity
func (l PointLight) Radiance() core.Vec3 {
	return l.Color.Multiply(l.Intensity)
}

// DirectionFrom returns the unit direction from point toward the light and the distance to it
func (l PointLight) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	return toLight.Normalize(), distance
}
