package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Shade returns the clamped color seen along ray with depth recursion levels left
	Shade(ray core.Ray, depth int) core.Vec3

	// SetInteractive switches between interactive and full quality shading
	SetInteractive(interactive bool)
}
