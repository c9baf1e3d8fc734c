package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShowcaseScene creates an open corner with one mirror-like, one glass and one boxy object
func NewShowcaseScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 6, -10),
		LookAt: core.NewVec3(0, 0, 10),
		Up:     core.NewVec3(0, 1, 0),
		Width:  800,
		Height: 600,
		VFov:   60.0,
	}
	cameraConfig := applyCameraOverrides(defaultCameraConfig, cameraOverrides)

	s := New("showcase", cameraConfig, DefaultRenderConfig())
	s.Ambient = core.NewVec3(0.2, 0.2, 0.2)

	s.AddShape(
		geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), material.NewDiffuse(core.NewVec3(0.2, 0.6, 0.2))),
		geometry.NewPlane(core.NewVec3(0, 0, 15), core.NewVec3(0, 0, -1), material.NewDiffuse(core.NewVec3(0.8, 0.4, 0.6))),
		geometry.NewPlane(core.NewVec3(-8, 0, 0), core.NewVec3(1, 0, 0), material.NewDiffuse(core.NewVec3(0.2, 0.4, 0.8))),
	)

	red := material.NewGlossy(core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(1, 1, 1), 200.0, 0.3)

	greenGlass := material.NewGlass(1.5, 0.8, 0.1)
	greenGlass.Diffuse = core.NewVec3(0.2, 0.8, 0.2)

	blue := material.NewGlossy(core.NewVec3(0.2, 0.2, 0.8), core.NewVec3(0.8, 0.8, 0.8), 100.0, 0.5)

	s.AddShape(
		geometry.NewSphere(core.NewVec3(-3, 0, 5), 1.5, red),
		geometry.NewSphere(core.NewVec3(3, 0, 5), 1.5, greenGlass),
		geometry.NewBox(core.NewVec3(-2, -2, 2), core.NewVec3(0, 0, 4), blue),
	)

	// Two bright lights up front; radiance saturates on directly lit surfaces
	s.AddLight(
		lights.NewPointLight(core.NewVec3(-5, 10, -5), core.NewVec3(1, 1, 1), 0.8),
		lights.NewPointLight(core.NewVec3(5, 10, -5), core.NewVec3(1, 1, 1), 0.8),
	)

	return s
}
