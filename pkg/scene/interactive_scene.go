package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// InteractiveFloorY is the height of the floor in the interactive scene
const InteractiveFloorY = -1.0

// NewInteractiveScene creates the small editing playground: floor, back wall, three glossy spheres
func NewInteractiveScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 1.5, -5),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  768,
		Height: 432,
		VFov:   60.0,
	}
	cameraConfig := applyCameraOverrides(defaultCameraConfig, cameraOverrides)

	renderConfig := DefaultRenderConfig()
	renderConfig.MaxDepth = 4
	renderConfig.NumWorkers = 0

	s := New("interactive", cameraConfig, renderConfig)
	s.Background = core.NewVec3(0.05, 0.05, 0.1)
	s.Ambient = core.NewVec3(0.15, 0.15, 0.18)

	floor := material.NewGlossy(core.NewVec3(0.2, 0.8, 0.3), core.NewVec3(0.1, 0.1, 0.1), 10.0, 0.1)
	wall := material.NewGlossy(core.NewVec3(0.9, 0.3, 0.6), core.NewVec3(0.1, 0.1, 0.1), 10.0, 0.05)

	s.AddShape(
		geometry.NewPlane(core.NewVec3(0, InteractiveFloorY, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), wall),
	)

	red := material.NewGlossy(core.NewVec3(0.9, 0.15, 0.15), core.NewVec3(0.9, 0.9, 0.9), 100.0, 0.45)
	blue := material.NewGlossy(core.NewVec3(0.15, 0.6, 0.8), core.NewVec3(0.85, 0.85, 0.9), 150.0, 0.55)
	green := material.NewGlossy(core.NewVec3(0.3, 0.75, 0.15), core.NewVec3(0.7, 0.7, 0.7), 80.0, 0.35)

	s.AddShape(
		geometry.NewSphere(core.NewVec3(-1.5, 0, 0), 1.0, red),
		geometry.NewSphere(core.NewVec3(0, 0, 1.5), 1.0, blue),
		geometry.NewSphere(core.NewVec3(1.5, 0, 0), 1.0, green),
	)

	// Key and fill light, intensities already include distance falloff at the spheres
	s.AddLight(
		lights.NewPointLight(core.NewVec3(0, 5, -5), core.NewVec3(1.0, 0.98, 0.95), 1.2),
		lights.NewPointLight(core.NewVec3(5, 3, -3), core.NewVec3(0.9, 0.95, 1.0), 0.7),
	)

	return s
}
