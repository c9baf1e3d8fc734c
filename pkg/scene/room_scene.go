package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewRoomScene creates a closed room with a glass sphere, a green sphere and a blue cube
func NewRoomScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 6, -10),
		LookAt: core.NewVec3(0, 0, 10),
		Up:     core.NewVec3(0, 1, 0),
		Width:  800,
		Height: 600,
		VFov:   60.0,
	}
	cameraConfig := applyCameraOverrides(defaultCameraConfig, cameraOverrides)

	s := New("room", cameraConfig, DefaultRenderConfig())

	// Walls, all facing into the room
	floor := material.NewDiffuse(core.NewVec3(0.3, 0.5, 0.2))
	floor.Shininess = 16.0 // no specular color, so this stays matte

	s.AddShape(
		geometry.NewPlane(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewPlane(core.NewVec3(0, 15, 0), core.NewVec3(0, -1, 0), material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewPlane(core.NewVec3(-15, 0, 0), core.NewVec3(1, 0, 0), material.NewDiffuse(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewPlane(core.NewVec3(15, 0, 0), core.NewVec3(-1, 0, 0), material.NewDiffuse(core.NewVec3(0.3, 0.5, 0.7))),
		geometry.NewPlane(core.NewVec3(0, 0, 20), core.NewVec3(0, 0, -1), material.NewDiffuse(core.NewVec3(0.6, 0.1, 0.3))),
		geometry.NewPlane(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1), material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.1))),
	)

	glass := material.NewGlass(1.5, 0.8, 0.2)
	green := material.NewGlossy(core.NewVec3(0.2, 0.8, 0.2), core.NewVec3(0.5, 0.5, 0.5), 64.0, 0.3)
	blue := material.NewGlossy(core.NewVec3(0.2, 0.6, 0.8), core.NewVec3(0.4, 0.4, 0.4), 32.0, 0.2)

	s.AddShape(
		geometry.NewSphere(core.NewVec3(0, 0, 5), 2.0, glass),
		geometry.NewSphere(core.NewVec3(-6, 0, 8), 2.0, green),
		geometry.NewBox(core.NewVec3(4, -2, 6), core.NewVec3(8, 2, 10), blue),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(0, 14, 5), core.NewVec3(1.0, 1.0, 1.0), 1.0),   // ceiling
		lights.NewPointLight(core.NewVec3(-10, 10, 0), core.NewVec3(0.9, 0.9, 0.7), 0.7), // left
		lights.NewPointLight(core.NewVec3(10, 10, 0), core.NewVec3(0.2, 0.9, 0.9), 0.7),  // right
	)

	return s
}
