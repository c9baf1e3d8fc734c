package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene creates two perfect mirrors facing each other with the camera between them.
// Every primary ray bounces until the depth limit runs out.
func NewMirrorScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		Width:  320,
		Height: 240,
		VFov:   60.0,
	}
	cameraConfig := applyCameraOverrides(defaultCameraConfig, cameraOverrides)

	s := New("mirrors", cameraConfig, DefaultRenderConfig())
	s.Background = core.NewVec3(0.2, 0.4, 0.6)
	s.Ambient = core.NewVec3(0, 0, 0)

	s.AddShape(
		geometry.NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), material.NewMirror()),
		geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), material.NewMirror()),
	)

	return s
}
