package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Shapes       []geometry.Shape    // Objects in the scene, scanned in insertion order
	Lights       []lights.PointLight // Lights in the scene
	Background   core.Vec3           // Color returned by rays that escape the scene
	Ambient      core.Vec3           // Ambient light color, multiplied by each surface's diffuse color
	RenderConfig RenderConfig
}

// RenderConfig contains the recommended rendering configuration for a scene
type RenderConfig struct {
	Width      int // Image width
	Height     int // Image height
	MaxDepth   int // Maximum recursion depth for secondary rays
	NumWorkers int // Parallel row workers (0 = CPU count, 1 = single-threaded)
}

// DefaultRenderConfig returns the reference settings
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      800,
		Height:     600,
		MaxDepth:   5,
		NumWorkers: 1,
	}
}

// New creates an empty scene with the given camera. Camera dimensions take
// precedence over the render config; unset ones are filled from it.
func New(name string, cameraConfig geometry.CameraConfig, renderConfig RenderConfig) *Scene {
	if cameraConfig.Width > 0 && cameraConfig.Height > 0 {
		renderConfig.Width = cameraConfig.Width
		renderConfig.Height = cameraConfig.Height
	} else {
		cameraConfig.Width = renderConfig.Width
		cameraConfig.Height = renderConfig.Height
	}

	return &Scene{
		Name:         name,
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.PointLight, 0),
		Background:   core.NewVec3(0.1, 0.1, 0.1),
		Ambient:      core.NewVec3(0.1, 0.1, 0.1),
		RenderConfig: renderConfig,
	}
}

// AddShape appends a shape; insertion order decides exact ties in FindClosest
func (s *Scene) AddShape(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends a point light
func (s *Scene) AddLight(light ...lights.PointLight) {
	s.Lights = append(s.Lights, light...)
}

// FindClosest linearly scans every shape and returns the nearest hit
func (s *Scene) FindClosest(ray core.Ray) geometry.Intersection {
	closest, _ := s.closest(ray)
	return closest
}

// Pick returns the index of the nearest shape hit by ray, or (-1, false)
func (s *Scene) Pick(ray core.Ray) (int, bool) {
	_, index := s.closest(ray)
	return index, index >= 0
}

// closest returns the nearest intersection and the index of the shape that produced it
func (s *Scene) closest(ray core.Ray) (geometry.Intersection, int) {
	closest := geometry.NoHit()
	index := -1

	for i, shape := range s.Shapes {
		// Strictly closer only: the earlier shape wins exact ties
		if hit := shape.Intersect(ray); hit.Hit && hit.T < closest.T {
			closest = hit
			index = i
		}
	}

	return closest, index
}

// Resize changes the output dimensions of the scene and its camera
func (s *Scene) Resize(width, height int) {
	s.RenderConfig.Width = width
	s.RenderConfig.Height = height
	s.Camera.Resize(width, height)
	s.CameraConfig = s.Camera.Config()
}

// applyCameraOverrides merges the first override, if any, into the default camera
func applyCameraOverrides(defaults geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
