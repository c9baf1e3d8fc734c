package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func newTestScene() *Scene {
	return New("test", geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
	}, RenderConfig{Width: 40, Height: 30, MaxDepth: 5, NumWorkers: 1})
}

func TestFindClosest_NearestWins(t *testing.T) {
	s := newTestScene()
	red := material.NewDiffuse(core.NewVec3(1, 0, 0))
	blue := material.NewDiffuse(core.NewVec3(0, 0, 1))

	// Far shape inserted first
	s.AddShape(
		geometry.NewSphere(core.NewVec3(0, 0, 10), 1, red),
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, blue),
	)

	hit := s.FindClosest(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if !hit.Hit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if hit.Material.Diffuse != blue.Diffuse {
		t.Errorf("Expected nearest (blue) material, got %v", hit.Material.Diffuse)
	}
}

func TestFindClosest_TieKeepsFirstInserted(t *testing.T) {
	s := newTestScene()
	first := material.NewDiffuse(core.NewVec3(1, 0, 0))
	second := material.NewDiffuse(core.NewVec3(0, 1, 0))

	s.AddShape(
		geometry.NewPlane(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1), first),
		geometry.NewPlane(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1), second),
	)

	hit := s.FindClosest(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if hit.Material.Diffuse != first.Diffuse {
		t.Errorf("Expected first inserted shape to win a tie, got %v", hit.Material.Diffuse)
	}
}

func TestFindClosest_EmptyScene(t *testing.T) {
	s := newTestScene()
	hit := s.FindClosest(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if hit.Hit {
		t.Error("Expected no hit in an empty scene")
	}
	if !math.IsInf(hit.T, 1) {
		t.Errorf("Expected t=+Inf, got %f", hit.T)
	}
}

func TestPick(t *testing.T) {
	s := newTestScene()
	s.AddShape(
		geometry.NewSphere(core.NewVec3(-3, 0, 5), 1, material.New()),
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.New()),
	)

	tests := []struct {
		name      string
		direction core.Vec3
		index     int
		ok        bool
	}{
		{"center sphere", core.NewVec3(0, 0, 1), 1, true},
		{"left sphere", core.NewVec3(-3, 0, 5), 0, true},
		{"miss", core.NewVec3(0, 1, 0), -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := s.Pick(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if index != tt.index || ok != tt.ok {
				t.Errorf("Expected (%d, %v), got (%d, %v)", tt.index, tt.ok, index, ok)
			}
		})
	}
}

func TestNew_CameraSizeWins(t *testing.T) {
	s := New("sized", geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		Width:  64,
		Height: 48,
		VFov:   45,
	}, DefaultRenderConfig())

	if s.RenderConfig.Width != 64 || s.RenderConfig.Height != 48 {
		t.Errorf("Expected 64x48 render config, got %dx%d", s.RenderConfig.Width, s.RenderConfig.Height)
	}
}

func TestResize(t *testing.T) {
	s := newTestScene()
	s.Resize(100, 50)

	if s.RenderConfig.Width != 100 || s.RenderConfig.Height != 50 {
		t.Errorf("Expected render config 100x50, got %dx%d", s.RenderConfig.Width, s.RenderConfig.Height)
	}
	if s.CameraConfig.Width != 100 || s.Camera.Config().Height != 50 {
		t.Errorf("Expected camera 100x50, got %dx%d", s.CameraConfig.Width, s.Camera.Config().Height)
	}
}

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		id     string
		shapes int
		lights int
	}{
		{"room", 9, 3},
		{"showcase", 6, 2},
		{"interactive", 5, 2},
		{"mirrors", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, err := NewBuiltinScene(tt.id)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(s.Shapes) != tt.shapes {
				t.Errorf("Expected %d shapes, got %d", tt.shapes, len(s.Shapes))
			}
			if len(s.Lights) != tt.lights {
				t.Errorf("Expected %d lights, got %d", tt.lights, len(s.Lights))
			}
			if s.Name != tt.id {
				t.Errorf("Expected name %q, got %q", tt.id, s.Name)
			}
			if s.RenderConfig.MaxDepth <= 0 {
				t.Errorf("Expected positive max depth, got %d", s.RenderConfig.MaxDepth)
			}
		})
	}
}

func TestBuiltinScene_CameraOverride(t *testing.T) {
	s, err := NewBuiltinScene("room", geometry.CameraConfig{Width: 200, Height: 100})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.RenderConfig.Width != 200 || s.RenderConfig.Height != 100 {
		t.Errorf("Expected 200x100, got %dx%d", s.RenderConfig.Width, s.RenderConfig.Height)
	}
	if s.CameraConfig.VFov != 60 {
		t.Errorf("Expected default vfov to survive the override, got %f", s.CameraConfig.VFov)
	}
}
