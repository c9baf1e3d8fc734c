package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// recordingLogger collects log lines
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func newTestScene(width, height, workers int) *scene.Scene {
	s := scene.New("test", geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
	}, scene.RenderConfig{Width: width, Height: height, MaxDepth: 5, NumWorkers: workers})
	s.Background = core.NewVec3(0.1, 0.2, 0.3)
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.NewGlossy(core.NewVec3(0.8, 0.3, 0.2), core.NewVec3(1, 1, 1), 32, 0.3)))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))))
	s.AddLight(lights.NewPointLight(core.NewVec3(2, 5, 0), core.NewVec3(1, 1, 1), 1))
	return s
}

func TestRender_MissPixelsShowBackground(t *testing.T) {
	s := newTestScene(20, 10, 1)
	s.Shapes = nil
	rt := NewRaytracer(s, integrator.FullQuality(), nil)
	fb := NewFrameBuffer(20, 10)

	stats := rt.Render(fb)

	if stats.TotalPixels != 200 {
		t.Errorf("Expected 200 pixels, got %d", stats.TotalPixels)
	}
	if stats.ShadeCalls != 200 {
		t.Errorf("Expected one shade call per pixel, got %d", stats.ShadeCalls)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if fb.Color(x, y) != s.Background {
				t.Fatalf("Expected background at (%d,%d), got %v", x, y, fb.Color(x, y))
			}
		}
	}
}

func TestRender_CenterPixelHitsSphere(t *testing.T) {
	s := newTestScene(21, 21, 1)
	rt := NewRaytracer(s, integrator.FullQuality(), nil)
	fb := NewFrameBuffer(21, 21)
	rt.Render(fb)

	if fb.Color(10, 10) == s.Background {
		t.Error("Expected the center pixel to see the sphere, got background")
	}
	if fb.Color(10, 0) != s.Background {
		t.Errorf("Expected the top row to see background, got %v", fb.Color(10, 0))
	}
}

func TestRender_ParallelMatchesSerial(t *testing.T) {
	serial := NewFrameBuffer(32, 24)
	NewRaytracer(newTestScene(32, 24, 1), integrator.FullQuality(), nil).Render(serial)

	parallel := NewFrameBuffer(32, 24)
	stats := NewRaytracer(newTestScene(32, 24, 4), integrator.FullQuality(), nil).Render(parallel)

	if stats.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", stats.Workers)
	}
	if stats.Rows != 24 {
		t.Errorf("Expected 24 rows, got %d", stats.Rows)
	}
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			if serial.Color(x, y) != parallel.Color(x, y) {
				t.Fatalf("Pixel (%d,%d) differs: serial %v, parallel %v", x, y, serial.Color(x, y), parallel.Color(x, y))
			}
		}
	}
}

func TestRender_ProgressLogging(t *testing.T) {
	logger := &recordingLogger{}
	rt := NewRaytracer(newTestScene(4, 120, 1), integrator.FullQuality(), logger)
	rt.Render(NewFrameBuffer(4, 120))

	progress := 0
	for _, line := range logger.lines {
		if strings.Contains(line, "rows") {
			progress++
		}
	}
	if progress != 2 {
		t.Errorf("Expected progress at rows 50 and 100, got %d progress lines", progress)
	}
}

func TestRenderRows_OnlyTouchesRange(t *testing.T) {
	s := newTestScene(8, 8, 1)
	s.Shapes = nil
	rt := NewRaytracer(s, integrator.FullQuality(), nil)
	fb := NewFrameBuffer(8, 8)

	stats := rt.RenderRows(fb, 2, 4)
	if stats.Rows != 2 {
		t.Errorf("Expected 2 rows, got %d", stats.Rows)
	}
	if !fb.Color(0, 1).IsZero() || !fb.Color(0, 4).IsZero() {
		t.Error("Expected rows outside the range untouched")
	}
	if fb.Color(0, 2) != s.Background || fb.Color(7, 3) != s.Background {
		t.Error("Expected rows inside the range rendered")
	}

	if stats := rt.RenderRows(fb, 6, 100); stats.Rows != 2 {
		t.Errorf("Expected range clipped to the image, got %d rows", stats.Rows)
	}
}
