package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InteractiveConfig controls how much work each interactive frame does
type InteractiveConfig struct {
	ScanlinesPerFrame  int           // Rows refreshed by a partial frame
	FullRenderInterval time.Duration // Maximum time between full passes
}

// DefaultInteractiveConfig returns the settings of the editing app
func DefaultInteractiveConfig() InteractiveConfig {
	return InteractiveConfig{
		ScanlinesPerFrame:  60,
		FullRenderInterval: time.Second,
	}
}

// FrameResult describes what a call to RenderFrame did
type FrameResult struct {
	Full  bool // Whole image re-rendered
	Start int  // First row rendered
	End   int  // One past the last row rendered
	Stats RenderStats
}

// InteractiveRenderer keeps a persistent frame and refreshes it incrementally.
// Scene mutations must happen between RenderFrame calls and be followed by RequestFullRender.
type InteractiveRenderer struct {
	scene         *scene.Scene
	raytracer     *Raytracer
	config        InteractiveConfig
	frame         *FrameBuffer
	cursor        int // Next row for a partial frame
	lastFull      time.Time
	fullRequested bool
	interactive   bool
	now           func() time.Time
	logger        core.Logger
}

// NewInteractiveRenderer creates a renderer whose first frame is a full pass
func NewInteractiveRenderer(s *scene.Scene, quality integrator.QualityConfig, config InteractiveConfig, logger core.Logger) *InteractiveRenderer {
	if logger == nil {
		logger = discardLogger{}
	}
	if config.ScanlinesPerFrame <= 0 {
		config.ScanlinesPerFrame = DefaultInteractiveConfig().ScanlinesPerFrame
	}

	ir := &InteractiveRenderer{
		scene:         s,
		raytracer:     NewRaytracer(s, quality, logger),
		config:        config,
		frame:         NewFrameBuffer(s.RenderConfig.Width, s.RenderConfig.Height),
		fullRequested: true,
		interactive:   quality.Interactive,
		now:           time.Now,
		logger:        logger,
	}
	return ir
}

// SetClock replaces the time source
func (ir *InteractiveRenderer) SetClock(now func() time.Time) {
	ir.now = now
}

// Frame returns the persistent frame buffer
func (ir *InteractiveRenderer) Frame() *FrameBuffer {
	return ir.frame
}

// Scene returns the scene being rendered
func (ir *InteractiveRenderer) Scene() *scene.Scene {
	return ir.scene
}

// RequestFullRender makes the next frame a full pass
func (ir *InteractiveRenderer) RequestFullRender() {
	ir.fullRequested = true
}

// Interactive reports whether reduced quality shading is active
func (ir *InteractiveRenderer) Interactive() bool {
	return ir.interactive
}

// SetInteractive switches quality mode. Leaving interactive mode forces a full re-render.
func (ir *InteractiveRenderer) SetInteractive(interactive bool) {
	if ir.interactive && !interactive {
		ir.fullRequested = true
	}
	ir.interactive = interactive
	ir.raytracer.SetInteractive(interactive)
}

// Resize changes the output size and schedules a full pass
func (ir *InteractiveRenderer) Resize(width, height int) {
	ir.scene.Resize(width, height)
	ir.frame = NewFrameBuffer(width, height)
	ir.cursor = 0
	ir.fullRequested = true
	ir.logger.Printf("Resized interactive frame to %dx%d\n", width, height)
}

// RenderFrame renders either the full image or the next band of scanlines
func (ir *InteractiveRenderer) RenderFrame() FrameResult {
	height := ir.scene.RenderConfig.Height
	now := ir.now()

	if ir.fullRequested || now.Sub(ir.lastFull) >= ir.config.FullRenderInterval {
		stats := ir.raytracer.RenderRows(ir.frame, 0, height)
		ir.fullRequested = false
		ir.lastFull = now
		ir.cursor = 0
		return FrameResult{Full: true, Start: 0, End: height, Stats: stats}
	}

	start := ir.cursor
	end := min(start+ir.config.ScanlinesPerFrame, height)
	stats := ir.raytracer.RenderRows(ir.frame, start, end)

	ir.cursor = end
	if ir.cursor >= height {
		ir.cursor = 0
	}

	return FrameResult{Start: start, End: end, Stats: stats}
}

// Pick returns the index of the shape visible at pixel (x, y), or (-1, false)
func (ir *InteractiveRenderer) Pick(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= ir.scene.RenderConfig.Width || y >= ir.scene.RenderConfig.Height {
		return -1, false
	}
	return ir.scene.Pick(ir.scene.Camera.GetRay(x, y))
}
