package renderer

import (
	"runtime"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// progressInterval is the number of rows between progress messages
const progressInterval = 50

// Raytracer runs the projection loop: one primary ray per pixel, shaded and written to a sink
type Raytracer struct {
	scene   *scene.Scene
	engines []*integrator.Whitted // One per worker
	logger  core.Logger
}

// NewRaytracer creates a raytracer with one shading engine per configured worker
func NewRaytracer(s *scene.Scene, quality integrator.QualityConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}

	numWorkers := s.RenderConfig.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	engines := make([]*integrator.Whitted, numWorkers)
	for i := range engines {
		// Deterministic per-worker sampler
		engines[i] = integrator.NewWhitted(s, quality, core.NewSeededSampler(int64(42+i)))
	}

	return &Raytracer{
		scene:   s,
		engines: engines,
		logger:  logger,
	}
}

// SetInteractive toggles reduced quality shading on every engine
func (rt *Raytracer) SetInteractive(interactive bool) {
	for _, engine := range rt.engines {
		engine.SetInteractive(interactive)
	}
}

// NumWorkers returns the number of shading engines
func (rt *Raytracer) NumWorkers() int {
	return len(rt.engines)
}

// Render renders every pixel of the sink, logging progress
func (rt *Raytracer) Render(sink ImageSink) RenderStats {
	bounds := sink.Bounds()
	rt.logger.Printf("Rendering %dx%d with %d worker(s), max depth %d...\n",
		bounds.Dx(), bounds.Dy(), len(rt.engines), rt.scene.RenderConfig.MaxDepth)

	stats := rt.renderRows(sink, bounds.Min.Y, bounds.Max.Y, true)

	rt.logger.Printf("Render complete in %v (%.2f shade calls per pixel)\n",
		stats.Duration, stats.CallsPerPixel())
	return stats
}

// RenderRows renders rows [y0, y1) of the sink without progress logging
func (rt *Raytracer) RenderRows(sink ImageSink, y0, y1 int) RenderStats {
	return rt.renderRows(sink, y0, y1, false)
}

func (rt *Raytracer) renderRows(sink ImageSink, y0, y1 int, logProgress bool) RenderStats {
	start := time.Now()
	bounds := sink.Bounds()
	y0 = max(y0, bounds.Min.Y)
	y1 = min(y1, bounds.Max.Y)

	for _, engine := range rt.engines {
		engine.ResetCalls()
	}

	stats := RenderStats{Workers: 1}
	rows := y1 - y0
	if rows <= 0 {
		return stats
	}

	camera := rt.scene.Camera
	maxDepth := rt.scene.RenderConfig.MaxDepth
	total := bounds.Dy()

	if len(rt.engines) == 1 {
		for y := y0; y < y1; y++ {
			stats.TotalPixels += renderRow(rt.engines[0], camera, maxDepth, sink, y)
			stats.Rows++
			if logProgress && stats.Rows%progressInterval == 0 {
				rt.logger.Printf("  %d/%d rows\n", stats.Rows, total)
			}
		}
	} else {
		pool := NewWorkerPool(rt.engines, camera, maxDepth, rows)
		pool.Start()
		for y := y0; y < y1; y++ {
			pool.SubmitTask(RowTask{Y: y, Sink: sink})
		}

		for stats.Rows < rows {
			result, ok := pool.GetResult()
			if !ok {
				break
			}
			stats.TotalPixels += result.Pixels
			stats.Rows++
			if logProgress && stats.Rows%progressInterval == 0 {
				rt.logger.Printf("  %d/%d rows\n", stats.Rows, total)
			}
		}
		pool.Stop()
		stats.Workers = pool.GetNumWorkers()
	}

	for _, engine := range rt.engines {
		stats.ShadeCalls += engine.Calls()
	}
	stats.Duration = time.Since(start)
	return stats
}
