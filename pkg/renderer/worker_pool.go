package renderer

import (
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RowTask represents one image row to render
type RowTask struct {
	Y    int
	Sink ImageSink
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Y      int
	Pixels int
}

// WorkerPool renders rows in parallel. Each worker owns its shading engine.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	engine      *integrator.Whitted
	camera      *geometry.Camera
	maxDepth    int
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates one worker per engine. Queues are sized for maxRows tasks.
func NewWorkerPool(engines []*integrator.Whitted, camera *geometry.Camera, maxDepth, maxRows int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxRows),
		resultQueue: make(chan RowResult, maxRows),
	}

	for i, engine := range engines {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			engine:      engine,
			camera:      camera,
			maxDepth:    maxDepth,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued rows to finish and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		pixels := renderRow(w.engine, w.camera, w.maxDepth, task.Sink, task.Y)
		w.resultQueue <- RowResult{Y: task.Y, Pixels: pixels}
	}
}

// renderRow shades every pixel of row y and writes it to the sink
func renderRow(engine integrator.Integrator, camera *geometry.Camera, maxDepth int, sink ImageSink, y int) int {
	bounds := sink.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		sink.SetColor(x, y, engine.Shade(camera.GetRay(x, y), maxDepth))
	}
	return bounds.Dx()
}
