package renderer

import (
	"image"
	"runtime"
	"sync"
)

// ScanlineTask represents one scanline rendering task for the worker pool.
// Scanlines are the unit of work: every pixel's samples are independent, so
// workers share nothing but the disjoint rows they write to.
type ScanlineTask struct {
	Row        int            // Image row (y) to render
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// ScanlineResult contains the result from rendering a scanline
type ScanlineResult struct {
	Row   int
	Stats RenderStats
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, raytracer.height),
		resultQueue: make(chan ScanlineResult, raytracer.height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each scanline owns a deterministic random generator and writes a
		// disjoint row of the shared pixel stats array, so no locking is needed
		bounds := image.Rect(0, task.Row, w.raytracer.width, task.Row+1)
		random := w.raytracer.scanlineRandom(task.Row)
		stats := w.raytracer.RenderBounds(bounds, task.PixelStats, random)

		w.resultQueue <- ScanlineResult{Row: task.Row, Stats: stats}
	}
}

// RenderParallel renders the full frame with scanlines distributed across
// numWorkers goroutines (0 = CPU count). Output is identical to RenderPass
// for the same seed.
func (rt *Raytracer) RenderParallel(numWorkers int) (*image.RGBA, RenderStats) {
	pixelStats := newPixelStats(rt.width, rt.height)

	pool := NewWorkerPool(rt, numWorkers)
	pool.Start()

	for y := 0; y < rt.height; y++ {
		pool.SubmitTask(ScanlineTask{Row: y, PixelStats: pixelStats})
	}

	// Collect all results, dispatching progress events single-threaded
	stats := RenderStats{TotalPixels: rt.width * rt.height}
	for completed := 0; completed < rt.height; completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalSamples += result.Stats.TotalSamples
		rt.progress.ScanlineComplete(completed+1, rt.height)
	}
	pool.Stop()

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)

	return rt.assembleImage(pixelStats), stats
}
