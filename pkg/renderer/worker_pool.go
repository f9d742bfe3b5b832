package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// ChunkTask represents a chunk rendering task for the worker pool
type ChunkTask struct {
	TaskID   int            // For deterministic ordering
	Chunk    Chunk          // Rows to render
	Pixels   []core.Vec3    // The chunk's rows of the shared frame buffer
	Seed     int64          // Seed for the chunk's sampler
	Samples  int            // Samples per pixel to add
	Renderer *ChunkRenderer // Camera and world to render with
}

// ChunkResult contains the result from rendering a chunk
type ChunkResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel chunk rendering
type WorkerPool struct {
	taskQueue   chan ChunkTask
	resultQueue chan ChunkResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize should cover the number of tasks submitted before results are read.
func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan ChunkTask, queueSize),
		resultQueue: make(chan ChunkResult, queueSize),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers. Once ctx is cancelled, remaining tasks are
// answered with the context error instead of being rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a chunk task to the worker pool
func (wp *WorkerPool) SubmitTask(task ChunkTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed chunk result
func (wp *WorkerPool) GetResult() (ChunkResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if err := ctx.Err(); err != nil {
			wp.resultQueue <- ChunkResult{TaskID: task.TaskID, Error: err}
			continue
		}

		// Each chunk owns a disjoint slice of the frame, so no locking is needed
		sampler := core.NewSeededSampler(task.Seed)
		stats := task.Renderer.RenderChunk(task.Chunk, task.Pixels, sampler, task.Samples)

		wp.resultQueue <- ChunkResult{
			TaskID: task.TaskID,
			Stats:  stats,
		}
	}
}
