package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Row int
}

// RowResult contains the accumulated sample sums for one row
type RowResult struct {
	Row    int
	Pixels []core.Color
}

// RowRenderer renders a single row
type RowRenderer func(row int) []core.Color

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	render      RowRenderer
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(numWorkers, numRows int, render RowRenderer) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, numRows),   // Buffer for every row
		resultQueue: make(chan RowResult, numRows), // Workers never block on results
		numWorkers:  numWorkers,
		render:      render,
		stopChan:    make(chan struct{}),
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// Finish signals that no more tasks follow. The result queue is closed once
// every worker has drained the task queue.
func (wp *WorkerPool) Finish() {
	close(wp.taskQueue)
	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()
}

// Abort makes workers exit without taking further tasks
func (wp *WorkerPool) Abort() {
	wp.stopOnce.Do(func() { close(wp.stopChan) })
}

// GetResult retrieves a completed row, or false once the pool is drained
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for {
		// Prefer stopping over picking up another row
		select {
		case <-wp.stopChan:
			return
		default:
		}

		select {
		case <-wp.stopChan:
			return
		case task, ok := <-wp.taskQueue:
			if !ok {
				return
			}
			wp.resultQueue <- RowResult{Row: task.Row, Pixels: wp.render(task.Row)}
		}
	}
}

// InOrder reorders results arriving in any order so rows are delivered
// strictly by increasing index
type InOrder struct {
	next    int
	pending map[int][]core.Color
}

// NewInOrder starts delivery at row 0
func NewInOrder() *InOrder {
	return &InOrder{pending: make(map[int][]core.Color)}
}

// Push stores result and calls emit for every row that is now deliverable.
// It stops at and returns the first error from emit.
func (o *InOrder) Push(result RowResult, emit func(row int, pixels []core.Color) error) error {
	o.pending[result.Row] = result.Pixels
	for {
		pixels, ok := o.pending[o.next]
		if !ok {
			return nil
		}
		delete(o.pending, o.next)
		if err := emit(o.next, pixels); err != nil {
			return err
		}
		o.next++
	}
}
