package core

import (
	"runtime"
	"sync"

	"roomba/internal/mathutil"
)

// WorkerPool manages a pool of worker goroutines for per-tick entity jobs
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	startOnce  sync.Once
	stopOnce   sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// Zero or a negative count means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// NumWorkers returns the number of worker goroutines
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Start launches the worker goroutines. Calling it again is a no-op.
func (wp *WorkerPool) Start() {
	wp.startOnce.Do(func() {
		for i := 0; i < wp.numWorkers; i++ {
			go wp.worker()
		}
	})
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit adds a job to the worker queue. Once the pool is stopped the job
// runs on the caller's goroutine instead.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	if wp.stopped() {
		wp.runInline(job)
		return
	}
	select {
	case wp.jobQueue <- job:
	case <-wp.quit:
		wp.runInline(job)
	}
}

func (wp *WorkerPool) runInline(job func()) {
	defer wp.wg.Done()
	job()
}

func (wp *WorkerPool) stopped() bool {
	select {
	case <-wp.quit:
		return true
	default:
		return false
	}
}

// Wait waits for all currently queued jobs to complete
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts down the worker pool. It must not race with ParallelFor.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		close(wp.quit)
	})
}

// ParallelFor runs fn for every index in [start, end), split into one
// contiguous chunk per worker, and waits for completion
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	if start >= end {
		return
	}

	chunkSize := mathutil.IntMax(1, (end-start+wp.numWorkers-1)/wp.numWorkers)

	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := mathutil.IntMin(i+chunkSize, end)
		wp.Submit(func() {
			for j := chunkStart; j < chunkEnd; j++ {
				fn(j)
			}
		})
	}
	wp.Wait()
}
