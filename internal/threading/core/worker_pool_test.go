package core

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestParallelForVisitsEachIndexOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	const n = 1000
	var hits [n]atomic.Int32
	pool.ParallelFor(0, n, func(i int) {
		hits[i].Add(1)
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("Index %d visited %d times", i, got)
		}
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Stop()

	called := false
	pool.ParallelFor(5, 5, func(int) { called = true })
	pool.ParallelFor(6, 5, func(int) { called = true })
	if called {
		t.Error("fn should not run for an empty range")
	}
}

func TestStoppedPoolRunsInline(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Start()
	pool.Stop()

	done := make(chan int32)
	go func() {
		var count atomic.Int32
		pool.ParallelFor(0, 10, func(int) { count.Add(1) })
		pool.Submit(func() { count.Add(1) })
		pool.Wait()
		done <- count.Load()
	}()

	select {
	case got := <-done:
		if got != 11 {
			t.Errorf("Expected 11 jobs run, got %d", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Jobs submitted after Stop never ran")
	}
}

func TestWorkerPoolDefaults(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.NumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.NumWorkers())
	}

	pool.Start()
	pool.Start()
	pool.Stop()
	pool.Stop()
}

func TestSubmitAndWait(t *testing.T) {
	pool := NewWorkerPool(0)
	pool.Start()
	defer pool.Stop()

	var count atomic.Int32
	for i := 0; i < 10; i++ {
		pool.Submit(func() { count.Add(1) })
	}
	pool.Wait()

	if count.Load() != 10 {
		t.Errorf("Expected 10 jobs run, got %d", count.Load())
	}
}
