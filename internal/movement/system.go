package movement

import (
	"errors"
	"fmt"
	"sync/atomic"

	"roomba/internal/layout"
	"roomba/internal/threading/core"
	"roomba/internal/threading/monitoring"
)

var (
	// ErrInvalidCellSize is returned when the step size is not positive
	ErrInvalidCellSize = errors.New("cell size must be positive")
	// ErrNoBoundSource is returned when no bound source is supplied
	ErrNoBoundSource = errors.New("bound source is required")
)

// TickStats summarizes one tick
type TickStats struct {
	Entities int
	Moved    int
	Clamped  int
}

// System steps entities once per tick and keeps them inside bounds
type System struct {
	cellSize int
	clamp    ClampSpec
	source   BoundSource
	pool     *core.WorkerPool
	monitor  *monitoring.TickMonitor
}

// Option configures a System
type Option func(*System)

// WithWorkerPool spreads entities of a tick across a started worker pool
func WithWorkerPool(pool *core.WorkerPool) Option {
	return func(s *System) {
		s.pool = pool
	}
}

// WithMonitor records every tick on the given monitor
func WithMonitor(monitor *monitoring.TickMonitor) Option {
	return func(s *System) {
		s.monitor = monitor
	}
}

// NewSystem creates a movement system. An inverted ClampSpec is rejected
// here; Tick performs no validation.
func NewSystem(cellSize int, clamp ClampSpec, source BoundSource, opts ...Option) (*System, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCellSize, cellSize)
	}
	if source == nil {
		return nil, ErrNoBoundSource
	}
	if err := clamp.Validate(); err != nil {
		return nil, err
	}

	s := &System{
		cellSize: cellSize,
		clamp:    clamp,
		source:   source,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ClampSpec returns the caller-imposed clamp
func (s *System) ClampSpec() ClampSpec {
	return s.clamp
}

// EffectiveBounds returns the limits a tick started now would clamp against
func (s *System) EffectiveBounds() layout.BoundRect {
	return EffectiveBounds(s.clamp, s.source.Bounds())
}

// Tick processes every entity once. A tick always runs to completion, so
// every intent is consumed whether or not a worker pool is attached.
func (s *System) Tick(entities []*Entity) TickStats {
	var timer *monitoring.TickTimer
	if s.monitor != nil {
		timer = s.monitor.StartTick()
	}

	// Snapshot once so no entity sees a partially updated source
	bounds := s.EffectiveBounds()

	var stats TickStats
	if s.pool != nil && len(entities) > 1 {
		stats = s.tickParallel(entities, bounds)
	} else {
		stats = s.tickSequential(entities, bounds)
	}

	if timer != nil {
		timer.EndTick(stats.Entities, stats.Moved, stats.Clamped)
	}
	return stats
}

func (s *System) tickSequential(entities []*Entity, bounds layout.BoundRect) TickStats {
	stats := TickStats{}
	for _, e := range entities {
		if e == nil {
			continue
		}
		res := Step(e, s.cellSize, bounds)
		stats.record(res)
	}
	return stats
}

func (s *System) tickParallel(entities []*Entity, bounds layout.BoundRect) TickStats {
	var processed, moved, clamped atomic.Int64

	s.pool.ParallelFor(0, len(entities), func(i int) {
		e := entities[i]
		if e == nil {
			return
		}
		res := Step(e, s.cellSize, bounds)
		processed.Add(1)
		if res.Direction != None {
			moved.Add(1)
		}
		if res.Clamped {
			clamped.Add(1)
		}
	})

	return TickStats{
		Entities: int(processed.Load()),
		Moved:    int(moved.Load()),
		Clamped:  int(clamped.Load()),
	}
}

func (ts *TickStats) record(res StepResult) {
	ts.Entities++
	if res.Direction != None {
		ts.Moved++
	}
	if res.Clamped {
		ts.Clamped++
	}
}
