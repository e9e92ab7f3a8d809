package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickMonitor tracks movement tick timing and outcome counters
type TickMonitor struct {
	tickCount     atomic.Uint64
	lastTickTime  atomic.Int64 // nanoseconds
	totalTickTime atomic.Int64 // nanoseconds

	entitiesProcessed atomic.Uint64
	entitiesMoved     atomic.Uint64
	clampHits         atomic.Uint64

	mutex        sync.RWMutex
	peakTickTime time.Duration
	startTime    time.Time
}

// NewTickMonitor creates a new tick monitor
func NewTickMonitor() *TickMonitor {
	return &TickMonitor{
		startTime: time.Now(),
	}
}

// TickTimer measures one tick
type TickTimer struct {
	monitor   *TickMonitor
	startTime time.Time
}

// StartTick begins tick timing
func (tm *TickMonitor) StartTick() *TickTimer {
	return &TickTimer{
		monitor:   tm,
		startTime: time.Now(),
	}
}

// EndTick completes tick timing and records what the tick did
func (tt *TickTimer) EndTick(processed, moved, clamped int) {
	elapsed := time.Since(tt.startTime)
	tm := tt.monitor

	tm.tickCount.Add(1)
	tm.lastTickTime.Store(elapsed.Nanoseconds())
	tm.totalTickTime.Add(elapsed.Nanoseconds())
	tm.entitiesProcessed.Add(uint64(processed))
	tm.entitiesMoved.Add(uint64(moved))
	tm.clampHits.Add(uint64(clamped))

	tm.mutex.Lock()
	if elapsed > tm.peakTickTime {
		tm.peakTickTime = elapsed
	}
	tm.mutex.Unlock()
}

// TickMetrics is a point-in-time copy of the monitor's counters
type TickMetrics struct {
	Ticks             uint64
	LastTickTime      time.Duration
	AverageTickTime   time.Duration
	PeakTickTime      time.Duration
	EntitiesProcessed uint64
	EntitiesMoved     uint64
	ClampHits         uint64
	Uptime            time.Duration
}

// GetCurrentMetrics returns the current metrics
func (tm *TickMonitor) GetCurrentMetrics() TickMetrics {
	ticks := tm.tickCount.Load()

	var avg time.Duration
	if ticks > 0 {
		avg = time.Duration(tm.totalTickTime.Load() / int64(ticks))
	}

	tm.mutex.RLock()
	peak := tm.peakTickTime
	uptime := time.Since(tm.startTime)
	tm.mutex.RUnlock()

	return TickMetrics{
		Ticks:             ticks,
		LastTickTime:      time.Duration(tm.lastTickTime.Load()),
		AverageTickTime:   avg,
		PeakTickTime:      peak,
		EntitiesProcessed: tm.entitiesProcessed.Load(),
		EntitiesMoved:     tm.entitiesMoved.Load(),
		ClampHits:         tm.clampHits.Load(),
		Uptime:            uptime,
	}
}

// Reset clears all counters
func (tm *TickMonitor) Reset() {
	tm.tickCount.Store(0)
	tm.lastTickTime.Store(0)
	tm.totalTickTime.Store(0)
	tm.entitiesProcessed.Store(0)
	tm.entitiesMoved.Store(0)
	tm.clampHits.Store(0)

	tm.mutex.Lock()
	tm.peakTickTime = 0
	tm.startTime = time.Now()
	tm.mutex.Unlock()
}
