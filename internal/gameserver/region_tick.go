package gameserver

import (
	"context"
	"sync"
	"time"
)

// RegionTickManager runs a periodic tick for each registered region.
// Each region's tick callback is invoked sequentially within its own goroutine.
//
// Invariant: all callbacks are invoked at most once per tick interval.
type RegionTickManager struct {
	interval time.Duration
	mu       sync.Mutex
	ticks    map[string]func()
}

// NewRegionTickManager returns a manager that fires ticks every interval.
//
// Precondition: interval must be > 0.
func NewRegionTickManager(interval time.Duration) *RegionTickManager {
	if interval <= 0 {
		panic("gameserver.NewRegionTickManager: interval must be > 0")
	}
	return &RegionTickManager{
		interval: interval,
		ticks:    make(map[string]func()),
	}
}

// RegisterTick registers a callback for regionID. Replaces any existing callback.
func (z *RegionTickManager) RegisterTick(regionID string, fn func()) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.ticks[regionID] = fn
}

// Unregister removes the tick callback for regionID.
func (z *RegionTickManager) Unregister(regionID string) {
	z.mu.Lock()
	defer z.mu.Unlock()
	delete(z.ticks, regionID)
}

// Start begins the tick loop. Runs until ctx is cancelled.
//
// Postcondition: all registered tick callbacks are invoked once per interval.
func (z *RegionTickManager) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(z.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				z.mu.Lock()
				callbacks := make(map[string]func(), len(z.ticks))
				for k, v := range z.ticks {
					callbacks[k] = v
				}
				z.mu.Unlock()
				for _, fn := range callbacks {
					fn()
				}
			}
		}
	}()
}
