package actor

import (
	"sync"
	"time"
)

// respawnEntry represents a single pending respawn.
type respawnEntry struct {
	actorID string
	readyAt time.Time
}

// RespawnManager schedules the revival of dead actors. The Dead flag is
// terminal from the combat tracker's point of view; this manager is the
// external pipeline that clears it.
//
// Invariant: entries with zero delay are never queued.
//
// Concurrency: Tick must not be called concurrently with itself. Schedule may
// be called concurrently from any goroutine. In practice Tick is driven by a
// single sweep goroutine.
type RespawnManager struct {
	mu      sync.Mutex
	pending []respawnEntry

	// OnRevive is called after an actor is revived, letting the combat
	// tracker reset engagement state. nil = no-op.
	OnRevive func(actorID string)
}

// NewRespawnManager creates an empty RespawnManager.
func NewRespawnManager() *RespawnManager {
	return &RespawnManager{}
}

// Schedule enqueues a revival for actorID to fire at now+delay.
// No-op when delay <= 0 (the actor does not respawn).
//
// Precondition: actorID must be non-empty; now must be a valid time.
// Postcondition: entry is added to pending with readyAt = now+delay iff delay > 0.
func (r *RespawnManager) Schedule(actorID string, now time.Time, delay time.Duration) {
	if delay <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, respawnEntry{
		actorID: actorID,
		readyAt: now.Add(delay),
	})
}

// Tick drains all entries whose readyAt <= now and revives each actor that is
// still registered and still dead. Despawned actors are dropped silently.
//
// Precondition: reg must not be nil.
// Postcondition: pending entries with readyAt <= now are consumed.
func (r *RespawnManager) Tick(now time.Time, reg *Registry) {
	r.mu.Lock()
	var ready, future []respawnEntry
	for _, e := range r.pending {
		if !e.readyAt.After(now) {
			ready = append(ready, e)
		} else {
			future = append(future, e)
		}
	}
	r.pending = future
	r.mu.Unlock()

	for _, e := range ready {
		a, ok := reg.Get(e.actorID)
		if !ok || !a.Dead {
			continue
		}
		if err := reg.Revive(e.actorID); err != nil {
			continue
		}
		if r.OnRevive != nil {
			r.OnRevive(e.actorID)
		}
	}
}

// PendingCount returns the number of queued revivals.
func (r *RespawnManager) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
