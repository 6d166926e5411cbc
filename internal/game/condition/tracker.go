package condition

import (
	"sync"
	"time"
)

// Tracker owns the ActiveSet of every actor and implements the status gate
// consulted by the attack legality chain. All methods are safe for
// concurrent use.
type Tracker struct {
	mu   sync.RWMutex
	sets map[string]*ActiveSet
	now  func() time.Time
}

// NewTracker creates an empty Tracker using the given authoritative clock.
//
// Precondition: now must not be nil.
func NewTracker(now func() time.Time) *Tracker {
	return &Tracker{
		sets: make(map[string]*ActiveSet),
		now:  now,
	}
}

// Apply applies def to actorID for the given duration (0 = permanent).
//
// Precondition: actorID must be non-empty; def must not be nil.
func (t *Tracker) Apply(actorID string, def *Def, stacks int, duration time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.sets[actorID]
	if !ok {
		set = NewActiveSet()
		t.sets[actorID] = set
	}
	var expiresAt time.Time
	if duration > 0 {
		expiresAt = t.now().Add(duration)
	}
	return set.Apply(def, stacks, expiresAt)
}

// Remove clears the condition with id from actorID, if present.
func (t *Tracker) Remove(actorID, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if set, ok := t.sets[actorID]; ok {
		set.Remove(id)
	}
}

// Clear drops all conditions for actorID (despawn/death cleanup).
func (t *Tracker) Clear(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sets, actorID)
}

// Has reports whether actorID currently has the condition with id.
func (t *Tracker) Has(actorID, id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	set, ok := t.sets[actorID]
	return ok && set.Has(id)
}

// ActionBlocked reports whether any active condition on actorID blocks the
// given action kind. This is the status gate the legality validator queries.
//
// Postcondition: Returns false for unknown actors (no conditions, no block).
func (t *Tracker) ActionBlocked(actorID, action string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	set, ok := t.sets[actorID]
	if !ok {
		return false
	}
	return set.Blocks(action, t.now())
}

// Sweep prunes expired conditions from every actor and drops empty sets.
// Driven by the same fixed-interval scheduler as the engagement sweep.
func (t *Tracker) Sweep() {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	for actorID, set := range t.sets {
		set.Prune(now)
		if len(set.conditions) == 0 {
			delete(t.sets, actorID)
		}
	}
}
