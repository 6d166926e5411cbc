// Package perception provides the default visibility source used by
// targeting: stealth with per-viewer reveal, dimmed globally by darkness.
package perception

import "sync"

// DarknessFunc reports whether ambient darkness currently limits sight.
// Typically bound to the game clock's dark-period check. nil = never dark.
type DarknessFunc func() bool

// Tracker answers CanPerceive(viewer, target) for the targeting resolver.
// All methods are safe for concurrent use.
//
// Rules, in order: an actor always perceives itself; a viewer the target has
// been revealed to perceives it regardless of stealth or darkness; a hidden
// target is otherwise imperceivable; ambient darkness hides everyone not
// explicitly revealed.
type Tracker struct {
	mu       sync.RWMutex
	hidden   map[string]bool            // targetID → stealthed
	revealed map[string]map[string]bool // targetID → set of viewerIDs
	dark     DarknessFunc
}

// NewTracker creates a Tracker. dark may be nil (never dark).
func NewTracker(dark DarknessFunc) *Tracker {
	return &Tracker{
		hidden:   make(map[string]bool),
		revealed: make(map[string]map[string]bool),
		dark:     dark,
	}
}

// SetHidden marks or clears stealth on targetID. Clearing stealth also drops
// the reveal set; a fresh stealth starts unrevealed.
func (t *Tracker) SetHidden(targetID string, hidden bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if hidden {
		t.hidden[targetID] = true
		return
	}
	delete(t.hidden, targetID)
	delete(t.revealed, targetID)
}

// Reveal lets viewerID perceive targetID despite stealth or darkness.
// Reveals persist until the target re-stealths or is forgotten.
func (t *Tracker) Reveal(targetID, viewerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.revealed[targetID] == nil {
		t.revealed[targetID] = make(map[string]bool)
	}
	t.revealed[targetID][viewerID] = true
}

// Forget drops all perception state for actorID (despawn cleanup), both as a
// target and as a viewer.
func (t *Tracker) Forget(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.hidden, actorID)
	delete(t.revealed, actorID)
	for _, viewers := range t.revealed {
		delete(viewers, actorID)
	}
}

// CanPerceive reports whether viewerID can currently perceive targetID.
//
// Postcondition: Returns true when viewerID == targetID.
func (t *Tracker) CanPerceive(viewerID, targetID string) bool {
	if viewerID == targetID {
		return true
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.revealed[targetID][viewerID] {
		return true
	}
	if t.hidden[targetID] {
		return false
	}
	if t.dark != nil && t.dark() {
		return false
	}
	return true
}
