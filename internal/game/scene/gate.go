package scene

import (
	"fmt"
	"sync"
)

// Gate holds exactly one rule Snapshot per region. Registration of a second
// snapshot for the same region is a configuration error and is refused;
// lookups for unknown regions return the maximally restrictive fallback
// rather than guessing a default.
//
// All methods are safe for concurrent use.
type Gate struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

// NewGate creates an empty Gate.
func NewGate() *Gate {
	return &Gate{snapshots: make(map[string]Snapshot)}
}

// Register installs the snapshot for its region.
//
// Precondition: snap.RegionID must be non-empty.
// Postcondition: Returns an error on duplicate registration; the existing
// snapshot is left in place.
func (g *Gate) Register(snap Snapshot) error {
	if snap.RegionID == "" {
		return fmt.Errorf("scene.Gate.Register: region ID must not be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.snapshots[snap.RegionID]; exists {
		return fmt.Errorf("scene rules for region %q already registered", snap.RegionID)
	}
	g.snapshots[snap.RegionID] = snap
	return nil
}

// Replace swaps the snapshot for its region wholesale, installing it if absent.
// Used on region reload; ordinary startup goes through Register.
func (g *Gate) Replace(snap Snapshot) error {
	if snap.RegionID == "" {
		return fmt.Errorf("scene.Gate.Replace: region ID must not be empty")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.snapshots[snap.RegionID] = snap
	return nil
}

// Unregister removes the snapshot for regionID. Subsequent lookups fall back
// to the restrictive snapshot.
func (g *Gate) Unregister(regionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.snapshots, regionID)
}

// SnapshotFor returns the registered snapshot for regionID, or the maximally
// restrictive fallback when the region is unknown.
//
// Postcondition: Returns a complete Snapshot value; never an error.
func (g *Gate) SnapshotFor(regionID string) Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if snap, ok := g.snapshots[regionID]; ok {
		return snap
	}
	return Restrictive(regionID)
}

// RegionCount returns the number of registered regions.
func (g *Gate) RegionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.snapshots)
}
