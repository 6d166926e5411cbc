package actor

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Registry tracks all live actors by ID and by region.
// All methods are safe for concurrent use; the registry is the only writer
// of actor identity and placement.
type Registry struct {
	mu         sync.RWMutex
	actors     map[string]*Actor          // actorID → Actor
	regionSets map[string]map[string]bool // regionID → set of actorIDs
}

// NewRegistry creates an empty actor Registry.
func NewRegistry() *Registry {
	return &Registry{
		actors:     make(map[string]*Actor),
		regionSets: make(map[string]map[string]bool),
	}
}

// Spawn creates a new Actor and places it in regionID.
//
// Precondition: name, factionID, and regionID must be non-empty.
// Postcondition: Returns a new living Actor with a unique ID registered in regionID.
func (r *Registry) Spawn(kind Kind, name, factionID, regionID string, vitals Vitals) (*Actor, error) {
	if name == "" {
		return nil, fmt.Errorf("actor.Registry.Spawn: name must not be empty")
	}
	if factionID == "" {
		return nil, fmt.Errorf("actor.Registry.Spawn: factionID must not be empty")
	}
	if regionID == "" {
		return nil, fmt.Errorf("actor.Registry.Spawn: regionID must not be empty")
	}

	a := &Actor{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		FactionID: factionID,
		RegionID:  regionID,
		Vitals:    vitals,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.actors[a.ID] = a
	if r.regionSets[regionID] == nil {
		r.regionSets[regionID] = make(map[string]bool)
	}
	r.regionSets[regionID][a.ID] = true

	return a, nil
}

// Despawn removes an actor by ID.
//
// Precondition: id must be non-empty.
// Postcondition: Returns an error if the actor is not found.
func (r *Registry) Despawn(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actors[id]
	if !ok {
		return fmt.Errorf("actor %q not found", id)
	}

	if rs, ok := r.regionSets[a.RegionID]; ok {
		delete(rs, id)
		if len(rs) == 0 {
			delete(r.regionSets, a.RegionID)
		}
	}
	delete(r.actors, id)
	return nil
}

// Get returns the actor with the given ID.
//
// Postcondition: Returns (actor, true) if found, or (nil, false) otherwise.
func (r *Registry) Get(id string) (*Actor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actors[id]
	return a, ok
}

// InRegion returns a snapshot of all live actors in regionID.
//
// Postcondition: Returns a non-nil slice (may be empty).
func (r *Registry) InRegion(regionID string) []*Actor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.regionSets[regionID]
	if !ok {
		return []*Actor{}
	}

	out := make([]*Actor, 0, len(ids))
	for id := range ids {
		if a, ok := r.actors[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Move relocates an actor from its current region to newRegionID.
//
// Precondition: id must identify an existing actor; newRegionID must be non-empty.
// Postcondition: actor.RegionID equals newRegionID; region index is updated accordingly.
func (r *Registry) Move(id, newRegionID string) error {
	if newRegionID == "" {
		return fmt.Errorf("actor.Registry.Move: newRegionID must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actors[id]
	if !ok {
		return fmt.Errorf("actor.Registry.Move: actor %q not found", id)
	}

	oldRegionID := a.RegionID
	if rs, ok := r.regionSets[oldRegionID]; ok {
		delete(rs, id)
		if len(rs) == 0 {
			delete(r.regionSets, oldRegionID)
		}
	}

	a.RegionID = newRegionID
	if r.regionSets[newRegionID] == nil {
		r.regionSets[newRegionID] = make(map[string]bool)
	}
	r.regionSets[newRegionID][id] = true

	return nil
}

// SetController links a summon or pet to its controlling actor.
//
// Precondition: id must identify a Summon or Pet; controllerID must identify
// an existing actor, or be empty to clear the link.
func (r *Registry) SetController(id, controllerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actors[id]
	if !ok {
		return fmt.Errorf("actor.Registry.SetController: actor %q not found", id)
	}
	if !a.Kind.IsControlled() {
		return fmt.Errorf("actor.Registry.SetController: %q is a %s, not a summon or pet", id, a.Kind)
	}
	if controllerID != "" {
		if _, ok := r.actors[controllerID]; !ok {
			return fmt.Errorf("actor.Registry.SetController: controller %q not found", controllerID)
		}
	}
	a.ControllerID = controllerID
	return nil
}

// SetFlagged sets or clears the law-enforcement flag on an actor.
//
// Postcondition: Returns an error if the actor is not found.
func (r *Registry) SetFlagged(id string, flagged bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actors[id]
	if !ok {
		return fmt.Errorf("actor.Registry.SetFlagged: actor %q not found", id)
	}
	a.Flagged = flagged
	return nil
}

// MarkDead marks an actor dead. The flag is terminal until Revive clears it.
//
// Postcondition: actor.Dead is true; vitals are floored at zero.
func (r *Registry) MarkDead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actors[id]
	if !ok {
		return fmt.Errorf("actor.Registry.MarkDead: actor %q not found", id)
	}
	a.Dead = true
	a.Vitals.CurrentHP = 0
	return nil
}

// Revive clears the dead flag and restores vitals to full.
// Called only by the respawn pipeline.
//
// Postcondition: actor.Dead is false; CurrentHP == MaxHP.
func (r *Registry) Revive(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.actors[id]
	if !ok {
		return fmt.Errorf("actor.Registry.Revive: actor %q not found", id)
	}
	a.Dead = false
	a.Vitals.CurrentHP = a.Vitals.MaxHP
	return nil
}

// All returns a snapshot of every live actor.
//
// Postcondition: Returns a non-nil slice (may be empty).
func (r *Registry) All() []*Actor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Actor, 0, len(r.actors))
	for _, a := range r.actors {
		out = append(out, a)
	}
	return out
}

// Count returns the number of live actors in the registry.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actors)
}
