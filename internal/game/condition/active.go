package condition

import (
	"fmt"
	"time"
)

// Active tracks one applied condition on an actor.
type Active struct {
	Def    *Def
	Stacks int
	// ExpiresAt is the absolute server-clock instant the condition lapses.
	// Zero means permanent.
	ExpiresAt time.Time
}

// expired reports whether the condition has lapsed at now.
func (a *Active) expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && !now.Before(a.ExpiresAt)
}

// ActiveSet tracks all conditions currently applied to one actor.
// It is not safe for concurrent use; the Tracker serialises access.
type ActiveSet struct {
	conditions map[string]*Active
}

// NewActiveSet creates an empty ActiveSet.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{conditions: make(map[string]*Active)}
}

// Apply adds or updates a condition on this actor.
// If the condition is already present, stacks are incremented (capped at
// MaxStacks; unstackable conditions stay at 1) and the expiry is extended to
// max(existing, expiresAt). A zero expiresAt means permanent.
//
// Precondition: def must not be nil.
// Postcondition: Has(def.ID) is true.
func (s *ActiveSet) Apply(def *Def, stacks int, expiresAt time.Time) error {
	if def == nil {
		return fmt.Errorf("condition.Apply: def must not be nil")
	}

	if existing, ok := s.conditions[def.ID]; ok {
		if def.MaxStacks > 0 {
			newStacks := existing.Stacks + stacks
			if newStacks > def.MaxStacks {
				newStacks = def.MaxStacks
			}
			existing.Stacks = newStacks
		}
		// Extend, never shorten. A zero (permanent) expiry wins outright.
		if expiresAt.IsZero() {
			existing.ExpiresAt = time.Time{}
		} else if !existing.ExpiresAt.IsZero() && expiresAt.After(existing.ExpiresAt) {
			existing.ExpiresAt = expiresAt
		}
		return nil
	}

	effective := stacks
	if def.MaxStacks == 0 {
		effective = 1
	} else if effective > def.MaxStacks {
		effective = def.MaxStacks
	}
	s.conditions[def.ID] = &Active{
		Def:       def,
		Stacks:    effective,
		ExpiresAt: expiresAt,
	}
	return nil
}

// Remove deletes the condition with the given ID from the set.
// If the condition is not present, Remove is a no-op.
//
// Postcondition: Has(id) is false.
func (s *ActiveSet) Remove(id string) {
	delete(s.conditions, id)
}

// Prune removes all conditions whose expiry has passed at now and returns
// their IDs. Permanent conditions are untouched.
//
// Postcondition: For every id in the returned slice, Has(id) is false.
func (s *ActiveSet) Prune(now time.Time) []string {
	var expired []string
	// Deleting map entries during range iteration is safe per the Go specification.
	for id, ac := range s.conditions {
		if ac.expired(now) {
			expired = append(expired, id)
			delete(s.conditions, id)
		}
	}
	return expired
}

// Has reports whether the condition with id is currently active.
func (s *ActiveSet) Has(id string) bool {
	_, ok := s.conditions[id]
	return ok
}

// Stacks returns the current stack count for condition id, or 0 if not present.
func (s *ActiveSet) Stacks(id string) int {
	if ac, ok := s.conditions[id]; ok {
		return ac.Stacks
	}
	return 0
}

// Blocks reports whether any active, unexpired condition blocks the given
// action kind at now.
func (s *ActiveSet) Blocks(action string, now time.Time) bool {
	for _, ac := range s.conditions {
		if ac.expired(now) {
			continue
		}
		if ac.Def.Blocks(action) {
			return true
		}
	}
	return false
}

// All returns a slice of pointers to the active conditions.
// The slice itself is a new allocation, but the pointed-to Active values are
// shared — callers must not modify them.
func (s *ActiveSet) All() []*Active {
	out := make([]*Active, 0, len(s.conditions))
	for _, ac := range s.conditions {
		out = append(out, ac)
	}
	return out
}
