package faction

import "github.com/cory-johannsen/feud/internal/game/actor"

// Lookup resolves an actor ID to its live record. The registry's Get method
// satisfies this; a local interface keeps the service free of a registry
// dependency.
type Lookup interface {
	Get(id string) (*actor.Actor, bool)
}

// Service resolves the effective relation a viewer holds toward a target.
// It is pure and side-effect-free: safe to call concurrently without
// synchronization.
type Service struct {
	matrix *Matrix
	lookup Lookup
}

// NewService creates a relation Service over the given matrix.
//
// Precondition: matrix must not be nil. lookup may be nil, in which case
// controller inheritance is skipped (controlled actors stand on their own
// faction).
func NewService(matrix *Matrix, lookup Lookup) *Service {
	return &Service{matrix: matrix, lookup: lookup}
}

// effective returns the actor whose social standing applies: the controller
// for a controlled summon or pet, otherwise the actor itself. A dangling
// controller link falls back to the actor itself.
func (s *Service) effective(a *actor.Actor) *actor.Actor {
	if !a.Controlled() || s.lookup == nil {
		return a
	}
	if c, ok := s.lookup.Get(a.ControllerID); ok {
		return c
	}
	return a
}

// Relation resolves viewer's standing toward target, in fixed order:
//  1. controller inheritance — a controlled actor is evaluated using its
//     controller's faction and flags;
//  2. law-enforcement override — a law-enforcing faction treats a flagged
//     actor as Hostile irrespective of the base matrix;
//  3. baseline matrix lookup.
//
// Precondition: viewer and target must not be nil.
// Postcondition: Returns one of Friendly, Neutral, Hostile.
func (s *Service) Relation(viewer, target *actor.Actor) Relation {
	ev := s.effective(viewer)
	et := s.effective(target)

	if s.matrix.EnforcesLaw(ev.FactionID) && et.Flagged {
		return Hostile
	}

	return s.matrix.Relation(ev.FactionID, et.FactionID)
}
