package targeting

import (
	"github.com/cory-johannsen/feud/internal/game/actor"
	"github.com/cory-johannsen/feud/internal/game/faction"
	"github.com/cory-johannsen/feud/internal/game/scene"
)

// PerceiveFunc reports whether a viewer can perceive a target (stealth/reveal).
type PerceiveFunc func(viewerID, targetID string) bool

// RangeFunc reports whether a target is within selection range of a viewer.
// A nil RangeFunc skips the range gate.
type RangeFunc func(viewer, target *actor.Actor) bool

// Eligible decides whether target can be selected by viewer at all.
// Checks run in a fixed order with the first failure winning:
// nil guard → self → target alive → perceivable → optional range gate.
//
// Postcondition: Returns (true, ReasonNone) or (false, the first failing reason).
func Eligible(viewer, target *actor.Actor, perceive PerceiveFunc, rangeGate RangeFunc) (bool, Reason) {
	if viewer == nil || target == nil {
		return false, ReasonUnknownActor
	}
	if viewer.ID == target.ID {
		return true, ReasonNone
	}
	if !target.IsAlive() {
		return false, ReasonTargetDead
	}
	if perceive != nil && !perceive(viewer.ID, target.ID) {
		return false, ReasonNotPerceived
	}
	if rangeGate != nil && !rangeGate(viewer, target) {
		return false, ReasonOutOfRange
	}
	return true, ReasonNone
}

// Resolver computes dispositions from the faction relation service.
// It is pure: safe for concurrent use from any request-handling worker.
type Resolver struct {
	relations *faction.Service
}

// NewResolver creates a Resolver over the given relation service.
//
// Precondition: relations must not be nil.
func NewResolver(relations *faction.Service) *Resolver {
	return &Resolver{relations: relations}
}

// Resolve computes the disposition viewer perceives toward target under the
// region snapshot. The evaluation order is fixed:
//
//  1. identity → Self
//  2. eligibility → Invalid with the failing reason
//  3. base relation from the faction service
//  4. region override: a region that disallows hostile actors downgrades
//     Hostile to Neutral (never to Friendly)
//  5. PvP override: two players in a region that disallows PvP downgrade
//     Hostile to Neutral
//  6. relation → disposition
//
// Downgrading instead of denying keeps the label meaningful for passive UI
// display even where an attack would be illegal.
//
// Postcondition: Returns a complete Result; Disposition is DispositionInvalid
// iff Eligible is false.
func (r *Resolver) Resolve(viewer, target *actor.Actor, snap scene.Snapshot, perceive PerceiveFunc, rangeGate RangeFunc) Result {
	if viewer != nil && target != nil && viewer.ID == target.ID {
		return Result{Eligible: true, Disposition: DispositionSelf, Reason: ReasonNone}
	}

	ok, reason := Eligible(viewer, target, perceive, rangeGate)
	if !ok {
		return Result{Eligible: false, Disposition: DispositionInvalid, Reason: reason}
	}

	rel := r.relations.Relation(viewer, target)

	if rel == faction.Hostile && !snap.AllowsHostiles() {
		rel = faction.Neutral
	}
	if rel == faction.Hostile && viewer.Kind.IsPlayer() && target.Kind.IsPlayer() && !snap.AllowsPvP() {
		rel = faction.Neutral
	}

	return Result{Eligible: true, Disposition: dispositionFor(rel), Reason: ReasonNone}
}

// dispositionFor maps a faction relation to its disposition label.
func dispositionFor(rel faction.Relation) Disposition {
	switch rel {
	case faction.Friendly:
		return DispositionFriendly
	case faction.Hostile:
		return DispositionHostile
	default:
		return DispositionNeutral
	}
}
