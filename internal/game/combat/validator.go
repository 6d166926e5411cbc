// Package combat implements the attack legality chain and the engagement
// state machine for the open-world relation backend: whether an attack may
// happen, and who currently counts as "in combat".
package combat

import (
	"github.com/cory-johannsen/feud/internal/game/actor"
	"github.com/cory-johannsen/feud/internal/game/scene"
	"github.com/cory-johannsen/feud/internal/game/targeting"
)

// Action kind strings passed to the status gate.
const (
	ActionAttack = "attack"
	ActionCast   = "cast"
)

// StatusSource is the external status/condition collaborator.
// Using a local interface avoids a dependency on the condition package.
type StatusSource interface {
	ActionBlocked(actorID, action string) bool
}

// PerceptionSource is the external visibility collaborator.
type PerceptionSource interface {
	CanPerceive(viewerID, targetID string) bool
}

// AttackQuery bundles the inputs of one legality computation. It is a
// transient value: build it, ask, discard it.
type AttackQuery struct {
	Attacker *actor.Actor
	Target   *actor.Actor
	// Snapshot is the rule snapshot of the region the attack happens in.
	Snapshot scene.Snapshot
	// Action is the intent kind: ActionAttack or ActionCast.
	Action string
	// InRange reports whether the movement system found the target within
	// range and line of sight. The validator never computes geometry itself.
	InRange bool
}

// Verdict is the outcome of a legality computation.
type Verdict struct {
	Allowed bool
	Reason  targeting.Reason
}

func allowed() Verdict { return Verdict{Allowed: true, Reason: targeting.ReasonNone} }

func denied(r targeting.Reason) Verdict { return Verdict{Reason: r} }

// Validator composes eligibility, disposition, range, and status gates into
// one allow/deny decision. It is a pure query object: CanAttack never mutates
// actor or engagement state, and every call is idempotent and cheap to
// re-issue.
type Validator struct {
	resolver *targeting.Resolver
	status   StatusSource
	vision   PerceptionSource
}

// NewValidator creates a Validator.
//
// Precondition: resolver must not be nil. status and vision may be nil,
// skipping the corresponding gates (used by tests and headless tools).
func NewValidator(resolver *targeting.Resolver, status StatusSource, vision PerceptionSource) *Validator {
	return &Validator{resolver: resolver, status: status, vision: vision}
}

// CanAttack decides whether the attack described by q is legal. The chain is
// sequential and short-circuits on the first failure, each mapped to one
// stable reason code:
//
// nil actors → attacker alive → target alive → region permits combat →
// region permits damage → (both players) region permits PvP → range/LoS →
// attacker not status-gated → attacker perceives target → disposition
// resolves to Hostile.
//
// Postcondition: Returns Allowed iff every gate passes; no state is mutated.
func (v *Validator) CanAttack(q AttackQuery) Verdict {
	if q.Attacker == nil || q.Target == nil {
		return denied(targeting.ReasonUnknownActor)
	}
	if !q.Attacker.IsAlive() {
		return denied(targeting.ReasonAttackerDead)
	}
	if !q.Target.IsAlive() {
		return denied(targeting.ReasonTargetDead)
	}
	if !q.Snapshot.AllowsCombat() {
		return denied(targeting.ReasonCombatDisallowed)
	}
	if !q.Snapshot.AllowsDamage() {
		return denied(targeting.ReasonDamageDisallowed)
	}
	if q.Attacker.Kind.IsPlayer() && q.Target.Kind.IsPlayer() && !q.Snapshot.AllowsPvP() {
		return denied(targeting.ReasonPvPDisallowed)
	}
	if !q.InRange {
		return denied(targeting.ReasonOutOfRange)
	}
	action := q.Action
	if action == "" {
		action = ActionAttack
	}
	if v.status != nil && v.status.ActionBlocked(q.Attacker.ID, action) {
		return denied(targeting.ReasonStatusBlocked)
	}

	var perceive targeting.PerceiveFunc
	if v.vision != nil {
		perceive = v.vision.CanPerceive
	}
	// Range is already satisfied; no range gate in the resolution.
	res := v.resolver.Resolve(q.Attacker, q.Target, q.Snapshot, perceive, nil)
	if !res.Eligible {
		return denied(res.Reason)
	}
	if res.Disposition != targeting.DispositionHostile {
		return denied(targeting.ReasonNotHostile)
	}
	return allowed()
}
