// Package targeting decides what one actor may see another as: the two-phase
// eligibility/disposition resolution consulted by selection and by the attack
// legality chain.
package targeting

// Disposition is the relationship label a viewer perceives toward a target.
type Disposition int

const (
	DispositionSelf Disposition = iota
	DispositionFriendly
	DispositionNeutral
	DispositionHostile
	DispositionInvalid
)

// String returns a human-readable disposition label.
func (d Disposition) String() string {
	switch d {
	case DispositionSelf:
		return "self"
	case DispositionFriendly:
		return "friendly"
	case DispositionNeutral:
		return "neutral"
	case DispositionHostile:
		return "hostile"
	case DispositionInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Reason is the stable deny-reason vocabulary shared by targeting and the
// attack legality validator. Failures surface as one of these codes, never
// as errors used for control flow.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnknownActor
	ReasonAttackerDead
	ReasonTargetDead
	ReasonNotPerceived
	ReasonCombatDisallowed
	ReasonDamageDisallowed
	ReasonPvPDisallowed
	ReasonNotHostile
	ReasonOutOfRange
	ReasonStatusBlocked
)

// String returns the stable wire code for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnknownActor:
		return "unknown_actor"
	case ReasonAttackerDead:
		return "attacker_dead"
	case ReasonTargetDead:
		return "target_dead"
	case ReasonNotPerceived:
		return "not_perceived"
	case ReasonCombatDisallowed:
		return "combat_disallowed"
	case ReasonDamageDisallowed:
		return "damage_disallowed"
	case ReasonPvPDisallowed:
		return "pvp_disallowed"
	case ReasonNotHostile:
		return "not_hostile"
	case ReasonOutOfRange:
		return "out_of_range"
	case ReasonStatusBlocked:
		return "status_blocked"
	default:
		return "unknown"
	}
}

// Result bundles the outcome of one disposition resolution. It is a transient
// value: never persisted, never mutated in place.
type Result struct {
	Eligible    bool
	Disposition Disposition
	Reason      Reason
}
