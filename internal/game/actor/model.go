// Package actor provides the authoritative actor model and registry: every
// entity that can select, target, or attack another entity is an Actor.
package actor

// Kind distinguishes the participant categories tracked by the registry.
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
	KindNPC
	KindGuard
	KindSummon
	KindPet
	KindDestructible
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindNPC:
		return "npc"
	case KindGuard:
		return "guard"
	case KindSummon:
		return "summon"
	case KindPet:
		return "pet"
	case KindDestructible:
		return "destructible"
	default:
		return "unknown"
	}
}

// IsPlayer reports whether this kind is a player character.
// Postcondition: Returns true iff k == KindPlayer.
func (k Kind) IsPlayer() bool { return k == KindPlayer }

// IsControlled reports whether this kind inherits its controller's social
// standing (summons and pets).
func (k Kind) IsControlled() bool { return k == KindSummon || k == KindPet }

// Vitals is the single authoritative health container for an actor.
// Every consumer (UI, combat, AI) reads this one record; there is no
// separate display copy.
type Vitals struct {
	CurrentHP int
	MaxHP     int
}

// Actor represents one participant in targeting and combat.
//
// Mutations go through the Registry and the authoritative systems only;
// request-handling workers treat an Actor as a read-only view.
type Actor struct {
	// ID is the stable unique identifier assigned at spawn.
	ID string
	// Kind is the participant category.
	Kind Kind
	// Name is the display name (for logging and events).
	Name string
	// FactionID identifies the actor's faction for relation lookups.
	FactionID string
	// RegionID is the region the actor currently occupies.
	RegionID string
	// Vitals is the authoritative health record.
	Vitals Vitals
	// Flagged marks the actor as wanted by law-enforcing factions.
	Flagged bool
	// ControllerID links a summon or pet to its controlling actor.
	// It is a social relation, not an ownership link: the controlled actor
	// inherits the controller's standing for hostility purposes. Empty for
	// uncontrolled actors.
	ControllerID string
	// Dead is true once the death pipeline has marked the actor dead.
	// It is terminal until the respawn pipeline clears it.
	Dead bool
}

// IsAlive reports whether the actor can participate in targeting.
//
// Postcondition: Returns true iff Dead is false.
func (a *Actor) IsAlive() bool { return !a.Dead }

// Controlled reports whether this actor inherits a controller's standing.
// The ControllerID must also be set; a summon without a controller stands
// on its own faction.
func (a *Actor) Controlled() bool {
	return a.Kind.IsControlled() && a.ControllerID != ""
}
