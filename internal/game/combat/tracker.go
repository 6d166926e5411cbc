package combat

import (
	"sync"
	"time"
)

// State is the combat state of a single actor.
type State int

const (
	StatePeaceful State = iota
	StateInCombat
	StateDead
)

func (s State) String() string {
	switch s {
	case StatePeaceful:
		return "peaceful"
	case StateInCombat:
		return "in_combat"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// DefaultDisengageWindow is how long after the last hostile act an actor
// remains in combat.
const DefaultDisengageWindow = 10 * time.Second

// TrackerConfig tunes a Tracker.
type TrackerConfig struct {
	// DisengageWindow is the idle duration after which combat lapses.
	// Zero or negative falls back to DefaultDisengageWindow.
	DisengageWindow time.Duration
	// ExtendOnBeingTargeted makes OnTargeted refresh a defender's window
	// when they are selected as an attack target. Ships disabled.
	ExtendOnBeingTargeted bool
}

type engagement struct {
	combatUntil   time.Time
	activePursuit bool
	dead          bool
}

// Tracker derives per-actor combat state from hostile acts and the passage
// of time. State is never set directly; it follows from the engagement
// record and the clock.
//
// Entering combat is event-driven, leaving combat is sweep-driven: hostile
// hooks extend the window synchronously, and only the periodic Sweep (or a
// region hard override) moves an actor back to peaceful.
type Tracker struct {
	mu          sync.RWMutex
	engagements map[string]*engagement
	window      time.Duration
	extendOnTgt bool
	now         func() time.Time

	// OnStateChange fires after an actor's state transitions. Optional.
	OnStateChange func(actorID string, from, to State)
	// OnCombatLapsed fires when an actor leaves combat via sweep or region
	// override, before selection cleanup. Used to cancel auto-attack timers.
	OnCombatLapsed func(actorID string)
	// ClearAttackSelection clears the actor's attack-driven selection,
	// returning whether anything was cleared. Passive selections survive.
	ClearAttackSelection func(actorID string) bool
}

// NewTracker creates a Tracker using the given clock for all time reads.
//
// Precondition: now must not be nil.
func NewTracker(cfg TrackerConfig, now func() time.Time) *Tracker {
	window := cfg.DisengageWindow
	if window <= 0 {
		window = DefaultDisengageWindow
	}
	return &Tracker{
		engagements: make(map[string]*engagement),
		window:      window,
		extendOnTgt: cfg.ExtendOnBeingTargeted,
		now:         now,
	}
}

func (t *Tracker) record(actorID string) *engagement {
	e, ok := t.engagements[actorID]
	if !ok {
		e = &engagement{}
		t.engagements[actorID] = e
	}
	return e
}

// stateOf derives the combat state: an actor is in combat while actively
// pursuing OR while the window has not lapsed. Dead overrides both.
func stateOf(e *engagement, now time.Time) State {
	switch {
	case e == nil:
		return StatePeaceful
	case e.dead:
		return StateDead
	case e.activePursuit || e.combatUntil.After(now):
		return StateInCombat
	default:
		return StatePeaceful
	}
}

// extend pushes the engagement window forward, never backward.
func (e *engagement) extend(until time.Time) {
	if until.After(e.combatUntil) {
		e.combatUntil = until
	}
}

// OnHostileIntentValidated records that the attacker committed a validated
// hostile act. Only the attacker enters combat at intent time; the target is
// touched when the act resolves.
//
// Postcondition: the attacker's window is refreshed (never shortened) and
// the attacker is marked as actively pursuing.
func (t *Tracker) OnHostileIntentValidated(attackerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	e := t.record(attackerID)
	if e.dead {
		return
	}
	from := stateOf(e, now)
	e.extend(now.Add(t.window))
	e.activePursuit = true
	t.notifyLocked(attackerID, from, stateOf(e, now))
}

// OnHostileResolution records that a hostile act resolved against the
// target: damage landed, a debuff applied, or similar. Both parties get a
// refreshed window. The attacker's pursuit flag is untouched and the target
// gains none.
func (t *Tracker) OnHostileResolution(attackerID, targetID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	until := now.Add(t.window)
	for _, id := range []string{attackerID, targetID} {
		e := t.record(id)
		if e.dead {
			continue
		}
		from := stateOf(e, now)
		e.extend(until)
		t.notifyLocked(id, from, stateOf(e, now))
	}
}

// OnEngagementEnded clears the actor's pursuit flag, typically because
// their auto-attack target died or despawned. The combat window keeps
// ticking down on its own. When the window already lapsed while the actor
// was pursuing, clearing the flag is what drops them back to peaceful.
func (t *Tracker) OnEngagementEnded(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.engagements[actorID]
	if !ok {
		return
	}
	now := t.now()
	wasInCombat := stateOf(e, now) == StateInCombat
	e.activePursuit = false
	if wasInCombat && stateOf(e, now) == StatePeaceful {
		// The pursuit flag was the only thing holding the actor in
		// combat; finish the exit now instead of waiting for a sweep.
		t.lapseLocked(actorID, e)
	}
}

// OnTargeted refreshes the defender's combat window when the tracker is
// configured to extend on being targeted. The toggle ships disabled, so in
// the default configuration merely being picked as a target drags nobody
// into combat.
func (t *Tracker) OnTargeted(defenderID string) {
	if !t.extendOnTgt {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	e := t.record(defenderID)
	if e.dead {
		return
	}
	from := stateOf(e, now)
	e.extend(now.Add(t.window))
	t.notifyLocked(defenderID, from, stateOf(e, now))
}

// OnDeath marks the actor dead. Dead is terminal: no hostile hook moves the
// actor out of it until OnRevive.
func (t *Tracker) OnDeath(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	e := t.record(actorID)
	from := stateOf(e, now)
	e.dead = true
	e.activePursuit = false
	e.combatUntil = time.Time{}
	t.notifyLocked(actorID, from, StateDead)
}

// OnRevive returns a dead actor to peaceful with a clean engagement record.
func (t *Tracker) OnRevive(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.engagements[actorID]
	if !ok || !e.dead {
		return
	}
	delete(t.engagements, actorID)
	t.notifyLocked(actorID, StateDead, StatePeaceful)
}

// Forget drops all engagement state for a despawned actor without emitting
// transitions.
func (t *Tracker) Forget(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.engagements, actorID)
}

// StateOf reports the actor's current state. Unknown actors are peaceful.
func (t *Tracker) StateOf(actorID string) State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return stateOf(t.engagements[actorID], t.now())
}

// InCombat is a convenience wrapper over StateOf.
func (t *Tracker) InCombat(actorID string) bool {
	return t.StateOf(actorID) == StateInCombat
}

// ActivePursuit reports whether the actor is flagged as actively pursuing a
// hostile engagement. Attacker-side only.
func (t *Tracker) ActivePursuit(actorID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.engagements[actorID]
	return ok && e.activePursuit
}

// Remaining reports how long until the actor's combat window lapses. Zero
// for actors not in combat.
func (t *Tracker) Remaining(actorID string) time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.engagements[actorID]
	if !ok || e.dead {
		return 0
	}
	d := e.combatUntil.Sub(t.now())
	if d < 0 {
		return 0
	}
	return d
}

// Sweep expires lapsed engagements. For each actor whose window has passed,
// the actor drops to peaceful, auto-attack is cancelled, and any
// attack-driven selection is cleared. Passive selections, records of dead
// actors, and actors still flagged as actively pursuing are untouched: an
// active pursuit holds the actor in combat until OnEngagementEnded clears
// it.
//
// Called periodically by the server tick; the cadence bounds how stale an
// in-combat answer can be, it never changes the outcome.
func (t *Tracker) Sweep() {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	for id, e := range t.engagements {
		if e.dead || e.activePursuit || e.combatUntil.IsZero() {
			continue
		}
		if e.combatUntil.After(now) {
			continue
		}
		t.lapseLocked(id, e)
	}
}

// ForcePeaceful immediately drops the actor out of combat regardless of any
// remaining window. Used when an actor enters a region that forbids combat:
// the region rule wins over the timer.
func (t *Tracker) ForcePeaceful(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.engagements[actorID]
	if !ok || e.dead {
		return
	}
	if stateOf(e, t.now()) != StateInCombat {
		e.combatUntil = time.Time{}
		e.activePursuit = false
		return
	}
	t.lapseLocked(actorID, e)
}

// lapseLocked ends one engagement: state to peaceful, auto-attack cancelled,
// attack-driven selection cleared. Caller holds the write lock.
func (t *Tracker) lapseLocked(actorID string, e *engagement) {
	e.combatUntil = time.Time{}
	e.activePursuit = false
	if t.OnCombatLapsed != nil {
		t.OnCombatLapsed(actorID)
	}
	if t.ClearAttackSelection != nil {
		t.ClearAttackSelection(actorID)
	}
	t.notifyLocked(actorID, StateInCombat, StatePeaceful)
}

func (t *Tracker) notifyLocked(actorID string, from, to State) {
	if from == to || t.OnStateChange == nil {
		return
	}
	t.OnStateChange(actorID, from, to)
}
