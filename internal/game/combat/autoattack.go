package combat

import (
	"sync"
	"time"
)

// swingTimer fires a callback after a configurable duration unless stopped.
// It is safe for concurrent use.
type swingTimer struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// newSwingTimer creates and starts a timer that calls onFire after duration.
// onFire is called in a separate goroutine.
//
// Precondition: duration > 0; onFire must not be nil.
// Postcondition: Returns a running swingTimer; onFire will be called unless
// stop is called first.
func newSwingTimer(duration time.Duration, onFire func()) *swingTimer {
	st := &swingTimer{}
	st.timer = time.AfterFunc(duration, func() {
		st.mu.Lock()
		stopped := st.stopped
		st.mu.Unlock()
		if !stopped {
			onFire()
		}
	})
	return st
}

// reset cancels the current timer and starts a new one.
//
// Precondition: duration > 0; onFire must not be nil.
func (st *swingTimer) reset(duration time.Duration, onFire func()) {
	st.mu.Lock()
	st.stopped = false
	st.timer.Stop()
	st.mu.Unlock()

	newTimer := time.AfterFunc(duration, func() {
		st.mu.Lock()
		s := st.stopped
		st.mu.Unlock()
		if !s {
			onFire()
		}
	})

	st.mu.Lock()
	st.timer = newTimer
	st.mu.Unlock()
}

// stop prevents the callback from firing. Safe to call multiple times.
//
// Postcondition: onFire will not be called after stop returns.
func (st *swingTimer) stop() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.stopped = true
	st.timer.Stop()
}

// DefaultSwingInterval is the cadence between automatic attack swings.
const DefaultSwingInterval = 2 * time.Second

// AutoAttacker drives per-actor automatic attack swings. Each engaged actor
// has one repeating timer; every tick the swing callback decides whether the
// attack is still legal and either lands it or disengages.
//
// The scheduler owns the timers only. All legality decisions happen in the
// swing callback supplied by the caller, which returns whether the loop
// should continue.
type AutoAttacker struct {
	mu       sync.Mutex
	interval time.Duration
	swings   map[string]*swingTimer
}

// NewAutoAttacker creates an AutoAttacker. An interval <= 0 falls back to
// DefaultSwingInterval.
func NewAutoAttacker(interval time.Duration) *AutoAttacker {
	if interval <= 0 {
		interval = DefaultSwingInterval
	}
	return &AutoAttacker{
		interval: interval,
		swings:   make(map[string]*swingTimer),
	}
}

// Engage starts (or restarts) the swing loop for attackerID against
// targetID. swing is invoked once per interval with the pair; returning
// false stops the loop and removes the engagement.
//
// Precondition: swing must not be nil.
// Postcondition: exactly one active loop exists for attackerID.
func (a *AutoAttacker) Engage(attackerID, targetID string, swing func(attackerID, targetID string) bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if prev, ok := a.swings[attackerID]; ok {
		prev.stop()
	}
	var fire func()
	fire = func() {
		if !swing(attackerID, targetID) {
			a.Cancel(attackerID)
			return
		}
		a.mu.Lock()
		st, ok := a.swings[attackerID]
		if ok {
			st.reset(a.interval, fire)
		}
		a.mu.Unlock()
	}
	a.swings[attackerID] = newSwingTimer(a.interval, fire)
}

// Cancel stops the attacker's swing loop if one is running. Safe to call for
// unknown actors and safe to call repeatedly.
func (a *AutoAttacker) Cancel(attackerID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if st, ok := a.swings[attackerID]; ok {
		st.stop()
		delete(a.swings, attackerID)
	}
}

// Engaged reports whether the attacker has an active swing loop.
func (a *AutoAttacker) Engaged(attackerID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.swings[attackerID]
	return ok
}

// StopAll cancels every swing loop. Used during shutdown.
func (a *AutoAttacker) StopAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for id, st := range a.swings {
		st.stop()
		delete(a.swings, id)
	}
}
