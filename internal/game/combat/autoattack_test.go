package combat_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/feud/internal/game/combat"
)

func TestAutoAttackerSwingsUntilStopped(t *testing.T) {
	a := combat.NewAutoAttacker(5 * time.Millisecond)
	defer a.StopAll()

	var swings atomic.Int32
	done := make(chan struct{})
	a.Engage("p1", "m1", func(attackerID, targetID string) bool {
		assert.Equal(t, "p1", attackerID)
		assert.Equal(t, "m1", targetID)
		if swings.Add(1) >= 3 {
			select {
			case <-done:
			default:
				close(done)
			}
			return false
		}
		return true
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("swing loop never reached three swings")
	}

	final := swings.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, final, swings.Load())
	assert.False(t, a.Engaged("p1"))
}

func TestAutoAttackerCancelStopsSwings(t *testing.T) {
	a := combat.NewAutoAttacker(5 * time.Millisecond)
	defer a.StopAll()

	var swings atomic.Int32
	a.Engage("p1", "m1", func(attackerID, targetID string) bool {
		swings.Add(1)
		return true
	})
	assert.True(t, a.Engaged("p1"))

	a.Cancel("p1")
	assert.False(t, a.Engaged("p1"))

	settled := swings.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, swings.Load())
}

func TestAutoAttackerReengageReplacesLoop(t *testing.T) {
	a := combat.NewAutoAttacker(5 * time.Millisecond)
	defer a.StopAll()

	var stale atomic.Int32
	a.Engage("p1", "m1", func(attackerID, targetID string) bool {
		stale.Add(1)
		return true
	})

	targets := make(chan string, 16)
	a.Engage("p1", "m2", func(attackerID, targetID string) bool {
		targets <- targetID
		return true
	})

	select {
	case got := <-targets:
		assert.Equal(t, "m2", got)
	case <-time.After(time.Second):
		t.Fatal("replacement loop never fired")
	}
	a.Cancel("p1")
}

func TestAutoAttackerCancelUnknownActor(t *testing.T) {
	a := combat.NewAutoAttacker(0)
	a.Cancel("nobody")
	assert.False(t, a.Engaged("nobody"))
}
