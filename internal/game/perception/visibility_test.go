package perception_test

import (
	"testing"

	"github.com/cory-johannsen/feud/internal/game/perception"
)

// TestTracker_CanPerceive_SelfAlways verifies an actor always perceives itself,
// even hidden and in darkness.
func TestTracker_CanPerceive_SelfAlways(t *testing.T) {
	tr := perception.NewTracker(func() bool { return true })
	tr.SetHidden("a1", true)
	if !tr.CanPerceive("a1", "a1") {
		t.Error("an actor must always perceive itself")
	}
}

// TestTracker_CanPerceive_StealthAndReveal verifies stealth blocks perception
// until a per-viewer reveal, and re-stealth clears reveals.
func TestTracker_CanPerceive_StealthAndReveal(t *testing.T) {
	tr := perception.NewTracker(nil)

	if !tr.CanPerceive("v1", "t1") {
		t.Fatal("unhidden target should be perceivable")
	}

	tr.SetHidden("t1", true)
	if tr.CanPerceive("v1", "t1") {
		t.Error("hidden target should not be perceivable")
	}

	tr.Reveal("t1", "v1")
	if !tr.CanPerceive("v1", "t1") {
		t.Error("revealed viewer should perceive the hidden target")
	}
	if tr.CanPerceive("v2", "t1") {
		t.Error("reveal is per-viewer; v2 should not perceive the hidden target")
	}

	// Dropping and re-entering stealth starts unrevealed.
	tr.SetHidden("t1", false)
	tr.SetHidden("t1", true)
	if tr.CanPerceive("v1", "t1") {
		t.Error("re-stealth should clear earlier reveals")
	}
}

// TestTracker_CanPerceive_DarknessHidesUnrevealed verifies ambient darkness
// hides everyone except revealed pairs and self.
func TestTracker_CanPerceive_DarknessHidesUnrevealed(t *testing.T) {
	dark := false
	tr := perception.NewTracker(func() bool { return dark })

	if !tr.CanPerceive("v1", "t1") {
		t.Fatal("daylight: target should be perceivable")
	}

	dark = true
	if tr.CanPerceive("v1", "t1") {
		t.Error("darkness should hide an unrevealed target")
	}

	tr.Reveal("t1", "v1")
	if !tr.CanPerceive("v1", "t1") {
		t.Error("revealed viewer should perceive through darkness")
	}
}

// TestTracker_Forget_DropsAllState verifies despawn cleanup removes the actor
// both as target and viewer.
func TestTracker_Forget_DropsAllState(t *testing.T) {
	tr := perception.NewTracker(func() bool { return true })
	tr.SetHidden("t1", true)
	tr.Reveal("t1", "v1")
	tr.Reveal("t2", "t1")

	tr.Forget("t1")
	if tr.CanPerceive("v1", "t1") {
		t.Error("forgotten actor's reveal set should be gone (dark + unrevealed)")
	}
	if tr.CanPerceive("t1", "t2") {
		t.Error("forgotten actor should be removed from other reveal sets")
	}
}
