package condition_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cory-johannsen/feud/internal/game/condition"
)

func stunDef() *condition.Def {
	return &condition.Def{
		ID: "stunned", Name: "Stunned", Duration: "timed", MaxStacks: 3,
		BlockActions: []string{condition.ActionAttack, condition.ActionCast, condition.ActionMove},
	}
}

func silenceDef() *condition.Def {
	return &condition.Def{
		ID: "silenced", Name: "Silenced", Duration: "timed",
		BlockActions: []string{condition.ActionCast},
	}
}

// fakeClock returns a now func reading from a mutable time pointer.
func fakeClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

// TestTracker_ActionBlocked_PerAction verifies blocking is scoped to the
// condition's listed action kinds.
func TestTracker_ActionBlocked_PerAction(t *testing.T) {
	now := time.Now()
	tr := condition.NewTracker(fakeClock(&now))

	if err := tr.Apply("a1", silenceDef(), 1, 10*time.Second); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !tr.ActionBlocked("a1", condition.ActionCast) {
		t.Error("silenced actor should be blocked from casting")
	}
	if tr.ActionBlocked("a1", condition.ActionAttack) {
		t.Error("silenced actor should not be blocked from attacking")
	}
	if tr.ActionBlocked("ghost", condition.ActionAttack) {
		t.Error("unknown actor should never be blocked")
	}
}

// TestTracker_ActionBlocked_ExpiryHonoursClock verifies a timed condition stops
// blocking once the clock passes its expiry, even before a sweep.
func TestTracker_ActionBlocked_ExpiryHonoursClock(t *testing.T) {
	now := time.Now()
	tr := condition.NewTracker(fakeClock(&now))

	if err := tr.Apply("a1", stunDef(), 1, 5*time.Second); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !tr.ActionBlocked("a1", condition.ActionAttack) {
		t.Fatal("stunned actor should be blocked from attacking")
	}

	now = now.Add(6 * time.Second)
	if tr.ActionBlocked("a1", condition.ActionAttack) {
		t.Error("expired stun should no longer block")
	}

	tr.Sweep()
	if tr.Has("a1", "stunned") {
		t.Error("sweep should prune the expired condition")
	}
}

// TestActiveSet_Apply_StacksAndExtends verifies stack capping and
// extend-never-shorten expiry semantics.
func TestActiveSet_Apply_StacksAndExtends(t *testing.T) {
	set := condition.NewActiveSet()
	def := stunDef()
	base := time.Now()

	if err := set.Apply(def, 2, base.Add(5*time.Second)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := set.Apply(def, 2, base.Add(3*time.Second)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := set.Stacks("stunned"); got != 3 {
		t.Errorf("Stacks = %d, want 3 (capped at MaxStacks)", got)
	}
	// The shorter re-apply must not shorten the original expiry.
	if set.Prune(base.Add(4*time.Second)) != nil {
		t.Error("condition pruned at t=4s; expiry should still be t=5s")
	}
	expired := set.Prune(base.Add(6 * time.Second))
	if len(expired) != 1 || expired[0] != "stunned" {
		t.Errorf("Prune at t=6s = %v, want [stunned]", expired)
	}
}

// TestActiveSet_Apply_UnstackableStaysAtOne verifies MaxStacks == 0 keeps a
// single stack across re-applies.
func TestActiveSet_Apply_UnstackableStaysAtOne(t *testing.T) {
	set := condition.NewActiveSet()
	def := silenceDef()

	if err := set.Apply(def, 3, time.Time{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := set.Apply(def, 3, time.Time{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := set.Stacks("silenced"); got != 1 {
		t.Errorf("Stacks = %d, want 1 for unstackable condition", got)
	}
}

// TestLoadDirectory_ParsesDefs verifies condition YAML files load with block lists.
func TestLoadDirectory_ParsesDefs(t *testing.T) {
	dir := t.TempDir()
	data := "id: paralyzed\nname: Paralyzed\nduration: timed\nblock_actions: [attack, cast, move, interact]\n"
	if err := os.WriteFile(filepath.Join(dir, "paralyzed.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	reg, err := condition.LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	def, ok := reg.Get("paralyzed")
	if !ok {
		t.Fatal("paralyzed not registered")
	}
	if !def.Blocks(condition.ActionInteract) {
		t.Error("paralyzed should block interact")
	}
}

// TestLoadDirectory_RejectsUnknownField verifies strict decoding catches typos.
func TestLoadDirectory_RejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	data := "id: x\nname: X\nblocked_actions: [attack]\n"
	if err := os.WriteFile(filepath.Join(dir, "x.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := condition.LoadDirectory(dir); err == nil {
		t.Error("expected error for unknown field 'blocked_actions', got nil")
	}
}
