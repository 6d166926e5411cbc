package scene_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cory-johannsen/feud/internal/game/scene"
)

// TestGate_Register_RefusesDuplicate verifies the second registration for a
// region fails and the first snapshot stays in effect.
func TestGate_Register_RefusesDuplicate(t *testing.T) {
	g := scene.NewGate()
	first := scene.Snapshot{RegionID: "r1", Context: scene.ContextArena, Flags: scene.ContextArena.DefaultFlags()}
	if err := g.Register(first); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	second := scene.Snapshot{RegionID: "r1", Context: scene.ContextSanctuary}
	if err := g.Register(second); err == nil {
		t.Fatal("expected error registering a second snapshot for r1, got nil")
	}
	if got := g.SnapshotFor("r1"); got != first {
		t.Errorf("SnapshotFor(r1) = %+v, want the first registration %+v", got, first)
	}
}

// TestGate_SnapshotFor_UnknownRegionIsRestrictive verifies unknown regions
// fall back to the maximally restrictive snapshot.
func TestGate_SnapshotFor_UnknownRegionIsRestrictive(t *testing.T) {
	g := scene.NewGate()
	snap := g.SnapshotFor("ghost-town")
	if snap.AllowsCombat() || snap.AllowsDamage() || snap.AllowsPvP() || snap.AllowsHostiles() {
		t.Errorf("unknown region snapshot permits something: %s", snap.Flags)
	}
	if snap.RegionID != "ghost-town" {
		t.Errorf("fallback RegionID = %q, want %q", snap.RegionID, "ghost-town")
	}
}

// TestGate_Unregister_FallsBackToRestrictive verifies an unregistered region
// becomes restrictive again.
func TestGate_Unregister_FallsBackToRestrictive(t *testing.T) {
	g := scene.NewGate()
	if err := g.Register(scene.Snapshot{RegionID: "r1", Context: scene.ContextWilds, Flags: scene.ContextWilds.DefaultFlags()}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	g.Unregister("r1")
	if g.SnapshotFor("r1").AllowsCombat() {
		t.Error("unregistered region should be restrictive")
	}
}

// TestContext_DefaultFlags verifies the canonical context → permission mapping.
func TestContext_DefaultFlags(t *testing.T) {
	if f := scene.ContextSanctuary.DefaultFlags(); f != 0 {
		t.Errorf("sanctuary defaults = %s, want none", f)
	}
	if f := scene.ContextSettlement.DefaultFlags(); !f.Has(scene.AllowCombat|scene.AllowDamage) || f.Has(scene.AllowPvP) || f.Has(scene.AllowHostiles) {
		t.Errorf("settlement defaults = %s, want combat,damage", f)
	}
	if f := scene.ContextWilds.DefaultFlags(); !f.Has(scene.AllowCombat|scene.AllowDamage|scene.AllowHostiles) || f.Has(scene.AllowPvP) {
		t.Errorf("wilds defaults = %s, want combat,damage,hostiles", f)
	}
	if f := scene.ContextArena.DefaultFlags(); !f.Has(scene.AllowCombat | scene.AllowDamage | scene.AllowPvP | scene.AllowHostiles) {
		t.Errorf("arena defaults = %s, want all flags", f)
	}
}

// TestLoadSnapshots_ParsesDirectory verifies region YAML files load, with
// explicit flags overriding context defaults.
func TestLoadSnapshots_ParsesDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	write("town.yaml", "id: town\nname: Dockside\ncontext: settlement\n")
	write("pit.yaml", "id: pit\nname: The Pit\ncontext: settlement\nflags: [combat, damage, pvp]\n")

	snaps, err := scene.LoadSnapshots(dir)
	if err != nil {
		t.Fatalf("LoadSnapshots: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("loaded %d snapshots, want 2", len(snaps))
	}

	byID := map[string]scene.Snapshot{}
	for _, s := range snaps {
		byID[s.RegionID] = s
	}
	if byID["town"].Flags != scene.ContextSettlement.DefaultFlags() {
		t.Errorf("town flags = %s, want settlement defaults", byID["town"].Flags)
	}
	if !byID["pit"].AllowsPvP() {
		t.Error("pit should allow pvp via explicit flags")
	}
	if byID["pit"].AllowsHostiles() {
		t.Error("pit explicit flags omit hostiles; context defaults must not leak in")
	}
}

// TestLoadSnapshots_RejectsUnknownContext verifies an invalid context fails the load.
func TestLoadSnapshots_RejectsUnknownContext(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: bad\ncontext: moonbase\n"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := scene.LoadSnapshots(dir); err == nil {
		t.Error("expected error for unknown context, got nil")
	}
}
