package faction_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cory-johannsen/feud/internal/game/faction"
)

func writeFactionFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// TestLoadDefinitions_ParsesDirectory verifies YAML faction files load with
// relations and the enforces_law flag intact.
func TestLoadDefinitions_ParsesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFactionFile(t, dir, "guards.yaml", `
id: guards
name: The Watch
enforces_law: true
relations:
  settlers: friendly
`)
	writeFactionFile(t, dir, "settlers.yaml", `
id: settlers
name: Settlers
`)
	writeFactionFile(t, dir, "notes.txt", "ignored")

	defs, err := faction.LoadDefinitions(dir)
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("loaded %d definitions, want 2", len(defs))
	}

	m, err := faction.BuildMatrix(defs)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}
	if !m.EnforcesLaw("guards") {
		t.Error("guards should enforce the law")
	}
	if got := m.Relation("guards", "settlers"); got != faction.Friendly {
		t.Errorf("guards→settlers = %v, want friendly", got)
	}
}

// TestLoadDefinitions_RejectsMissingID verifies a faction file without an id fails.
func TestLoadDefinitions_RejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	writeFactionFile(t, dir, "bad.yaml", "name: No ID\n")
	if _, err := faction.LoadDefinitions(dir); err == nil {
		t.Error("expected error for faction file without id, got nil")
	}
}

// TestLoadDefinitions_RejectsBadRelation verifies an invalid relation string fails at build.
func TestLoadDefinitions_RejectsBadRelation(t *testing.T) {
	dir := t.TempDir()
	writeFactionFile(t, dir, "a.yaml", `
id: a
name: A
relations:
  a: grumpy
`)
	defs, err := faction.LoadDefinitions(dir)
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}
	if _, err := faction.BuildMatrix(defs); err == nil {
		t.Error("expected error for relation value 'grumpy', got nil")
	}
}
