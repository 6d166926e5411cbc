package scripting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

func newModuleTestManager(t *testing.T) (*Manager, *lua.LState) {
	t.Helper()
	m := NewManager(zap.NewNop())
	L, cancel := NewSandboxedState(0)
	t.Cleanup(func() {
		cancel()
		L.Close()
	})
	m.RegisterModules(L)
	return m, L
}

func TestEngineFlagActor(t *testing.T) {
	m, L := newModuleTestManager(t)

	flags := make(map[string]bool)
	m.FlagActor = func(actorID string, flagged bool) error {
		flags[actorID] = flagged
		return nil
	}

	require.NoError(t, L.DoString(`engine.flag_actor("p1")`))
	assert.True(t, flags["p1"])

	require.NoError(t, L.DoString(`engine.unflag_actor("p1")`))
	assert.False(t, flags["p1"])
}

func TestEngineFlagActorWithoutCallbackIsNoop(t *testing.T) {
	_, L := newModuleTestManager(t)
	assert.NoError(t, L.DoString(`engine.flag_actor("p1")`))
}

func TestEngineIsFlagged(t *testing.T) {
	m, L := newModuleTestManager(t)
	m.GetActor = func(actorID string) *ActorInfo {
		if actorID != "p1" {
			return nil
		}
		return &ActorInfo{ID: "p1", Flagged: true}
	}

	require.NoError(t, L.DoString(`known = engine.is_flagged("p1")`))
	assert.Equal(t, lua.LTrue, L.GetGlobal("known"))

	require.NoError(t, L.DoString(`unknown = engine.is_flagged("ghost")`))
	assert.Equal(t, lua.LNil, L.GetGlobal("unknown"))
}

func TestEngineActorTable(t *testing.T) {
	m, L := newModuleTestManager(t)
	m.GetActor = func(actorID string) *ActorInfo {
		return &ActorInfo{
			ID:       actorID,
			Name:     "Vex",
			Kind:     "player",
			Faction:  "crimson",
			HP:       7,
			MaxHP:    10,
			RegionID: "wilds-1",
		}
	}

	require.NoError(t, L.DoString(`
		a = engine.actor("p1")
		name = a.name
		hp = a.hp
		region = a.region
	`))
	assert.Equal(t, lua.LString("Vex"), L.GetGlobal("name"))
	assert.Equal(t, lua.LNumber(7), L.GetGlobal("hp"))
	assert.Equal(t, lua.LString("wilds-1"), L.GetGlobal("region"))
}

func TestEngineLog(t *testing.T) {
	_, L := newModuleTestManager(t)
	assert.NoError(t, L.DoString(`engine.log("entering town watch zone")`))
}

func TestEngineModulesSurviveFlagError(t *testing.T) {
	m, L := newModuleTestManager(t)
	m.FlagActor = func(actorID string, flagged bool) error {
		return assert.AnError
	}
	// Errors are logged, not raised into the script.
	assert.NoError(t, L.DoString(`engine.flag_actor("p1")`))
}
