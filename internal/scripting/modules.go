package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules registers the engine.* Lua API into L:
//
//	engine.flag_actor(actor_id)    -- mark an actor as a lawbreaker
//	engine.unflag_actor(actor_id)  -- clear the lawbreaker mark
//	engine.is_flagged(actor_id)    -- returns true/false, nil if unknown
//	engine.actor(actor_id)         -- returns an info table, nil if unknown
//	engine.log(msg)                -- structured info log
//
// Every function is a no-op returning nil while its callback is uninjected,
// so scripts load and run in tests without a live registry.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()

	L.SetField(engine, "flag_actor", L.NewFunction(func(L *lua.LState) int {
		m.setFlag(L, true)
		return 0
	}))
	L.SetField(engine, "unflag_actor", L.NewFunction(func(L *lua.LState) int {
		m.setFlag(L, false)
		return 0
	}))

	L.SetField(engine, "is_flagged", L.NewFunction(func(L *lua.LState) int {
		actorID := L.CheckString(1)
		if m.GetActor == nil {
			L.Push(lua.LNil)
			return 1
		}
		info := m.GetActor(actorID)
		if info == nil {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LBool(info.Flagged))
		return 1
	}))

	L.SetField(engine, "actor", L.NewFunction(func(L *lua.LState) int {
		actorID := L.CheckString(1)
		if m.GetActor == nil {
			L.Push(lua.LNil)
			return 1
		}
		info := m.GetActor(actorID)
		if info == nil {
			L.Push(lua.LNil)
			return 1
		}
		t := L.NewTable()
		L.SetField(t, "id", lua.LString(info.ID))
		L.SetField(t, "name", lua.LString(info.Name))
		L.SetField(t, "kind", lua.LString(info.Kind))
		L.SetField(t, "faction", lua.LString(info.Faction))
		L.SetField(t, "hp", lua.LNumber(info.HP))
		L.SetField(t, "max_hp", lua.LNumber(info.MaxHP))
		L.SetField(t, "flagged", lua.LBool(info.Flagged))
		L.SetField(t, "region", lua.LString(info.RegionID))
		L.Push(t)
		return 1
	}))

	L.SetField(engine, "log", L.NewFunction(func(L *lua.LState) int {
		msg := L.CheckString(1)
		m.logger.Info("scripting: "+msg, zap.String("source", "lua"))
		return 0
	}))

	L.SetGlobal("engine", engine)
}

func (m *Manager) setFlag(L *lua.LState, flagged bool) {
	actorID := L.CheckString(1)
	if m.FlagActor == nil {
		return
	}
	if err := m.FlagActor(actorID, flagged); err != nil {
		m.logger.Warn("scripting: flag_actor failed",
			zap.String("actor", actorID),
			zap.Bool("flagged", flagged),
			zap.Error(err),
		)
	}
}
