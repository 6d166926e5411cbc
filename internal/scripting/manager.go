package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// globalRegionID is the reserved key for shared scripts loaded via
// LoadGlobal. CallHook falls back to this VM when no region VM is found.
const globalRegionID = "__global__"

// HookRegionEnter is called when an actor enters a region:
// on_region_enter(actor_id, region_id).
const HookRegionEnter = "on_region_enter"

// ActorInfo is a snapshot of an actor's state passed to Lua callbacks.
type ActorInfo struct {
	ID       string
	Name     string
	Kind     string
	Faction  string
	HP       int
	MaxHP    int
	Flagged  bool
	RegionID string
}

// Manager owns one sandboxed LState per region and exposes hook dispatch.
// Region scripts shape the social rules at the edges: flagging an actor as a
// criminal on entering guarded territory, pardoning them in a sanctuary.
//
// Manager is safe for concurrent CallHook after all LoadRegion calls
// complete. Each region's LState is single-threaded; the read lock
// serializes concurrent calls to the same region while allowing different
// regions to run concurrently.
type Manager struct {
	mu      sync.RWMutex
	states  map[string]*lua.LState
	cancels map[string]func()
	logger  *zap.Logger

	// Injected after construction. nil = no-op in engine.* modules.
	GetActor  func(actorID string) *ActorInfo
	FlagActor func(actorID string, flagged bool) error
}

// NewManager creates a Manager.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a non-nil Manager with an empty region map.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		states:  make(map[string]*lua.LState),
		cancels: make(map[string]func()),
		logger:  logger,
	}
}

// LoadRegion creates a sandboxed VM for regionID, registers all engine.*
// modules, then executes every *.lua file in scriptDir in lexicographic order.
//
// Precondition: regionID must be non-empty; scriptDir must be a readable directory.
// Postcondition: Region VM is registered; returns error on Lua load failure.
func (m *Manager) LoadRegion(regionID, scriptDir string, instLimit int) error {
	return m.loadInto(regionID, scriptDir, instLimit)
}

// LoadGlobal creates the "__global__" VM for shared scripts accessible as a
// CallHook fallback from any region.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: Global VM is registered; returns error on Lua load failure.
func (m *Manager) LoadGlobal(scriptDir string, instLimit int) error {
	return m.loadInto(globalRegionID, scriptDir, instLimit)
}

func (m *Manager) loadInto(key, scriptDir string, instLimit int) error {
	L, cancel := NewSandboxedState(instLimit)
	m.RegisterModules(L)

	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		cancel()
		L.Close()
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, key, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return fmt.Errorf("scripting: loading %q for %q: %w", path, key, err)
		}
	}

	m.mu.Lock()
	if old, ok := m.states[key]; ok {
		if oldCancel := m.cancels[key]; oldCancel != nil {
			oldCancel()
		}
		old.Close()
	}
	m.states[key] = L
	m.cancels[key] = cancel
	m.mu.Unlock()
	return nil
}

// Close releases every VM. Further CallHook calls are no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, L := range m.states {
		if cancel := m.cancels[key]; cancel != nil {
			cancel()
		}
		L.Close()
		delete(m.states, key)
		delete(m.cancels, key)
	}
}

// CallHook calls the named Lua global function in regionID's VM. If the
// region has no VM, the __global__ VM is tried as a fallback. Returns
// (LNil, nil) if the hook is not defined or no VM exists. Lua runtime errors
// are logged at Warn level and never propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(regionID, hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.RLock()
	L, ok := m.states[regionID]
	if !ok {
		L = m.states[globalRegionID]
	}
	m.mu.RUnlock()

	if L == nil {
		m.logger.Debug("scripting: no VM for region",
			zap.String("region", regionID),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}

	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("region", regionID),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// OnRegionEnter dispatches the on_region_enter hook for an actor arriving in
// a region.
func (m *Manager) OnRegionEnter(actorID, regionID string) {
	_, _ = m.CallHook(regionID, HookRegionEnter, lua.LString(actorID), lua.LString(regionID))
}
