package scripting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	lua "github.com/yuin/gopher-lua"
)

func TestSandboxStripsDangerousGlobals(t *testing.T) {
	L, cancel := NewSandboxedState(0)
	defer cancel()
	defer L.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "collectgarbage", "require"} {
		assert.Equal(t, lua.LNil, L.GetGlobal(name), "global %q should be stripped", name)
	}
	// Safe libraries stay available.
	assert.NotEqual(t, lua.LNil, L.GetGlobal("string"))
	assert.NotEqual(t, lua.LNil, L.GetGlobal("math"))
	assert.NotEqual(t, lua.LNil, L.GetGlobal("table"))
}

func TestSandboxTerminatesRunawayScript(t *testing.T) {
	L, cancel := NewSandboxedState(10_000)
	defer cancel()
	defer L.Close()

	err := L.DoString(`while true do end`)
	assert.Error(t, err)
}

func TestSandboxRunsBoundedScript(t *testing.T) {
	L, cancel := NewSandboxedState(0)
	defer cancel()
	defer L.Close()

	err := L.DoString(`
		total = 0
		for i = 1, 100 do total = total + i end
	`)
	assert.NoError(t, err)
	assert.Equal(t, lua.LNumber(5050), L.GetGlobal("total"))
}
