// Package scene provides the region-scoped rule gate: an immutable permission
// snapshot per region that overrides all other hostility computation.
package scene

import (
	"fmt"
	"strings"
)

// Flags is the immutable permission bitset carried by a Snapshot.
type Flags uint8

const (
	// AllowCombat permits any combat action in the region.
	AllowCombat Flags = 1 << iota
	// AllowDamage permits damage application in the region.
	AllowDamage
	// AllowPvP permits player-vs-player hostility in the region.
	AllowPvP
	// AllowHostiles permits hostile dispositions between actors in the region.
	AllowHostiles
)

// Has reports whether every flag in want is set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// String returns a stable comma-separated flag list, or "none".
func (f Flags) String() string {
	var parts []string
	if f.Has(AllowCombat) {
		parts = append(parts, "combat")
	}
	if f.Has(AllowDamage) {
		parts = append(parts, "damage")
	}
	if f.Has(AllowPvP) {
		parts = append(parts, "pvp")
	}
	if f.Has(AllowHostiles) {
		parts = append(parts, "hostiles")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// Context is the canonical region taxonomy. The content history carried both
// a three-context and a four-context naming; the four-context form is the one
// recognized here.
type Context int

const (
	// ContextSanctuary is a fully protected area: nothing hostile happens.
	ContextSanctuary Context = iota
	// ContextSettlement is a populated area: combat against non-players only.
	ContextSettlement
	// ContextWilds is open territory: full PvE, no PvP.
	ContextWilds
	// ContextArena is a designated battleground: everything goes.
	ContextArena
)

// String returns the content-file context name.
func (c Context) String() string {
	switch c {
	case ContextSanctuary:
		return "sanctuary"
	case ContextSettlement:
		return "settlement"
	case ContextWilds:
		return "wilds"
	case ContextArena:
		return "arena"
	default:
		return "unknown"
	}
}

// ParseContext converts a content-file context name to a Context.
func ParseContext(s string) (Context, error) {
	switch s {
	case "sanctuary":
		return ContextSanctuary, nil
	case "settlement":
		return ContextSettlement, nil
	case "wilds":
		return ContextWilds, nil
	case "arena":
		return ContextArena, nil
	default:
		return ContextSanctuary, fmt.Errorf("unknown region context %q", s)
	}
}

// DefaultFlags returns the permission set implied by a context when a region
// file does not list flags explicitly.
func (c Context) DefaultFlags() Flags {
	switch c {
	case ContextSettlement:
		return AllowCombat | AllowDamage
	case ContextWilds:
		return AllowCombat | AllowDamage | AllowHostiles
	case ContextArena:
		return AllowCombat | AllowDamage | AllowPvP | AllowHostiles
	default: // ContextSanctuary
		return 0
	}
}

// Snapshot is the immutable rule record for one region. It is replaced
// wholesale on region reload and never partially mutated.
type Snapshot struct {
	RegionID string
	Context  Context
	Flags    Flags
}

// Restrictive returns the maximally restrictive snapshot for regionID: all
// permissions cleared. It is the fallback for unknown or misconfigured regions.
func Restrictive(regionID string) Snapshot {
	return Snapshot{RegionID: regionID, Context: ContextSanctuary}
}

// AllowsCombat reports whether any combat action is permitted.
func (s Snapshot) AllowsCombat() bool { return s.Flags.Has(AllowCombat) }

// AllowsDamage reports whether damage application is permitted.
func (s Snapshot) AllowsDamage() bool { return s.Flags.Has(AllowDamage) }

// AllowsPvP reports whether player-vs-player hostility is permitted.
func (s Snapshot) AllowsPvP() bool { return s.Flags.Has(AllowPvP) }

// AllowsHostiles reports whether hostile dispositions are permitted.
func (s Snapshot) AllowsHostiles() bool { return s.Flags.Has(AllowHostiles) }
