// Package faction provides the baseline relation matrix between factions and
// the relation service that applies controller inheritance and law-enforcement
// overrides on top of it.
package faction

import "fmt"

// Relation is the baseline social standing between two factions.
type Relation int

const (
	Friendly Relation = iota
	Neutral
	Hostile
)

// String returns a human-readable relation label.
func (r Relation) String() string {
	switch r {
	case Friendly:
		return "friendly"
	case Neutral:
		return "neutral"
	case Hostile:
		return "hostile"
	default:
		return "unknown"
	}
}

// ParseRelation converts a content-file relation string to a Relation.
//
// Postcondition: Returns an error for any value outside [friendly, neutral, hostile].
func ParseRelation(s string) (Relation, error) {
	switch s {
	case "friendly":
		return Friendly, nil
	case "neutral":
		return Neutral, nil
	case "hostile":
		return Hostile, nil
	default:
		return Neutral, fmt.Errorf("unknown relation %q", s)
	}
}

type pairKey struct {
	viewer string
	target string
}

// Matrix is the immutable baseline relation table keyed by (viewer, target)
// faction pair. It is loaded once and read-only for the process lifetime.
type Matrix struct {
	relations map[pairKey]Relation
	enforcers map[string]bool
}

// Entry is one (viewer, target) → relation row used to build a Matrix.
type Entry struct {
	Viewer   string
	Target   string
	Relation Relation
}

// NewMatrix builds an immutable Matrix from entries. enforcers lists the
// faction IDs that enforce the law (treat flagged actors as hostile).
//
// Postcondition: Returns a non-nil Matrix; later mutation of the inputs does
// not affect it.
func NewMatrix(entries []Entry, enforcers []string) *Matrix {
	m := &Matrix{
		relations: make(map[pairKey]Relation, len(entries)),
		enforcers: make(map[string]bool, len(enforcers)),
	}
	for _, e := range entries {
		m.relations[pairKey{viewer: e.Viewer, target: e.Target}] = e.Relation
	}
	for _, id := range enforcers {
		m.enforcers[id] = true
	}
	return m
}

// Relation returns the baseline relation from viewer's faction toward
// target's faction. The same faction is Friendly unless the matrix says
// otherwise; an unlisted pair is Neutral.
//
// Postcondition: Returns one of Friendly, Neutral, Hostile.
func (m *Matrix) Relation(viewerFaction, targetFaction string) Relation {
	if rel, ok := m.relations[pairKey{viewer: viewerFaction, target: targetFaction}]; ok {
		return rel
	}
	if viewerFaction == targetFaction {
		return Friendly
	}
	return Neutral
}

// EnforcesLaw reports whether the faction treats flagged actors as hostile.
func (m *Matrix) EnforcesLaw(factionID string) bool {
	return m.enforcers[factionID]
}

// Size returns the number of explicit relation rows.
func (m *Matrix) Size() int {
	return len(m.relations)
}
