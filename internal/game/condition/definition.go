// Package condition tracks status conditions on actors and answers the one
// question the legality chain asks of it: does an active condition block a
// given action kind (stun, paralyze, silence, disarm).
package condition

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Well-known action kind strings checked against BlockActions.
const (
	ActionAttack   = "attack"
	ActionCast     = "cast"
	ActionInteract = "interact"
	ActionMove     = "move"
)

// Def is the static definition of a condition, loaded from YAML.
type Def struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Duration is "timed" (expires at an absolute instant) or "permanent".
	Duration string `yaml:"duration"`
	// MaxStacks caps stacking; 0 = unstackable.
	MaxStacks int `yaml:"max_stacks"`
	// BlockActions lists the action kinds this condition blocks while active.
	BlockActions []string `yaml:"block_actions"`
}

// Blocks reports whether this condition blocks the given action kind.
func (d *Def) Blocks(action string) bool {
	for _, a := range d.BlockActions {
		if a == action {
			return true
		}
	}
	return false
}

// Registry holds all known Defs keyed by ID.
type Registry struct {
	defs map[string]*Def
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Def)}
}

// Register adds def to the registry, overwriting any existing entry with the same ID.
// Precondition: def must not be nil and def.ID must not be empty.
func (r *Registry) Register(def *Def) {
	r.defs[def.ID] = def
}

// Get returns the Def for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*Def, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns a snapshot slice of all registered Defs.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	return out
}

// LoadDirectory reads every *.yaml file in dir, parses each as a Def,
// and returns a populated Registry.
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to parse.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading condition dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if def.ID == "" {
			return nil, fmt.Errorf("condition file %q: id must not be empty", path)
		}
		reg.Register(&def)
	}
	return reg, nil
}
