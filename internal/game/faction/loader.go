package faction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is one faction content file.
//
// Precondition: ID and Name must be non-empty after loading.
type Definition struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	EnforcesLaw bool              `yaml:"enforces_law"`
	Relations   map[string]string `yaml:"relations"`
}

// LoadDefinitions reads all .yaml files in dir and parses each as a Definition.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed definitions (may be empty slice) or a non-nil error.
func LoadDefinitions(dir string) ([]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading faction dir %q: %w", dir, err)
	}
	defs := make([]*Definition, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var def Definition
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parsing faction file %s: %w", path, err)
		}
		if def.ID == "" {
			return nil, fmt.Errorf("faction file %s: id must not be empty", path)
		}
		if def.Name == "" {
			return nil, fmt.Errorf("faction %q: name must not be empty", def.ID)
		}
		defs = append(defs, &def)
	}
	return defs, nil
}

// BuildMatrix assembles an immutable Matrix from loaded definitions.
// Relations naming unknown factions are rejected so a typo in content fails
// at startup instead of silently defaulting to Neutral.
//
// Postcondition: Returns a non-nil Matrix or a non-nil error.
func BuildMatrix(defs []*Definition) (*Matrix, error) {
	known := make(map[string]bool, len(defs))
	for _, d := range defs {
		if known[d.ID] {
			return nil, fmt.Errorf("duplicate faction id %q", d.ID)
		}
		known[d.ID] = true
	}

	var rows []Entry
	var enforcers []string
	for _, d := range defs {
		if d.EnforcesLaw {
			enforcers = append(enforcers, d.ID)
		}
		for targetID, relStr := range d.Relations {
			if !known[targetID] {
				return nil, fmt.Errorf("faction %q: relation targets unknown faction %q", d.ID, targetID)
			}
			rel, err := ParseRelation(relStr)
			if err != nil {
				return nil, fmt.Errorf("faction %q: relation to %q: %w", d.ID, targetID, err)
			}
			rows = append(rows, Entry{Viewer: d.ID, Target: targetID, Relation: rel})
		}
	}
	return NewMatrix(rows, enforcers), nil
}
