package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// regionFile is the YAML shape of one region content file.
type regionFile struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Context string   `yaml:"context"`
	Flags   []string `yaml:"flags"`
}

// parseFlags converts a content-file flag list to a Flags bitset.
func parseFlags(names []string) (Flags, error) {
	var f Flags
	for _, n := range names {
		switch n {
		case "combat":
			f |= AllowCombat
		case "damage":
			f |= AllowDamage
		case "pvp":
			f |= AllowPvP
		case "hostiles":
			f |= AllowHostiles
		default:
			return 0, fmt.Errorf("unknown permission flag %q", n)
		}
	}
	return f, nil
}

// LoadSnapshots reads all .yaml files in dir and parses each as a region rule
// Snapshot. A region file may omit flags to take the context defaults.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed snapshots (may be empty slice) or a non-nil error.
func LoadSnapshots(dir string) ([]Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading region dir %q: %w", dir, err)
	}
	snaps := make([]Snapshot, 0, len(entries))
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
		var rf regionFile
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("parsing region file %s: %w", path, err)
		}
		if rf.ID == "" {
			return nil, fmt.Errorf("region file %s: id must not be empty", path)
		}
		ctx, err := ParseContext(rf.Context)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", rf.ID, err)
		}
		flags := ctx.DefaultFlags()
		if rf.Flags != nil {
			flags, err = parseFlags(rf.Flags)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", rf.ID, err)
			}
		}
		snaps = append(snaps, Snapshot{RegionID: rf.ID, Context: ctx, Flags: flags})
	}
	return snaps, nil
}
