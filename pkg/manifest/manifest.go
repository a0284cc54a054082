package manifest

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Entry is one generated extern recorded in the manifest.
type Entry struct {
	Type string `yaml:"type" json:"type"`
	Kind string `yaml:"kind" json:"kind"`
	File string `yaml:"file" json:"file"` // relative to the output root, slash separated
}

// Manifest tracks the externs written by the last generation run, so that a
// later run can tell stale files from hand-written ones.
type Manifest struct {
	Input     string  `yaml:"input,omitempty" json:"input,omitempty"`
	Extension string  `yaml:"extension,omitempty" json:"extension,omitempty"`
	Entries   []Entry `yaml:"entries" json:"entries"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "unmarshal manifest %s", path)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
// Entries are written sorted by file.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create manifest directory")
	}

	sort.Slice(m.Entries, func(i, j int) bool { return m.Entries[i].File < m.Entries[j].File })
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshal manifest")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write manifest %s", path)
	}

	return nil
}

// Record adds e, replacing an existing entry for the same file.
func (m *Manifest) Record(e Entry) {
	for i := range m.Entries {
		if m.Entries[i].File == e.File {
			m.Entries[i] = e
			return
		}
	}
	m.Entries = append(m.Entries, e)
}

// Lookup returns the entry recorded for file, if present.
func (m *Manifest) Lookup(file string) (Entry, bool) {
	for _, e := range m.Entries {
		if e.File == file {
			return e, true
		}
	}
	return Entry{}, false
}

// Stale returns the recorded files that are not in current, sorted.
func (m *Manifest) Stale(current []string) []string {
	keep := make(map[string]bool, len(current))
	for _, f := range current {
		keep[f] = true
	}
	var stale []string
	for _, e := range m.Entries {
		if !keep[e.File] {
			stale = append(stale, e.File)
		}
	}
	sort.Strings(stale)
	return stale
}
