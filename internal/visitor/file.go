package visitor

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk shape of a roster seed file.
type rosterFile struct {
	Visitors []rosterEntry `yaml:"visitors"`
}

type rosterEntry struct {
	Name   string `yaml:"name"`
	Action string `yaml:"action"`
	Note   string `yaml:"note,omitempty"`
	Age    int    `yaml:"age"`
}

// LoadRoster reads a YAML roster seed file. The file is only read; the
// roster built from it lives for one session.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster builds a roster from YAML seed data.
func ParseRoster(data []byte) (*Roster, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}

	r := NewRoster()
	for i, e := range f.Visitors {
		if NormalizeName(e.Name) == "" {
			return nil, fmt.Errorf("roster entry %d: name is required", i)
		}
		if e.Age < math.MinInt8 || e.Age > math.MaxInt8 {
			return nil, fmt.Errorf("roster entry %d (%s): age %d out of range", i, e.Name, e.Age)
		}
		action, err := ParseAction(e.Action, e.Note)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d (%s): %w", i, e.Name, err)
		}
		r.Add(New(NormalizeName(e.Name), action, int8(e.Age)))
	}

	return r, nil
}
