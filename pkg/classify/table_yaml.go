package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawTable is a classification table loaded from YAML.
//
//	devices:
//	  - { match: compatible, key: "arm,sp804", description: "ARM SP804 dual timer" }
//	  - { match: name, key: "watchdog", description: "Watchdog timer" }
type RawTable struct {
	Devices []Entry `yaml:"devices"`
}

// ParseTable parses and validates table entries from YAML bytes.
func ParseTable(data []byte) ([]Entry, error) {
	var table RawTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing device table: %w", err)
	}
	if err := Validate(table.Devices); err != nil {
		return nil, err
	}
	return table.Devices, nil
}

// LoadTable loads and parses table entries from a file.
func LoadTable(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data)
}

// Validate checks that every entry has a known match kind, a key and a description.
func Validate(entries []Entry) error {
	for i, e := range entries {
		switch e.Match {
		case MatchCompatible, MatchName:
		default:
			return fmt.Errorf("device %d: unknown match kind %q (use compatible or name)", i, e.Match)
		}
		if e.Key == "" {
			return fmt.Errorf("device %d: missing key", i)
		}
		if e.Description == "" {
			return fmt.Errorf("device %d (%s): missing description", i, e.Key)
		}
	}
	return nil
}
