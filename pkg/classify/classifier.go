package classify

import (
	"fmt"
	"strings"
)

// MatchKind selects which node attribute an Entry is matched against.
type MatchKind string

const (
	// MatchCompatible matches Key as a substring of the compatible string.
	MatchCompatible MatchKind = "compatible"
	// MatchName matches Key as a substring of the node name.
	MatchName MatchKind = "name"
)

// Entry is one row of the classification table.
type Entry struct {
	Match       MatchKind `yaml:"match"`
	Key         string    `yaml:"key"`
	Description string    `yaml:"description"`
}

// Classifier resolves descriptions from an ordered table.
// A Classifier is immutable and safe for concurrent use.
type Classifier struct {
	compatible []Entry
	names      []Entry
}

// New creates a Classifier from entries, preserving their order.
// Entries with an unknown match kind or an empty key are ignored.
func New(entries []Entry) *Classifier {
	c := &Classifier{}
	c.add(entries)
	return c
}

// Default returns a Classifier over DefaultEntries.
func Default() *Classifier {
	return New(DefaultEntries())
}

func (c *Classifier) add(entries []Entry) {
	for _, e := range entries {
		if e.Key == "" {
			continue
		}
		e.Key = strings.ToLower(e.Key)
		switch e.Match {
		case MatchCompatible:
			c.compatible = append(c.compatible, e)
		case MatchName:
			c.names = append(c.names, e)
		}
	}
}

// With returns a new Classifier in which entries are tried before the
// receiver's entries of the same kind.
func (c *Classifier) With(entries ...Entry) *Classifier {
	out := New(entries)
	out.compatible = append(out.compatible, c.compatible...)
	out.names = append(out.names, c.names...)
	return out
}

// Len returns the number of table entries.
func (c *Classifier) Len() int {
	return len(c.compatible) + len(c.names)
}

// Classify returns the description for a node. compatible may be empty.
func (c *Classifier) Classify(name, compatible string) string {
	if desc, ok := c.Lookup(name, compatible); ok {
		return desc
	}
	if compatible != "" {
		return UnknownDescription(compatible)
	}
	return UnknownDescription(name)
}

// Lookup returns the description of the first matching entry, trying all
// compatible entries before any name entry.
func (c *Classifier) Lookup(name, compatible string) (string, bool) {
	if compatible != "" {
		lc := strings.ToLower(compatible)
		for _, e := range c.compatible {
			if strings.Contains(lc, e.Key) {
				return e.Description, true
			}
		}
	}

	ln := strings.ToLower(name)
	for _, e := range c.names {
		if strings.Contains(ln, e.Key) {
			return e.Description, true
		}
	}
	return "", false
}

// UnknownDescription is the description given to unrecognized devices.
func UnknownDescription(label string) string {
	return fmt.Sprintf("Unknown device (%s)", label)
}
