package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents a single scan or build decision.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the extraction run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Source is the input document name, if known.
	Source string `cbor:"4,keyasint,omitempty"`

	// Line is the 1-based source line the event refers to.
	Line int `cbor:"5,keyasint,omitempty"`

	// Node is the device node name.
	Node string `cbor:"6,keyasint,omitempty"`

	// Address is the node's unit address.
	Address uint64 `cbor:"7,keyasint,omitempty"`

	// Property is the property involved (reg, interrupts, compatible).
	Property string `cbor:"8,keyasint,omitempty"`

	// Message carries details such as a decode error.
	Message string `cbor:"9,keyasint,omitempty"`
}

// Kind classifies trace events.
type Kind uint8

const (
	// KindNodeOpened indicates a node header was recognized.
	KindNodeOpened Kind = 0
	// KindNodeClosed indicates a node closed with reg or interrupts captured.
	KindNodeClosed Kind = 1
	// KindNodeDropped indicates a node closed without reg or interrupts.
	KindNodeDropped Kind = 2
	// KindNodeDiscarded indicates an open node was replaced by a new header
	// before it was closed.
	KindNodeDiscarded Kind = 3
	// KindPropertySkipped indicates a property could not be decoded.
	KindPropertySkipped Kind = 4
	// KindRegionAdded indicates a memory region entered the inventory.
	KindRegionAdded Kind = 5
	// KindInterruptAdded indicates an interrupt entered the inventory.
	KindInterruptAdded Kind = 6
)

var kindNames = map[Kind]string{
	KindNodeOpened:      "NODE_OPENED",
	KindNodeClosed:      "NODE_CLOSED",
	KindNodeDropped:     "NODE_DROPPED",
	KindNodeDiscarded:   "NODE_DISCARDED",
	KindPropertySkipped: "PROPERTY_SKIPPED",
	KindRegionAdded:     "REGION_ADDED",
	KindInterruptAdded:  "INTERRUPT_ADDED",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseKind parses a kind name case-insensitively. Both "node_dropped" and
// "node-dropped" are accepted.
func ParseKind(s string) (Kind, error) {
	want := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for k, name := range kindNames {
		if name == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown event kind: %s", s)
}
