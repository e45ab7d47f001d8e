package inventory

import (
	"fmt"
	"strings"
)

// TriggerType is the electrical trigger of an interrupt line.
type TriggerType uint8

const (
	// TriggerEdge is an edge-triggered interrupt.
	TriggerEdge TriggerType = 0
	// TriggerLevel is a level-triggered interrupt.
	TriggerLevel TriggerType = 1
)

// String returns the trigger type name.
func (t TriggerType) String() string {
	switch t {
	case TriggerEdge:
		return "Edge"
	case TriggerLevel:
		return "Level"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TriggerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TriggerType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "edge":
		*t = TriggerEdge
	case "level":
		*t = TriggerLevel
	default:
		return fmt.Errorf("unknown trigger type: %s", text)
	}
	return nil
}

// MemoryRegion is a memory-mapped address range owned by one device node.
type MemoryRegion struct {
	Name        string `json:"name" yaml:"name" cbor:"1,keyasint"`
	Base        uint64 `json:"base" yaml:"base" cbor:"2,keyasint"`
	Size        uint64 `json:"size" yaml:"size" cbor:"3,keyasint"`
	Description string `json:"description" yaml:"description" cbor:"4,keyasint"`
}

// End returns the last address of the region. Size must be non-zero.
func (r MemoryRegion) End() uint64 {
	return r.Base + r.Size - 1
}

// Contains reports whether addr falls inside the region.
func (r MemoryRegion) Contains(addr uint64) bool {
	return r.Size > 0 && addr >= r.Base && addr-r.Base < r.Size
}

// String formats the region as a report line.
func (r MemoryRegion) String() string {
	return fmt.Sprintf("%s: 0x%08X - 0x%08X (%dKB) - %s",
		r.Name, r.Base, r.End(), r.Size/1024, r.Description)
}

// InterruptAssignment is a resolved interrupt line owned by one device node.
type InterruptAssignment struct {
	Device      string      `json:"device" yaml:"device" cbor:"1,keyasint"`
	IRQ         uint64      `json:"irq" yaml:"irq" cbor:"2,keyasint"`
	Trigger     TriggerType `json:"trigger" yaml:"trigger" cbor:"3,keyasint"`
	Description string      `json:"description" yaml:"description" cbor:"4,keyasint"`
}

// String formats the interrupt as a report line.
func (i InterruptAssignment) String() string {
	return fmt.Sprintf("IRQ %d: %s (%s) - %s", i.IRQ, i.Device, i.Trigger, i.Description)
}
