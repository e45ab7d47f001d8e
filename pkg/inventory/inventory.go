package inventory

import (
	"cmp"
	"slices"
)

// Inventory holds the memory regions and interrupts of one device tree in
// the order their nodes closed. It is append-only while being built and
// read-only afterwards.
type Inventory struct {
	Regions    []MemoryRegion        `json:"regions" yaml:"regions" cbor:"1,keyasint"`
	Interrupts []InterruptAssignment `json:"interrupts" yaml:"interrupts" cbor:"2,keyasint"`
}

// New returns an empty Inventory.
func New() *Inventory {
	return &Inventory{
		Regions:    []MemoryRegion{},
		Interrupts: []InterruptAssignment{},
	}
}

// SortedRegions returns a copy of the regions in ascending base address
// order. Regions with equal bases keep their insertion order.
func (inv *Inventory) SortedRegions() []MemoryRegion {
	out := slices.Clone(inv.Regions)
	slices.SortStableFunc(out, func(a, b MemoryRegion) int {
		return cmp.Compare(a.Base, b.Base)
	})
	return out
}

// SortedInterrupts returns a copy of the interrupts in ascending IRQ order.
// Interrupts with equal numbers keep their insertion order.
func (inv *Inventory) SortedInterrupts() []InterruptAssignment {
	out := slices.Clone(inv.Interrupts)
	slices.SortStableFunc(out, func(a, b InterruptAssignment) int {
		return cmp.Compare(a.IRQ, b.IRQ)
	})
	return out
}

// RegionByName returns the first region owned by the named device.
func (inv *Inventory) RegionByName(name string) (MemoryRegion, bool) {
	for _, r := range inv.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return MemoryRegion{}, false
}

// InterruptsFor returns the interrupts owned by the named device.
func (inv *Inventory) InterruptsFor(device string) []InterruptAssignment {
	var out []InterruptAssignment
	for _, irq := range inv.Interrupts {
		if irq.Device == device {
			out = append(out, irq)
		}
	}
	return out
}

// RegionsContaining returns the regions, in address order, whose range
// includes addr.
func (inv *Inventory) RegionsContaining(addr uint64) []MemoryRegion {
	var out []MemoryRegion
	for _, r := range inv.SortedRegions() {
		if r.Contains(addr) {
			out = append(out, r)
		}
	}
	return out
}

// Overlap is a pair of regions whose address ranges intersect.
type Overlap struct {
	First  MemoryRegion
	Second MemoryRegion
}

// Overlaps returns every pair of intersecting regions in address order.
// Zero-sized regions never overlap.
func (inv *Inventory) Overlaps() []Overlap {
	sorted := inv.SortedRegions()
	var out []Overlap
	for i, a := range sorted {
		if a.Size == 0 {
			continue
		}
		for _, b := range sorted[i+1:] {
			if b.Size == 0 {
				continue
			}
			if b.Base > a.End() {
				break
			}
			out = append(out, Overlap{First: a, Second: b})
		}
	}
	return out
}
