package render

import (
	"github.com/skyos/hwinv/pkg/inventory"
)

func virtLikeInventory() *inventory.Inventory {
	return &inventory.Inventory{
		Regions: []inventory.MemoryRegion{
			{Name: "memory", Base: 0x40000000, Size: 0x10000000, Description: "Main memory (RAM)"},
			{Name: "pl011", Base: 0x09000000, Size: 0x1000, Description: "ARM PL011 UART controller"},
			{Name: "virtio_mmio", Base: 0x0a000000, Size: 0x200, Description: "VirtIO MMIO transport"},
		},
		Interrupts: []inventory.InterruptAssignment{
			{Device: "virtio_mmio", IRQ: 48, Trigger: inventory.TriggerEdge, Description: "VirtIO MMIO transport"},
			{Device: "pl011", IRQ: 33, Trigger: inventory.TriggerLevel, Description: "ARM PL011 UART controller"},
		},
	}
}
