package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyos/hwinv/pkg/inventory"
)

func TestHeaderLayout(t *testing.T) {
	inv := &inventory.Inventory{
		Regions: []inventory.MemoryRegion{
			{Name: "memory", Base: 0x40000000, Size: 0x10000000, Description: "Main memory (RAM)"},
			{Name: "pl011", Base: 0x09000000, Size: 0x1000, Description: "ARM PL011 UART controller"},
		},
		Interrupts: []inventory.InterruptAssignment{
			{Device: "pl011", IRQ: 33, Trigger: inventory.TriggerLevel, Description: "ARM PL011 UART controller"},
		},
	}

	want := `/*
 * SkyOS hardware address definitions
 * Generated from device tree analysis
 * Do not edit this file by hand
 */

#ifndef _SKYOS_HARDWARE_H_
#define _SKYOS_HARDWARE_H_

#include <stdint.h>

/* Memory layout */
#define PL011_BASE        0x09000000    /* ARM PL011 UART controller */
#define PL011_SIZE        0x00001000    /* 4096 bytes */

#define MEMORY_BASE        0x40000000    /* Main memory (RAM) */

/* Interrupt numbers */
#define PL011_IRQ         33                /* ARM PL011 UART controller */

#endif /* _SKYOS_HARDWARE_H_ */
`
	assert.Equal(t, want, Header(inv, DefaultOptions()))
}

func TestHeaderNoMemorySize(t *testing.T) {
	inv := &inventory.Inventory{
		Regions: []inventory.MemoryRegion{
			{Name: "memory", Base: 0x40000000, Size: 0x10000000, Description: "Main memory (RAM)"},
		},
	}
	out := Header(inv, DefaultOptions())
	assert.Contains(t, out, "#define MEMORY_BASE        0x40000000")
	assert.NotContains(t, out, "MEMORY_SIZE")
}

func TestHeaderEmpty(t *testing.T) {
	out := Header(inventory.New(), DefaultOptions())
	assert.Contains(t, out, "/* Memory layout */\n/* Interrupt numbers */\n\n#endif")
	assert.NotContains(t, out, "#define _BASE")
}

func TestHeaderSortOrder(t *testing.T) {
	out := Header(virtLikeInventory(), DefaultOptions())

	pl011 := strings.Index(out, "PL011_BASE")
	virtio := strings.Index(out, "VIRTIO_MMIO_BASE")
	memory := strings.Index(out, "MEMORY_BASE")
	assert.True(t, pl011 < virtio && virtio < memory, "regions ascend by base address")

	assert.Less(t, strings.Index(out, "PL011_IRQ"), strings.Index(out, "VIRTIO_MMIO_IRQ"))
	assert.Contains(t, out, "#define VIRTIO_MMIO_IRQ         48")
}

func TestHeaderConstNames(t *testing.T) {
	inv := &inventory.Inventory{
		Regions: []inventory.MemoryRegion{{Name: "fw-cfg", Base: 0x09020000, Size: 0x18}},
	}
	assert.Contains(t, Header(inv, DefaultOptions()), "#define FW_CFG_BASE")
}

func TestHeaderOptions(t *testing.T) {
	out := Header(inventory.New(), Options{Project: "Nimbus OS"})
	assert.Contains(t, out, " * Nimbus OS hardware address definitions")
	assert.Contains(t, out, "#ifndef _NIMBUS_OS_HARDWARE_H_")

	out = Header(inventory.New(), Options{Guard: "BOARD_H"})
	assert.Contains(t, out, "#ifndef BOARD_H\n#define BOARD_H\n")
	assert.True(t, strings.HasSuffix(out, "#endif /* BOARD_H */\n"))
}

func TestHeaderEscapesComment(t *testing.T) {
	inv := &inventory.Inventory{
		Regions: []inventory.MemoryRegion{{Name: "odd", Base: 0x1000, Size: 0x10, Description: "Unknown device (a*/b)"}},
	}
	out := Header(inv, DefaultOptions())
	assert.Contains(t, out, "/* Unknown device (a* /b) */")
}

func TestHeaderDeterministic(t *testing.T) {
	inv := virtLikeInventory()
	assert.Equal(t, Header(inv, DefaultOptions()), Header(inv, DefaultOptions()))
}
