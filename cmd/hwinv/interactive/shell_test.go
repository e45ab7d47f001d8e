package interactive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyos/hwinv/pkg/inventory"
	"github.com/skyos/hwinv/pkg/render"
)

func newTestShell() (*Shell, *bytes.Buffer) {
	inv := &inventory.Inventory{
		Regions: []inventory.MemoryRegion{
			{Name: "memory", Base: 0x40000000, Size: 0x8000000, Description: "Main memory (RAM)"},
			{Name: "pl011", Base: 0x09000000, Size: 0x1000, Description: "ARM PL011 UART controller"},
			{Name: "shadow", Base: 0x09000800, Size: 0x1000, Description: "Unknown device (shadow)"},
		},
		Interrupts: []inventory.InterruptAssignment{
			{Device: "pl011", IRQ: 33, Trigger: inventory.TriggerLevel, Description: "ARM PL011 UART controller"},
			{Device: "timer", IRQ: 13, Trigger: inventory.TriggerLevel, Description: "ARM generic timer"},
		},
	}
	out := &bytes.Buffer{}
	return New(inv, "virt.dts", render.DefaultOptions(), out), out
}

func TestExecuteRegions(t *testing.T) {
	s, out := newTestShell()
	assert.True(t, s.Execute("regions"))

	assert.Contains(t, out.String(), "pl011: 0x09000000 - 0x09000FFF (4KB)")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("pl011:")), bytes.Index(out.Bytes(), []byte("memory:")))
}

func TestExecuteIRQs(t *testing.T) {
	s, out := newTestShell()
	s.Execute("IRQS")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("IRQ 13")), bytes.Index(out.Bytes(), []byte("IRQ 33")))
}

func TestExecuteLookup(t *testing.T) {
	s, out := newTestShell()
	s.Execute("lookup 0x09000900")
	assert.Contains(t, out.String(), "0x09000900: pl011 (offset 0x900)")
	assert.Contains(t, out.String(), "0x09000900: shadow (offset 0x100)")

	out.Reset()
	s.Execute("lookup 0x1")
	assert.Contains(t, out.String(), "no region")

	out.Reset()
	s.Execute("lookup")
	assert.Contains(t, out.String(), "Usage: lookup <address>")

	out.Reset()
	s.Execute("lookup zz")
	assert.Contains(t, out.String(), "invalid address")
}

func TestExecuteDevice(t *testing.T) {
	s, out := newTestShell()
	s.Execute("device pl011")
	assert.Contains(t, out.String(), "Description: ARM PL011 UART controller")
	assert.Contains(t, out.String(), "Region:      0x09000000 - 0x09000FFF (4096 bytes)")
	assert.Contains(t, out.String(), "IRQ:         33 (Level)")

	out.Reset()
	s.Execute("device timer")
	assert.Contains(t, out.String(), "Description: ARM generic timer")
	assert.NotContains(t, out.String(), "Region:")

	out.Reset()
	s.Execute("d missing")
	assert.Contains(t, out.String(), "Unknown device: missing")
}

func TestExecuteOverlaps(t *testing.T) {
	s, out := newTestShell()
	s.Execute("overlaps")
	assert.Contains(t, out.String(), "pl011 [0x09000000-0x09000FFF] overlaps shadow [0x09000800-0x090017FF]")
}

func TestExecuteRenderers(t *testing.T) {
	s, out := newTestShell()
	s.Execute("header")
	assert.Contains(t, out.String(), "#define PL011_BASE")

	out.Reset()
	s.Execute("report")
	assert.Contains(t, out.String(), "SkyOS Hardware Specification Report")
}

func TestExecuteQuitAndUnknown(t *testing.T) {
	s, out := newTestShell()
	assert.True(t, s.Execute("   "))
	assert.True(t, s.Execute("frobnicate"))
	assert.Contains(t, out.String(), "Unknown command: frobnicate")

	assert.False(t, s.Execute("quit"))
	assert.False(t, s.Execute("exit"))
}

func TestExecuteEmptyInventory(t *testing.T) {
	out := &bytes.Buffer{}
	s := New(inventory.New(), "empty.dts", render.DefaultOptions(), out)
	s.Execute("regions")
	s.Execute("irqs")
	s.Execute("overlaps")
	assert.Contains(t, out.String(), "No memory regions")
	assert.Contains(t, out.String(), "No interrupts")
	assert.Contains(t, out.String(), "No overlapping regions")
}
