package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/skyos/hwinv/pkg/inventory"
)

const reportWidth = 80

var sectionRule = strings.Repeat("━", reportWidth)

// Report renders inv as a human-readable hardware report.
func Report(inv *inventory.Inventory, opts Options) string {
	opts = opts.withDefaults()
	var b strings.Builder

	b.WriteString("\n")
	writeBanner(&b, opts.Project+" Hardware Specification Report")

	writeSection(&b, "📍 Memory Layout")
	for _, r := range inv.SortedRegions() {
		b.WriteString(r.String())
		b.WriteString("\n")
	}

	writeSection(&b, "⚡ Interrupt Configuration")
	for _, irq := range inv.SortedInterrupts() {
		b.WriteString(irq.String())
		b.WriteString("\n")
	}

	writeSection(&b, "💡 Key Code Correspondence")
	writeCorrespondence(&b, inv)

	writeSection(&b, "🔍 Verification Commands")
	b.WriteString(verificationCommands)

	writeSection(&b, "📚 Reference Documents")
	b.WriteString(referenceDocuments)

	return b.String()
}

// writeBanner writes title centered in a double-line box.
func writeBanner(b *strings.Builder, title string) {
	pad := max(reportWidth-utf8.RuneCountInString(title), 0)
	left := pad / 2
	right := pad - left

	fmt.Fprintf(b, "╔%s╗\n", strings.Repeat("═", reportWidth))
	fmt.Fprintf(b, "║%s%s%s║\n", strings.Repeat(" ", left), title, strings.Repeat(" ", right))
	fmt.Fprintf(b, "╚%s╝\n", strings.Repeat("═", reportWidth))
}

func writeSection(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, sectionRule)
}

// writeCorrespondence shows where the UART and RAM addresses land in the
// firmware sources. Sections are omitted when the device is absent.
func writeCorrespondence(b *strings.Builder, inv *inventory.Inventory) {
	var uart, memory *inventory.MemoryRegion
	for i := range inv.Regions {
		r := &inv.Regions[i]
		if uart == nil && strings.Contains(strings.ToLower(r.Name), "pl011") {
			uart = r
		}
		if memory == nil && r.Name == PrimaryMemory {
			memory = r
		}
	}

	if uart != nil {
		b.WriteString("\nUART base address (kernel/main.c):\n")
		fmt.Fprintf(b, "    #define UART0_BASE      0x%08X    // source: device tree pl011@%x\n",
			uart.Base, uart.Base)
	}
	if memory != nil {
		b.WriteString("\nRAM origin (boot/boot.lds):\n")
		fmt.Fprintf(b, "    MEMORY { RAM (rwx) : ORIGIN = 0x%08X, LENGTH = %dM }\n",
			memory.Base, memory.Size/1024/1024)
	}
}

const verificationCommands = `1. Dump the device tree:
   qemu-system-arm -machine virt -cpu cortex-a15 -machine dumpdtb=virt.dtb

2. Convert it to text:
   dtc -I dtb -O dts virt.dtb > virt.dts

3. Inspect a device:
   grep -A 5 "pl011@" virt.dts      # UART
   grep -A 5 "memory@" virt.dts     # memory
   grep -A 5 "intc@" virt.dts       # interrupt controller

4. Query at runtime:
   (qemu) info mtree               # memory tree in the QEMU monitor
   (qemu) info qtree               # device tree
`

const referenceDocuments = `- QEMU ARM System Emulation: https://qemu.readthedocs.io/en/latest/system/arm/virt.html
- ARM PL011 UART TRM: ARM DDI 0183
- ARM GIC-400 TRM: ARM DDI 0471
- Device Tree Specification: https://www.devicetree.org/
`
