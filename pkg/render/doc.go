// Package render turns an inventory into text artifacts: a human-readable
// hardware report, a C header of address and IRQ constants, and the same
// constants as a Go source file.
//
// All renderers are pure functions of the inventory and their Options.
// Regions are emitted in ascending base address order and interrupts in
// ascending IRQ order, so identical inputs always render to identical bytes.
package render
