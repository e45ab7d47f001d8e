// Package inventory folds scanned device-tree nodes into a hardware inventory
// of memory regions and interrupt assignments.
//
// # Interrupt resolution
//
// GIC interrupt specifiers are <type number flags>. SPIs (type 0) are
// numbered from 32 in the GIC interrupt ID space, so the builder resolves
// them to number+32; every other type keeps its raw number.
//
// Two historical tools disagreed on how the flags cell selects the trigger
// type. The Builder makes this an explicit TriggerPolicy: TriggerFromBit2
// (the default, following the device-tree IRQ_TYPE_LEVEL_HIGH = 4 binding)
// or TriggerFromBit0. The policies disagree on real inputs such as flags 0x4
// and 0x1, so pick one per run and do not mix them.
package inventory
