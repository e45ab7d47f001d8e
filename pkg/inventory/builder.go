package inventory

import (
	"iter"

	"github.com/skyos/hwinv/pkg/classify"
	"github.com/skyos/hwinv/pkg/dts"
	"github.com/skyos/hwinv/pkg/log"
)

// Config configures a Builder.
type Config struct {
	// Classifier resolves device descriptions. Nil selects classify.Default().
	Classifier *classify.Classifier

	// Trigger derives the trigger type from interrupt flags.
	// Nil selects TriggerFromBit2.
	Trigger TriggerPolicy

	// Trace receives scan and build events. Nil disables tracing.
	Trace log.Logger
}

// DefaultConfig returns the configuration matching the QEMU virt tooling:
// the built-in device table and the bit 2 trigger policy.
func DefaultConfig() Config {
	return Config{
		Classifier: classify.Default(),
		Trigger:    TriggerFromBit2,
		Trace:      log.NoopLogger{},
	}
}

// Builder folds device nodes into an Inventory. Each node is handled on its
// own; a node with both reg and interrupts yields a region and an interrupt.
type Builder struct {
	classifier *classify.Classifier
	trigger    TriggerPolicy
	trace      log.Logger
}

// NewBuilder creates a Builder, filling unset Config fields with defaults.
func NewBuilder(cfg Config) *Builder {
	def := DefaultConfig()
	if cfg.Classifier == nil {
		cfg.Classifier = def.Classifier
	}
	if cfg.Trigger == nil {
		cfg.Trigger = def.Trigger
	}
	if cfg.Trace == nil {
		cfg.Trace = def.Trace
	}
	return &Builder{
		classifier: cfg.Classifier,
		trigger:    cfg.Trigger,
		trace:      cfg.Trace,
	}
}

// Build returns a new Inventory holding the entities of nodes.
func (b *Builder) Build(nodes iter.Seq[dts.Node]) *Inventory {
	inv := New()
	for node := range nodes {
		b.Add(inv, node)
	}
	return inv
}

// Add appends the entities of node to inv. Properties that fail to decode
// are skipped and reported to the trace.
func (b *Builder) Add(inv *Inventory, node dts.Node) {
	desc := b.classifier.Classify(node.Name, node.Compatible)

	if node.HasReg() {
		if reg, err := dts.DecodeReg(node.RegCells); err != nil {
			b.skipped(node, "reg", err)
		} else {
			region := MemoryRegion{
				Name:        node.Name,
				Base:        reg.Address,
				Size:        reg.Size,
				Description: desc,
			}
			inv.Regions = append(inv.Regions, region)
			b.trace.Log(log.Event{
				Kind:    log.KindRegionAdded,
				Line:    node.Line,
				Node:    node.Name,
				Address: node.UnitAddress,
				Message: region.String(),
			})
		}
	}

	if node.HasInterrupts() {
		if spec, err := dts.DecodeInterrupt(node.InterruptCells); err != nil {
			b.skipped(node, "interrupts", err)
		} else {
			irq := InterruptAssignment{
				Device:      node.Name,
				IRQ:         ResolveIRQ(spec),
				Trigger:     b.trigger(spec.Flags),
				Description: desc,
			}
			inv.Interrupts = append(inv.Interrupts, irq)
			b.trace.Log(log.Event{
				Kind:    log.KindInterruptAdded,
				Line:    node.Line,
				Node:    node.Name,
				Address: node.UnitAddress,
				Message: irq.String(),
			})
		}
	}
}

func (b *Builder) skipped(node dts.Node, property string, err error) {
	b.trace.Log(log.Event{
		Kind:     log.KindPropertySkipped,
		Line:     node.Line,
		Node:     node.Name,
		Address:  node.UnitAddress,
		Property: property,
		Message:  err.Error(),
	})
}

// ResolveIRQ returns the GIC interrupt ID of spec: SPIs are offset by 32,
// all other types keep their raw number.
func ResolveIRQ(spec dts.Interrupt) uint64 {
	if spec.Type == 0 {
		return uint64(spec.Number) + SPIOffset
	}
	return uint64(spec.Number)
}

// Extract scans text and builds its inventory in one pass.
func Extract(text string, cfg Config) *Inventory {
	b := NewBuilder(cfg)
	return b.Build(dts.NewScanner(b.trace).Nodes(text))
}
