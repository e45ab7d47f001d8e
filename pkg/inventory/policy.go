package inventory

import (
	"fmt"
	"sort"
)

// SPIOffset is added to the raw number of shared peripheral interrupts.
const SPIOffset = 32

// TriggerPolicy derives the trigger type from the flags cell of an
// interrupts specifier.
type TriggerPolicy func(flags uint32) TriggerType

// TriggerFromBit2 reports Level when bit 2 (IRQ_TYPE_LEVEL_HIGH) is set and
// Edge otherwise. This is the default policy.
func TriggerFromBit2(flags uint32) TriggerType {
	if flags&0x4 != 0 {
		return TriggerLevel
	}
	return TriggerEdge
}

// TriggerFromBit0 reports Edge when bit 0 (IRQ_TYPE_EDGE_RISING) is set and
// Level otherwise.
func TriggerFromBit0(flags uint32) TriggerType {
	if flags&0x1 != 0 {
		return TriggerEdge
	}
	return TriggerLevel
}

// Policy names accepted by PolicyByName.
const (
	PolicyLevelBit2 = "level-bit2"
	PolicyEdgeBit0  = "edge-bit0"
)

var policies = map[string]TriggerPolicy{
	PolicyLevelBit2: TriggerFromBit2,
	PolicyEdgeBit0:  TriggerFromBit0,
}

// PolicyByName returns the named trigger policy. An empty name selects the
// default, TriggerFromBit2.
func PolicyByName(name string) (TriggerPolicy, error) {
	if name == "" {
		return TriggerFromBit2, nil
	}
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("unknown trigger policy %q (use %s or %s)", name, PolicyLevelBit2, PolicyEdgeBit0)
	}
	return p, nil
}

// PolicyNames returns the accepted policy names, sorted.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
