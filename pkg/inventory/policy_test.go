package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerPolicies(t *testing.T) {
	tests := []struct {
		flags      uint32
		bit2, bit0 TriggerType
	}{
		{0x0, TriggerEdge, TriggerLevel},
		{0x1, TriggerEdge, TriggerEdge},
		{0x4, TriggerLevel, TriggerLevel},
		{0x5, TriggerLevel, TriggerEdge},
		{0x104, TriggerLevel, TriggerLevel},
		{0xf01, TriggerEdge, TriggerEdge},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bit2, TriggerFromBit2(tt.flags), "bit2 flags %#x", tt.flags)
		assert.Equal(t, tt.bit0, TriggerFromBit0(tt.flags), "bit0 flags %#x", tt.flags)
	}
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, TriggerLevel, p(0x4))
	assert.Equal(t, TriggerEdge, p(0x1))

	p, err = PolicyByName(PolicyEdgeBit0)
	require.NoError(t, err)
	assert.Equal(t, TriggerEdge, p(0x1))
	assert.Equal(t, TriggerLevel, p(0x0))

	_, err = PolicyByName("bit7")
	assert.ErrorContains(t, err, "unknown trigger policy")
}

func TestPolicyNames(t *testing.T) {
	assert.Equal(t, []string{PolicyEdgeBit0, PolicyLevelBit2}, PolicyNames())
}
