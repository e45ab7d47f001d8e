package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0x09000000", 0x09000000},
		{"0X9000000", 0x9000000},
		{"9000000", 0x9000000},
		{"0x40_0000_0000", 0x4000000000},
		{"ffffffffffffffff", 0xffffffffffffffff},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAddress(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAddressErrors(t *testing.T) {
	for _, in := range []string{"", "0x", "uart", "0x1g", "10000000000000000"} {
		_, err := ParseAddress(in)
		assert.Error(t, err, "input %q", in)
	}
}
