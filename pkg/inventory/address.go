package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAddress parses a hexadecimal address with or without 0x prefix.
// Underscores are accepted as digit separators.
func ParseAddress(s string) (uint64, error) {
	digits := strings.ReplaceAll(s, "_", "")
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	addr, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: expected hexadecimal", s)
	}
	return addr, nil
}
