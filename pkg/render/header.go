package render

import (
	"strings"

	"github.com/skyos/hwinv/pkg/inventory"
)

// Header renders inv as a C header of address and IRQ constants.
//
// Constant names are ConstName of the device name. Duplicate device names
// produce duplicate defines; the compiler reports them as redefinitions.
func Header(inv *inventory.Inventory, opts Options) string {
	opts = opts.withDefaults()
	data := buildConstants(inv, opts, cNames)

	var b strings.Builder
	renderTemplate(&b, "header", data)
	return b.String()
}

func cNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = ConstName(n)
	}
	return out
}
