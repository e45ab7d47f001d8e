package render

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/skyos/hwinv/pkg/inventory"
)

// GoConstants renders inv as a gofmt-formatted Go source file holding the
// same constants as Header.
//
// Unlike the C header, repeated device names get a numeric suffix
// (PL011, PL011_2, ...) so the file always compiles.
func GoConstants(inv *inventory.Inventory, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if !token.IsIdentifier(opts.GoPackage) {
		return nil, fmt.Errorf("invalid go package name: %q", opts.GoPackage)
	}
	data := buildConstants(inv, opts, goNames)

	var b strings.Builder
	renderTemplate(&b, "goConstants", data)

	formatted, err := imports.Process("", []byte(b.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

// goNames converts device names into unique Go identifier prefixes.
func goNames(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, n := range names {
		base := identifier(ConstName(n))
		if base == "" || (base[0] >= '0' && base[0] <= '9') {
			base = "DEV_" + base
		}
		name := base
		for suffix := 2; used[name]; suffix++ {
			name = fmt.Sprintf("%s_%d", base, suffix)
		}
		used[name] = true
		out[i] = name
	}
	return out
}
