package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/skyos/hwinv/pkg/inventory"
)

// RunLookup runs the lookup command: it reports which regions contain an
// address and which interrupts those devices own.
func RunLookup(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFile := fs.String("config", "", "Configuration file (YAML)")
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printLookupUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: no address specified")
		printLookupUsage(stderr)
		return exitCommandError
	}

	addr, err := inventory.ParseAddress(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	input, err := inputPath(fs.Args()[1:])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInputError
	}

	inv, code := loadInventory(input, cfg, nil, stderr)
	if code != exitSuccess {
		return code
	}

	regions := inv.RegionsContaining(addr)
	if len(regions) == 0 {
		fmt.Fprintf(stdout, "0x%08X: no region\n", addr)
		return exitInputError
	}

	for _, r := range regions {
		fmt.Fprintf(stdout, "0x%08X: %s (offset 0x%X)\n", addr, r, addr-r.Base)
		for _, irq := range inv.InterruptsFor(r.Name) {
			fmt.Fprintf(stdout, "  %s\n", irq)
		}
	}
	return exitSuccess
}

func printLookupUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: hwinv lookup [options] <address> [file.dts|file.hinv]

Options:
  -config <file>  Configuration file (YAML)

Exits with status 2 when no region contains the address.

Examples:
  hwinv lookup 0x09000000
  hwinv lookup 0x0a000e00 virt.dts`)
}
