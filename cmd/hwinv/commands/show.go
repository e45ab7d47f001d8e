package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skyos/hwinv/pkg/inventory"
	"github.com/skyos/hwinv/pkg/log"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Format     string // text, json, yaml, cbor
	Output     string // Empty means stdout
	ConfigFile string
	Input      string
}

// ShowOutput is the inventory as presented by the json and yaml formats.
type ShowOutput struct {
	Source     string                          `json:"source,omitempty" yaml:"source,omitempty"`
	Regions    []inventory.MemoryRegion        `json:"regions" yaml:"regions"`
	Interrupts []inventory.InterruptAssignment `json:"interrupts" yaml:"interrupts"`
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printShowUsage(stdout)
		return exitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printShowUsage(stderr)
		return exitCommandError
	}

	cfg, err := LoadConfig(opts.ConfigFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInputError
	}

	session := log.NewSession(nil, opts.Input)
	inv, code := loadInventory(opts.Input, cfg, session, stderr)
	if code != exitSuccess {
		return code
	}

	if opts.Output == "" || opts.Output == "-" {
		return writeShow(stdout, inv, opts, session.RunID(), stderr)
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return exitCommandError
	}
	code = writeShow(f, inv, opts, session.RunID(), stderr)
	if err := f.Close(); err != nil && code == exitSuccess {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return exitCommandError
	}
	return code
}

func writeShow(out io.Writer, inv *inventory.Inventory, opts ShowOptions, runID string, stderr io.Writer) int {
	var err error
	switch opts.Format {
	case "json":
		var data []byte
		if data, err = json.MarshalIndent(buildShowOutput(inv, opts.Input), "", "  "); err == nil {
			_, err = fmt.Fprintln(out, string(data))
		}
	case "yaml":
		var data []byte
		if data, err = yaml.Marshal(buildShowOutput(inv, opts.Input)); err == nil {
			_, err = out.Write(data)
		}
	case "cbor":
		snap := inventory.Snapshot{Source: opts.Input, RunID: runID, Inventory: inv}
		err = inventory.WriteSnapshot(out, snap)
	default:
		printShowText(out, inv)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return exitCommandError
	}

	return exitSuccess
}

func buildShowOutput(inv *inventory.Inventory, source string) ShowOutput {
	return ShowOutput{
		Source:     source,
		Regions:    inv.SortedRegions(),
		Interrupts: inv.SortedInterrupts(),
	}
}

func printShowText(w io.Writer, inv *inventory.Inventory) {
	regions := inv.SortedRegions()
	fmt.Fprintf(w, "Memory regions (%d):\n", len(regions))
	for _, r := range regions {
		fmt.Fprintf(w, "  %s\n", r)
	}

	irqs := inv.SortedInterrupts()
	fmt.Fprintf(w, "\nInterrupts (%d):\n", len(irqs))
	for _, irq := range irqs {
		fmt.Fprintf(w, "  %s\n", irq)
	}
}

func parseShowArgs(args []string) (ShowOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ShowOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml, cbor)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")
	fs.StringVar(&opts.Output, "o", "", "Output file")
	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file (YAML)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.Format {
	case "text", "json", "yaml", "cbor":
	default:
		return opts, fmt.Errorf("unknown format: %s", opts.Format)
	}

	input, err := inputPath(fs.Args())
	if err != nil {
		return opts, err
	}
	opts.Input = input

	return opts, nil
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: hwinv show [options] [file.dts|file.hinv]

Options:
  -f, -format     Output format (text, json, yaml, cbor) [default: text]
  -o <file>       Write to a file instead of stdout
  -config <file>  Configuration file (YAML)

The cbor format writes an inventory snapshot. Snapshot files (.hinv) are
accepted as input by show, lookup and shell.

Examples:
  hwinv show virt.dts
  hwinv show -format json virt.dts
  hwinv show -format cbor -o virt.hinv virt.dts`)
}
