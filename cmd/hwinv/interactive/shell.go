// Package interactive provides the interactive inventory browser of hwinv.
package interactive

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/skyos/hwinv/pkg/inventory"
	"github.com/skyos/hwinv/pkg/render"
)

// Shell browses one inventory from the command line.
type Shell struct {
	inv    *inventory.Inventory
	source string
	opts   render.Options
	out    io.Writer
}

// New creates a shell for inv. The shell writes to stdout until Run
// attaches a terminal.
func New(inv *inventory.Inventory, source string, opts render.Options, stdout io.Writer) *Shell {
	return &Shell{
		inv:    inv,
		source: source,
		opts:   opts,
		out:    stdout,
	}
}

// Run starts the interactive command loop. It returns when the user quits
// or input ends.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "hwinv> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()

	fmt.Fprintf(s.out, "Loaded %s: %d regions, %d interrupts\n",
		s.source, len(s.inv.Regions), len(s.inv.Interrupts))
	s.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		if !s.Execute(line) {
			return nil
		}
	}
}

// Execute runs one command line. It returns false when the shell should exit.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "regions", "r":
		s.cmdRegions()

	case "irqs", "i":
		s.cmdIRQs()

	case "lookup", "l":
		s.cmdLookup(args)

	case "device", "d":
		s.cmdDevice(args)

	case "overlaps", "o":
		s.cmdOverlaps()

	case "header":
		fmt.Fprint(s.out, render.Header(s.inv, s.opts))

	case "report":
		fmt.Fprintln(s.out, render.Report(s.inv, s.opts))

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
hwinv Commands:
  Inventory:
    regions            - List memory regions by base address
    irqs               - List interrupts by IRQ number
    overlaps           - List intersecting regions

  Queries:
    lookup <address>   - Find the regions containing an address (hex)
    device <name>      - Show the region and interrupts of a device

  Output:
    report             - Print the hardware report
    header             - Print the C header

  General:
    help               - Show this help
    quit               - Exit`)
}

func (s *Shell) cmdRegions() {
	regions := s.inv.SortedRegions()
	if len(regions) == 0 {
		fmt.Fprintln(s.out, "No memory regions")
		return
	}
	for _, r := range regions {
		fmt.Fprintf(s.out, "  %s\n", r)
	}
}

func (s *Shell) cmdIRQs() {
	irqs := s.inv.SortedInterrupts()
	if len(irqs) == 0 {
		fmt.Fprintln(s.out, "No interrupts")
		return
	}
	for _, irq := range irqs {
		fmt.Fprintf(s.out, "  %s\n", irq)
	}
}

func (s *Shell) cmdLookup(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: lookup <address>")
		return
	}
	addr, err := inventory.ParseAddress(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	regions := s.inv.RegionsContaining(addr)
	if len(regions) == 0 {
		fmt.Fprintf(s.out, "0x%08X: no region\n", addr)
		return
	}
	for _, r := range regions {
		fmt.Fprintf(s.out, "0x%08X: %s (offset 0x%X)\n", addr, r.Name, addr-r.Base)
	}
}

func (s *Shell) cmdDevice(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: device <name>")
		return
	}
	name := args[0]

	region, hasRegion := s.inv.RegionByName(name)
	irqs := s.inv.InterruptsFor(name)
	if !hasRegion && len(irqs) == 0 {
		fmt.Fprintf(s.out, "Unknown device: %s\n", name)
		return
	}

	fmt.Fprintf(s.out, "Device %s\n", name)
	if hasRegion {
		fmt.Fprintf(s.out, "  Description: %s\n", region.Description)
		fmt.Fprintf(s.out, "  Region:      0x%08X - 0x%08X (%d bytes)\n", region.Base, region.End(), region.Size)
	} else {
		fmt.Fprintf(s.out, "  Description: %s\n", irqs[0].Description)
	}
	for _, irq := range irqs {
		fmt.Fprintf(s.out, "  IRQ:         %d (%s)\n", irq.IRQ, irq.Trigger)
	}
}

func (s *Shell) cmdOverlaps() {
	overlaps := s.inv.Overlaps()
	if len(overlaps) == 0 {
		fmt.Fprintln(s.out, "No overlapping regions")
		return
	}
	for _, o := range overlaps {
		fmt.Fprintf(s.out, "  %s [0x%08X-0x%08X] overlaps %s [0x%08X-0x%08X]\n",
			o.First.Name, o.First.Base, o.First.End(),
			o.Second.Name, o.Second.Base, o.Second.End())
	}
}

// completer offers command names and, after "device", the device names.
func (s *Shell) completer() *readline.PrefixCompleter {
	var devices []readline.PrefixCompleterInterface
	seen := make(map[string]bool)
	for _, r := range s.inv.Regions {
		if !seen[r.Name] {
			seen[r.Name] = true
			devices = append(devices, readline.PcItem(r.Name))
		}
	}
	for _, irq := range s.inv.Interrupts {
		if !seen[irq.Device] {
			seen[irq.Device] = true
			devices = append(devices, readline.PcItem(irq.Device))
		}
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("regions"),
		readline.PcItem("irqs"),
		readline.PcItem("overlaps"),
		readline.PcItem("lookup"),
		readline.PcItem("device", devices...),
		readline.PcItem("report"),
		readline.PcItem("header"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
