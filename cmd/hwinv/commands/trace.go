package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/skyos/hwinv/pkg/log"
)

// TraceOptions configures the trace command.
type TraceOptions struct {
	Filter log.Filter
	Stats  bool
	Path   string
}

// RunTrace runs the trace command.
func RunTrace(args []string, stdout, stderr io.Writer) int {
	opts, err := parseTraceArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printTraceUsage(stdout)
		return exitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printTraceUsage(stderr)
		return exitCommandError
	}

	reader, err := log.NewFilteredReader(opts.Path, opts.Filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to open trace file: %v\n", err)
		return exitCommandError
	}
	defer reader.Close()

	stats := newTraceStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to read event: %v\n", err)
			return exitInputError
		}

		if opts.Stats {
			stats.add(event)
		} else {
			formatTraceEvent(stdout, event)
		}
	}

	if opts.Stats {
		stats.print(stdout)
	}
	return exitSuccess
}

// formatTraceEvent writes one event per line:
// timestamp [run:id] KIND line N node@addr property: message
func formatTraceEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [run:%s] %-16s", ts, shortenRunID(event.RunID), event.Kind)
	if event.Line > 0 {
		fmt.Fprintf(w, " line %d", event.Line)
	}
	if event.Node != "" {
		fmt.Fprintf(w, " %s@%x", event.Node, event.Address)
	}
	if event.Property != "" {
		fmt.Fprintf(w, " %s:", event.Property)
	}
	if event.Message != "" {
		fmt.Fprintf(w, " %s", event.Message)
	}
	fmt.Fprintln(w)
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// traceStats holds aggregate counts over a trace file.
type traceStats struct {
	total   int
	byKind  map[log.Kind]int
	runs    map[string]int
	sources map[string]bool
}

func newTraceStats() *traceStats {
	return &traceStats{
		byKind:  make(map[log.Kind]int),
		runs:    make(map[string]int),
		sources: make(map[string]bool),
	}
}

func (s *traceStats) add(event log.Event) {
	s.total++
	s.byKind[event.Kind]++
	s.runs[event.RunID]++
	if event.Source != "" {
		s.sources[event.Source] = true
	}
}

func (s *traceStats) print(w io.Writer) {
	fmt.Fprintf(w, "Events: %d\n", s.total)
	fmt.Fprintf(w, "Runs:   %d\n", len(s.runs))

	sources := make([]string, 0, len(s.sources))
	for src := range s.sources {
		sources = append(sources, src)
	}
	slices.Sort(sources)
	for _, src := range sources {
		fmt.Fprintf(w, "Source: %s\n", src)
	}

	kinds := make([]log.Kind, 0, len(s.byKind))
	for k := range s.byKind {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	fmt.Fprintln(w, "\nBy kind:")
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-16s %d\n", k, s.byKind[k])
	}
}

func parseTraceArgs(args []string) (TraceOptions, error) {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := TraceOptions{}

	kind := fs.String("kind", "", "Filter by event kind (e.g. node_dropped)")
	fs.StringVar(&opts.Filter.Node, "node", "", "Filter by node name")
	fs.StringVar(&opts.Filter.RunID, "run", "", "Filter by run ID")
	fs.BoolVar(&opts.Stats, "stats", false, "Print statistics instead of events")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if *kind != "" {
		k, err := log.ParseKind(*kind)
		if err != nil {
			return opts, err
		}
		opts.Filter.Kind = &k
	}

	if fs.NArg() != 1 {
		return opts, errors.New("exactly one trace file required")
	}
	opts.Path = fs.Arg(0)

	return opts, nil
}

func printTraceUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: hwinv trace [options] <file.htrace>

Options:
  -kind <kind>    Filter by event kind (node_opened, node_closed, node_dropped,
                  node_discarded, property_skipped, region_added, interrupt_added)
  -node <name>    Filter by node name
  -run <id>       Filter by run ID
  -stats          Print statistics instead of events

Trace files are written by "hwinv analyze -trace <file>".

Examples:
  hwinv trace scan.htrace
  hwinv trace -kind node_discarded scan.htrace
  hwinv trace -stats scan.htrace`)
}
