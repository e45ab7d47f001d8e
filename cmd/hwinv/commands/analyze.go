package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/skyos/hwinv/pkg/inventory"
	"github.com/skyos/hwinv/pkg/log"
	"github.com/skyos/hwinv/pkg/render"
)

// AnalyzeOptions configures the analyze command.
type AnalyzeOptions struct {
	ConfigFile string
	Header     string // C header output path, empty skips the header
	Report     string // Report output path, empty prints to stdout
	GoFile     string // Go constants output path, empty skips it
	Policy     string // Trigger policy, overrides the config file
	Project    string // Project name, overrides the config file
	TraceFile  string // Scan trace output path (.htrace)
	LogLevel   string
	Input      string
}

// RunAnalyze runs the analyze command.
func RunAnalyze(args []string, stdout, stderr io.Writer) int {
	opts, err := parseAnalyzeArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printAnalyzeUsage(stdout)
		return exitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printAnalyzeUsage(stderr)
		return exitCommandError
	}

	logger, err := newLogger(opts.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	cfg, err := LoadConfig(opts.ConfigFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInputError
	}
	if opts.Policy != "" {
		cfg.TriggerPolicy = opts.Policy
	}
	if opts.Project != "" {
		cfg.Project = opts.Project
	}

	trace, closeTrace, err := openTrace(opts.TraceFile, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer closeTrace()

	session := log.NewSession(trace, opts.Input)
	logger.Debug("analyzing device tree", slog.String("input", opts.Input), slog.String("run_id", session.RunID()))

	inv, code := loadInventory(opts.Input, cfg, session, stderr)
	if code != exitSuccess {
		return code
	}
	logger.Info("inventory extracted",
		slog.Int("regions", len(inv.Regions)),
		slog.Int("interrupts", len(inv.Interrupts)))
	warnOverlaps(logger, inv)

	renderOpts := cfg.RenderOptions(opts.Input)

	report := render.Report(inv, renderOpts)
	if opts.Report == "" {
		fmt.Fprintln(stdout, report)
	} else {
		if err := os.WriteFile(opts.Report, []byte(report), 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing report: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "✅ Hardware report saved to: %s\n", opts.Report)
	}

	if opts.Header != "" {
		if err := os.WriteFile(opts.Header, []byte(render.Header(inv, renderOpts)), 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing header: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "✅ C header saved to: %s\n", opts.Header)
	}

	if opts.GoFile != "" {
		if code := writeGoConstants(opts.GoFile, inv, renderOpts, stdout, stderr); code != exitSuccess {
			return code
		}
	}

	return exitSuccess
}

func writeGoConstants(path string, inv *inventory.Inventory, opts render.Options, stdout, stderr io.Writer) int {
	src, err := render.GoConstants(inv, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		fmt.Fprintf(stderr, "Error writing Go constants: %v\n", err)
		return exitCommandError
	}
	fmt.Fprintf(stdout, "✅ Go constants saved to: %s\n", path)
	return exitSuccess
}

// openTrace builds the trace sink: scan events always go to logger at debug
// level and additionally to a CBOR file when path is set.
func openTrace(path string, logger *slog.Logger) (log.Logger, func(), error) {
	slogTrace := log.NewSlogAdapter(logger)
	if path == "" {
		return slogTrace, func() {}, nil
	}

	fileTrace, err := log.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening trace file: %w", err)
	}
	multi := log.NewMultiLogger(fileTrace, slogTrace)
	return multi, func() { multi.Close() }, nil
}

func parseAnalyzeArgs(args []string) (AnalyzeOptions, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := AnalyzeOptions{}

	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file (YAML)")
	fs.StringVar(&opts.Header, "H", "", "Write the C header to this file")
	fs.StringVar(&opts.Header, "output-header", "", "Write the C header to this file")
	fs.StringVar(&opts.Report, "R", "", "Write the report to this file")
	fs.StringVar(&opts.Report, "output-report", "", "Write the report to this file")
	fs.StringVar(&opts.GoFile, "G", "", "Write Go constants to this file")
	fs.StringVar(&opts.Policy, "policy", "", "Trigger policy (level-bit2, edge-bit0)")
	fs.StringVar(&opts.Project, "project", "", "Project name used in titles and the include guard")
	fs.StringVar(&opts.TraceFile, "trace", "", "Append scan events to this trace file")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	input, err := inputPath(fs.Args())
	if err != nil {
		return opts, err
	}
	opts.Input = input

	return opts, nil
}

func printAnalyzeUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: hwinv analyze [options] [file.dts]

Options:
  -config <file>        Configuration file (YAML)
  -H, -output-header    Write the C header to this file
  -R, -output-report    Write the report to this file instead of stdout
  -G <file>             Write Go constants to this file
  -policy <name>        Trigger policy (level-bit2, edge-bit0) [default: level-bit2]
  -project <name>       Project name [default: SkyOS]
  -trace <file>         Append scan events to a trace file (.htrace)
  -log-level <level>    debug, info, warn, error [default: warn]

The device tree defaults to `+DefaultInput+`.

Examples:
  hwinv analyze
  hwinv analyze -H include/hardware.h -R report.txt virt.dts
  hwinv analyze -G hardware/hardware.go -config hwinv.yaml virt.dts`)
}
