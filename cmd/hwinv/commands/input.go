// Package commands implements the hwinv CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/skyos/hwinv/pkg/inventory"
	"github.com/skyos/hwinv/pkg/log"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitInputError   = 2
)

// DefaultInput is the device tree analyzed when no file is given.
const DefaultInput = "docs/labs/qemu-virt-devicetree.dts"

// SnapshotExt marks inventory snapshot files written by "show -format cbor".
const SnapshotExt = ".hinv"

// inputPath returns the single optional positional argument or DefaultInput.
func inputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return DefaultInput, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
}

// readSource reads a device tree file. A missing file gets a hint on how to
// produce one.
func readSource(path string, stderr io.Writer) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot read device tree %s: %v\n", path, err)
		if errors.Is(err, fs.ErrNotExist) {
			printDumpHint(stderr)
		}
		return "", false
	}
	return string(data), true
}

func printDumpHint(w io.Writer) {
	fmt.Fprintln(w, "Hint: generate the device tree with:")
	fmt.Fprintln(w, "   qemu-system-arm -machine virt -cpu cortex-a15 -machine dumpdtb=virt.dtb")
	fmt.Fprintln(w, "   dtc -I dtb -O dts virt.dtb > virt.dts")
}

// loadInventory extracts the inventory of path, or decodes it when path is
// a snapshot file.
func loadInventory(path string, cfg Config, trace log.Logger, stderr io.Writer) (*inventory.Inventory, int) {
	if filepath.Ext(path) == SnapshotExt {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return nil, exitCommandError
		}
		defer f.Close()

		snap, err := inventory.ReadSnapshot(f)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
			return nil, exitInputError
		}
		return snap.Inventory, exitSuccess
	}

	text, ok := readSource(path, stderr)
	if !ok {
		return nil, exitCommandError
	}
	invCfg, err := cfg.InventoryConfig(trace)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, exitCommandError
	}
	return inventory.Extract(text, invCfg), exitSuccess
}

// newLogger creates the operational logger writing text records to w.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "", "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %s (use debug, info, warn, error)", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// warnOverlaps logs every pair of intersecting regions.
func warnOverlaps(logger *slog.Logger, inv *inventory.Inventory) {
	for _, o := range inv.Overlaps() {
		logger.Warn("overlapping regions",
			slog.String("first", o.First.Name),
			slog.String("first_range", fmt.Sprintf("0x%08X-0x%08X", o.First.Base, o.First.End())),
			slog.String("second", o.Second.Name),
			slog.String("second_range", fmt.Sprintf("0x%08X-0x%08X", o.Second.Base, o.Second.End())),
		)
	}
}
