// hwinv extracts the hardware inventory of a device tree source file and
// renders it as a report, a C header or Go constants.
//
// Usage:
//
//	hwinv <command> [options] [file.dts]
//
// Commands:
//
//	analyze  Print the hardware report and write the C header
//	show     Display the inventory (text, json, yaml, cbor)
//	lookup   Find the device that owns an address
//	trace    View a scan trace file
//	shell    Browse the inventory interactively
//
// Examples:
//
//	# Report for the bundled QEMU virt dump
//	hwinv analyze
//
//	# Report and header for a custom dump
//	hwinv analyze -H include/hardware.h -R report.txt virt.dts
//
//	# Which device sits at 0x09000000?
//	hwinv lookup 0x09000000 virt.dts
package main

import (
	"fmt"
	"os"

	"github.com/skyos/hwinv/cmd/hwinv/commands"
	"github.com/skyos/hwinv/pkg/version"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(commands.RunAnalyze(nil, os.Stdout, os.Stderr))
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "analyze":
		exitCode = commands.RunAnalyze(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "lookup":
		exitCode = commands.RunLookup(args, os.Stdout, os.Stderr)
	case "trace":
		exitCode = commands.RunTrace(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = commands.RunShell(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Printf("hwinv version %s\n", version.Version)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`hwinv - device tree hardware inventory tool

Usage:
  hwinv <command> [options] [file.dts]

Commands:
  analyze    Print the hardware report; -H writes the C header
  show       Display the inventory (text, json, yaml, cbor)
  lookup     Find the device that owns an address
  trace      View a scan trace file written by analyze -trace
  shell      Browse the inventory interactively

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Without a command, hwinv runs analyze on ` + commands.DefaultInput + `.

Examples:
  hwinv analyze -H include/hardware.h virt.dts
  hwinv show -format json virt.dts
  hwinv lookup 0x09000000
  hwinv trace -kind node_discarded scan.htrace

For command-specific help, run:
  hwinv <command> -h`)
}
