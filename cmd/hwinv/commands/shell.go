package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/skyos/hwinv/cmd/hwinv/interactive"
)

// RunShell loads an inventory and starts the interactive browser.
func RunShell(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFile := fs.String("config", "", "Configuration file (YAML)")
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, "Usage: hwinv shell [-config <file>] [file.dts|file.hinv]")
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	input, err := inputPath(fs.Args())
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

	shell := interactive.New(inv, input, cfg.RenderOptions(input), stdout)
	if err := shell.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}
