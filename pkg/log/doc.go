// Package log provides structured scan tracing for hwinv.
//
// The scanner and inventory builder report every decision they make about the
// device-tree source (a node opened, a container node dropped, a property that
// failed to decode) as an Event. It is separate from operational logging
// (slog): the trace is a complete machine-readable record of one extraction
// run, useful for finding out why a device is missing from the inventory.
//
// # Basic Usage
//
//	// For development: trace to console via slog
//	trace := log.NewSlogAdapter(slog.Default())
//
//	// For later inspection: write to binary file
//	trace, _ := log.NewFileLogger("virt.htrace")
//
//	// Both: use MultiLogger
//	trace := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
//	// Stamp events with a run ID and the input file name
//	session := log.NewSession(trace, "virt.dts")
//
// # File Format
//
// Trace files use CBOR encoding with the .htrace extension. Runs are appended,
// each distinguished by its run ID. The "hwinv trace" command views them.
package log
