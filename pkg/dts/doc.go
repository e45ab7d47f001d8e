// Package dts scans textual device-tree source dumps of the QEMU ARM virt
// machine and decodes the cell-encoded reg and interrupts properties of
// their device nodes.
//
// This is not a general device-tree compiler front end. Labels, phandles,
// includes, overlays and #address-cells overrides are not interpreted. The
// scanner recognizes node headers of the form "name@hexaddr {", the reg,
// interrupts and compatible properties of the node that is currently open,
// and the "};" statement that closes it.
//
// # Scanning
//
//	for node := range dts.NewScanner(trace).Nodes(text) {
//	    reg, err := dts.DecodeReg(node.RegCells)
//	    ...
//	}
//
// Malformed input never aborts a scan. Property values that cannot be decoded
// are reported by the decoders as errors wrapping ErrMalformedCell or
// ErrInsufficientCells, and callers skip the affected entity.
package dts
