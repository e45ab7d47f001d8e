package render

import "strings"

// Options configures the rendered artifacts.
type Options struct {
	// Project names the firmware project in titles and comments.
	Project string

	// Guard is the C include guard. Empty derives _<PROJECT>_HARDWARE_H_.
	Guard string

	// GoPackage is the package clause of generated Go constants.
	GoPackage string

	// Source is the input document name, recorded in generated Go code.
	Source string
}

// DefaultOptions returns the options used by the SkyOS firmware tree.
func DefaultOptions() Options {
	return Options{
		Project:   "SkyOS",
		GoPackage: "hardware",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Project == "" {
		o.Project = def.Project
	}
	if o.GoPackage == "" {
		o.GoPackage = def.GoPackage
	}
	if o.Guard == "" {
		o.Guard = "_" + identifier(ConstName(o.Project)) + "_HARDWARE_H_"
	}
	return o
}

// PrimaryMemory is the node name of main RAM. It gets no size constant.
const PrimaryMemory = "memory"

// ConstName converts a device name into a constant name prefix:
// upper case with hyphens replaced by underscores.
func ConstName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// comment makes s safe inside a C or Go block comment.
func comment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

// identifier replaces every character that is not valid in a C identifier.
func identifier(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
