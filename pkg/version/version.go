// Package version provides the hwinv release version and configuration
// schema version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the hwinv release version.
const Version = "0.1.0"

// ConfigSchema is the configuration file schema implemented by this release.
const ConfigSchema = "1.0"

// SchemaVersion represents a parsed "major.minor" schema version.
type SchemaVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (SchemaVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return SchemaVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v SchemaVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v SchemaVersion) Compatible(other SchemaVersion) bool {
	return v.Major == other.Major
}

// CheckConfigSchema reports whether a configuration file written for schema
// s can be read by this release. An empty s is accepted as the current schema.
func CheckConfigSchema(s string) error {
	if s == "" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	current, _ := Parse(ConfigSchema)
	if !current.Compatible(v) {
		return fmt.Errorf("config schema %s is not supported (this release reads %d.x)", v, current.Major)
	}
	if v.Minor > current.Minor {
		return fmt.Errorf("config schema %s is newer than %s", v, current)
	}
	return nil
}
