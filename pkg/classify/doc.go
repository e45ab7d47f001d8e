// Package classify maps device nodes to human-readable descriptions.
//
// Classification is driven by an ordered table of Entries. Entries that match
// against the compatible string always take priority over entries that match
// against the node name; within each kind the first matching entry wins.
// Devices nothing matches get a generic "Unknown device (...)" description
// that embeds the raw compatible string or node name.
//
// New device types are added as table entries, either in DefaultEntries or
// at run time from a YAML file loaded with LoadTable.
package classify
