// Package builtin provides the plugins shipped with the steamer binary.
//
//   - config — list, set and delete tool or plugin config keys, or seed the
//     tool config with the built-in defaults
//   - env    — show where steamer looks for configuration and global plugins
package builtin
