// Package filesystem provides filesystem implementations for nuspecmaker.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the CLI and afero-backed filesystems used
// for in-memory and read-only test setups.
package filesystem
