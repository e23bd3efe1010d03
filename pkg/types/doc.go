// Package types defines the core types and interfaces shared by the
// nuspecmaker packages: the filesystem and packaging tool abstractions,
// project references, dependency maps and the per-project and per-run
// results reported to the caller.
package types
