// Package testutil provides utilities for testing nuspecmaker components.
//
// Key components:
//   - SolutionEnv: a solution root with settings, tool and projects, on an
//     in-memory or temp-directory filesystem
//   - FakeGenerator: a skeleton generator that writes manifests without
//     running the packaging tool
//   - FailingWriteFS: a filesystem that rejects writes to chosen paths
//   - Fixtures: manifest skeletons, lock files and settings files
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only when a real process or
//     real paths are involved
//   - All test data should be defined inline, not in external files
package testutil
