// Package lockfile reads the restore lock file a build leaves under each
// project directory and turns it into a types.DependencyMap.
//
// Only entries resolved as packages are kept. Their versions are expected
// as minimum-only ranges such as "[13.0.1, )"; any other shape is rejected
// with ErrVersionFormat rather than guessed at.
package lockfile
