// Package cli parses stitcher's command-line arguments into a Config and
// resolves which of the three input modes an invocation selected: the
// naming-convention 2x2 mode, the explicit four-corner mode, or the general
// columns x rows grid mode.
//
// Argument errors (a partial corner set, a tile count that does not match
// the declared grid shape, conflicting modes) are reported as *ExitError
// with exit code 2; they never reach the compositor.
package cli
