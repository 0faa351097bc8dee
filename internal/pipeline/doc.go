// Package pipeline orchestrates a full stitching run: decode every input
// tile, compose the grid, encode the result to a single output file.
//
// The naming-convention mode (a shared prefix with -tl/-tr/-bl/-br
// suffixes) is a thin adapter that expands the prefix into the ordered path
// list and reuses the general grid path; there is no separate code path
// into the compositor.
//
// A run is atomic: the first error aborts it, and no output file is written
// unless composition fully succeeded. There is no retry or partial-failure
// recovery.
package pipeline
