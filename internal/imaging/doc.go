// Package imaging implements the grid compositor at the core of stitcher,
// together with the image loading and saving it composes between.
//
// The central operation is Compose: given an ordered slice of decoded images
// and a grid shape (columns x rows), it validates that every image shares
// identical pixel dimensions, allocates a canvas of size
// (width*columns, height*rows), and copies each image into its row-major
// cell at the exact pixel offset. Cells are copied channel-for-channel with
// no blending, resampling or color conversion; mismatched tile sizes are a
// hard error.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner; X
// increases rightward and Y increases downward. Grid cells are addressed in
// row-major order: the image at index r*columns+c occupies cell (c, r).
//
// # Error Handling
//
// Every error returned by this package is an *Error carrying one of the
// Kind values (argument, decode, size mismatch, grid arity, encode) plus an
// optional underlying cause. Callers match kinds with errors.Is against the
// exported sentinels, e.g. errors.Is(err, ErrSizeMismatch). Failures are
// atomic: no partially composed canvas is ever returned.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Compose itself is a pure,
// single-pass transform from inputs to one output; it holds no shared state
// and performs no I/O.
package imaging
