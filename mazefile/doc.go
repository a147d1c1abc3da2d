// Package mazefile persists mazes in a plain-text format and exports solved
// mazes as PNG images.
//
// Text format:
//
//	SIZE:15
//	111111111111111
//	100000000000001
//	...
//
// A header line SIZE:<N> is followed by exactly N rows of exactly N digit
// characters, 0 for an open cell and 1 for a wall. Start (1,1) and end
// (N-2,N-2) are implied, never stored.
//
// Decoding validates everything before a Grid is returned: header present
// and parseable, N within the legal size range, every row exactly N
// characters, every character in {0,1}, exactly N rows. Any violation is a
// data-format error; the pathfinding core only ever sees validated grids.
//
// Round-trip guarantee: Encode followed by Decode reproduces the same size
// and Open/Wall pattern for any Grid that satisfies the structural
// invariants.
//
// Errors:
//
//   - ErrEmptyInput: no data at all.
//   - ErrBadHeader: missing or unparseable SIZE:<N> line.
//   - ErrBadRowLength: a row's length differs from N.
//   - ErrBadCell: a character outside {0,1}.
//   - ErrRowCount: row count differs from N.
//   - maze.ErrInvalidSize (wrapped): header size outside [10, 30].
package mazefile
