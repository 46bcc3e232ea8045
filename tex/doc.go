// Package tex implements the mutable expression model for plume: an ordered
// tree of markup fragments with a single movable insertion point.
//
// A Tree holds fragments in reading order plus a cursor position in
// [0, Len()]. Function fragments nest one Tree per argument slot; cursor
// navigation across a function boundary is signalled to the caller via
// ResultEntered rather than handled inside the tree, so a host controller
// can decide which argument tree to descend into.
package tex
