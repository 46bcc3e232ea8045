// Package editor provides a Bubble Tea component that drives a tex
// expression tree: it owns the root tree and the "current" tree the
// cursor lives in, maps key events to tree operations, descends into and
// ascends out of function arguments when navigation reports
// tex.ResultEntered, and renders the markup with a styled cursor.
//
// Keyboard pages (the catalogs of insertable commands) are supplied by
// the host; the editor only holds the active page and the insertion
// plumbing.
package editor
