// Package width computes cell and column width demands.
//
// Resolution runs in two passes over a built table:
//
//  1. [Resolver.ResolveCellWidths] measures every cell's text through the
//     configured [Measurer] and derives its content width, minimum readable
//     width (the longest single word), and the mode-driven minimum and
//     wrapped widths (fixed, wrap, or auto per the cell's style).
//  2. [Resolver.ResolveColumnWidths] aggregates those demands per column:
//     the maximum over single-column cells, with fixed column style widths
//     overriding and spanning anchors serving only as a last-resort floor.
//
// The resulting minimum and wrapped widths feed the external paginator's
// final column-sizing decision; this package never fails and always leaves
// every cell and column with a numeric width.
package width
