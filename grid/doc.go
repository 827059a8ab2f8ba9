// Package grid expands raw tabular input into a positioned grid of cells.
//
// Resolution happens in two steps:
//
//  1. [ResolveColumns] derives the ordered column list, either from explicit
//     [model.ColumnDef] descriptors or by inferring it from the shape of the
//     first available row (head, then body, then foot).
//  2. [Builder.BuildSection] expands each section's rows against that column
//     list, honoring row and column spans through a per-column span ledger
//     that exists only for the duration of the pass.
//
// Head and foot rows can be synthesized from column descriptor metadata via
// [SectionRowFromColumns] when a section has no explicit rows; body rows are
// never synthesized.
//
// Span accounting is purely columnar: a column span extending past the last
// column is not clamped to the table width.
package grid
