// Package model provides the data model for resolved tables.
//
// This package defines the user-facing data structures that the resolution
// pipeline produces and that a downstream paginator/renderer consumes.
//
// # Table Structure
//
// A [Table] owns the ordered [Column] list and three row sections:
//
//   - head - header rows, synthesized from column descriptors when absent
//   - body - data rows
//   - foot - footer rows
//
// Every [Row] maps column indices to [Cell] values; columns claimed by a
// row or column span from an earlier cell carry no entry. Cells hold the
// normalized text lines, the resolved [Style], span counts, and the
// computed width demands (content, minimum, wrapped, minimum readable).
//
// # Raw Input
//
// Raw table input is represented by tagged variants, resolved once at
// construction time rather than inspected ad hoc:
//
//   - [RowInput] - positional ([Cells]) or keyed ([Keyed], [KeyedMap]) rows
//   - [CellInput] - a scalar value ([Value]) or a rich cell carrying
//     content, spans, and a per-cell style layer
//
// # Styles
//
// [Style] is a fully resolved style; [StyleDef] is one partial layer of the
// cascade. Layers merge shallowly, property by property, with
// [StyleDef.Apply]. [Ptr] helps build StyleDef literals:
//
//	def := model.StyleDef{
//	    FontSize:  model.Ptr(12.0),
//	    FillColor: &model.Color{R: 41, G: 128, B: 185},
//	}
package model
