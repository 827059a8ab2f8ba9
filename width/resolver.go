package width

import (
	"strconv"
	"strings"

	"github.com/tsawler/autotable/model"
)

// Measurer measures the rendered width of text. Measure reports the width
// of the widest line, respecting the style's font, variant, and size. It
// must be a pure function of (lines, style) for resolution to be
// deterministic.
type Measurer interface {
	Measure(lines []string, st model.Style) float64
}

// defaultMinWidthUnits is the unscaled minimum width floor applied to auto
// cells whose style declares no minimum of its own.
const defaultMinWidthUnits = 10

// Resolver computes cell width demands and aggregates them per column.
// ColumnStyles is consulted for fixed numeric column width overrides.
type Resolver struct {
	Measurer     Measurer
	ScaleFactor  float64
	ColumnStyles map[string]model.StyleDef
}

// ResolveCellWidths runs the cell pass: for every cell of every row, the
// content width, minimum readable width, and the mode-driven minimum and
// wrapped widths are computed from the resolved style and measured text.
// Hooks that mutate cell text or styles must have run before this pass.
func (r *Resolver) ResolveCellWidths(t *model.Table) {
	for _, row := range t.AllRows() {
		for _, col := range t.Columns {
			cell := row.CellAt(col.Index)
			if cell == nil {
				continue
			}
			r.resolveCell(cell)
		}
	}
}

func (r *Resolver) resolveCell(cell *model.Cell) {
	st := cell.Styles
	padH := st.CellPadding.Horizontal()

	cell.ContentWidth = r.Measurer.Measure(cell.Text, st) + padH
	cell.MinReadableWidth = r.Measurer.Measure(words(cell.Text), st) + padH

	switch st.CellWidth.Mode {
	case model.WidthFixed:
		cell.MinWidth = st.CellWidth.Value
		cell.WrappedWidth = st.CellWidth.Value
	case model.WidthWrap:
		cell.MinWidth = cell.ContentWidth
		cell.WrappedWidth = cell.ContentWidth
	default:
		cell.MinWidth = st.MinCellWidth
		if cell.MinWidth <= 0 {
			cell.MinWidth = defaultMinWidthUnits / r.scale()
		}
		cell.WrappedWidth = cell.ContentWidth
		if cell.WrappedWidth < cell.MinWidth {
			cell.WrappedWidth = cell.MinWidth
		}
	}
}

// ResolveColumnWidths runs the aggregation pass: each column's width
// demands become the maxima over its single-column cells. Spanning cells
// are excluded since their demand cannot be attributed to one column; a
// column left unsized by a spanning anchor inherits that cell's minimum
// width, and a fixed numeric column style width overrides everything.
func (r *Resolver) ResolveColumnWidths(t *model.Table) {
	for _, col := range t.Columns {
		col.MinWidth = 0
		col.WrappedWidth = 0
		col.MinReadableWidth = 0

		var spanning *model.Cell
		for _, row := range t.AllRows() {
			cell := row.CellAt(col.Index)
			if cell == nil {
				continue
			}
			if cell.ColSpan == 1 {
				col.MinWidth = maxf(col.MinWidth, cell.MinWidth)
				col.WrappedWidth = maxf(col.WrappedWidth, cell.WrappedWidth)
				col.MinReadableWidth = maxf(col.MinReadableWidth, cell.MinReadableWidth)
			} else if spanning == nil {
				spanning = cell
			}
		}

		if w, ok := r.fixedColumnWidth(col); ok {
			col.MinWidth = w
			col.WrappedWidth = w
		}

		if spanning != nil {
			if col.MinWidth == 0 {
				col.MinWidth = spanning.MinWidth
			}
			if col.WrappedWidth == 0 {
				col.WrappedWidth = spanning.MinWidth
			}
		}
	}
}

// fixedColumnWidth reports the fixed numeric width a column style declares
// for the column, if any
func (r *Resolver) fixedColumnWidth(col *model.Column) (float64, bool) {
	if r.ColumnStyles == nil {
		return 0, false
	}
	def, ok := r.ColumnStyles[col.DataKey]
	if !ok {
		def, ok = r.ColumnStyles[strconv.Itoa(col.Index)]
	}
	if !ok || def.CellWidth == nil || def.CellWidth.Mode != model.WidthFixed {
		return 0, false
	}
	return def.CellWidth.Value, true
}

func (r *Resolver) scale() float64 {
	if r.ScaleFactor <= 0 {
		return 1
	}
	return r.ScaleFactor
}

// words splits text lines into whitespace-delimited words. Measuring the
// result yields the width of the single longest word.
func words(lines []string) []string {
	return strings.Fields(strings.Join(lines, " "))
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
