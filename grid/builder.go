package grid

import (
	"github.com/tsawler/autotable/model"
)

// StyleFunc resolves the effective style for a cell about to be created.
// cellDef is the style layer carried by the raw cell input itself.
type StyleFunc func(section model.Section, col *model.Column, rowIndex int, cellDef model.StyleDef) model.Style

// spanSlot tracks, for one column, how many upcoming rows are still claimed
// by a row-spanning cell (left) and how many columns to its right that cell
// claims in each of those rows (times).
type spanSlot struct {
	left  int
	times int
}

// Builder expands raw section rows into positioned rows and cells against a
// fixed column list. One Builder serves one table build.
type Builder struct {
	columns []*model.Column
}

// NewBuilder creates a builder for the given column list
func NewBuilder(columns []*model.Column) *Builder {
	return &Builder{columns: columns}
}

// BuildSection expands one section's raw rows into resolved rows. The span
// ledger lives for exactly this pass: a cell with rowSpan r and colSpan c
// claims the c columns starting at its anchor in the r-1 rows below it, and
// no cell is created for claimed slots.
func (b *Builder) BuildSection(section model.Section, rows []model.RowInput, styleFor StyleFunc) []*model.Row {
	ledger := make([]spanSlot, len(b.columns))

	out := make([]*model.Row, 0, len(rows))
	for rowIndex, raw := range rows {
		row := model.NewRow(section, rowIndex)

		columnSpansLeft := 0
		colSpansAdded := 0
		rowSpanSkips := 0

		for _, col := range b.columns {
			slot := &ledger[col.Index]

			if slot.left > 0 {
				// Claimed by a row-spanning cell from an earlier row.
				slot.left--
				columnSpansLeft = slot.times
				rowSpanSkips++
				continue
			}

			if columnSpansLeft > 0 {
				// Claimed by a col-spanning cell from this row.
				columnSpansLeft--
				colSpansAdded++
				continue
			}

			input, ok := b.rawCell(raw, col, colSpansAdded, rowSpanSkips)
			if !ok {
				continue
			}

			cell := model.NewCell(input, styleFor(section, col, rowIndex, input.Styles))
			row.SetCell(col, cell)

			columnSpansLeft = cell.ColSpan - 1
			*slot = spanSlot{left: cell.RowSpan - 1, times: cell.ColSpan - 1}
		}

		out = append(out, row)
	}
	return out
}

// rawCell resolves the input value a column receives from a raw row.
// Positional rows are denser than the column grid, so the lookup index
// compensates for slots already consumed by column and row spans.
func (b *Builder) rawCell(raw model.RowInput, col *model.Column, colSpansAdded, rowSpanSkips int) (model.CellInput, bool) {
	if raw.IsKeyed() {
		return raw.Get(col.DataKey)
	}
	return raw.At(col.Index - colSpansAdded - rowSpanSkips)
}

// SectionRowFromColumns synthesizes a head or foot row from column
// descriptor metadata. It reports false when no column carries content for
// the section, in which case no row should be added.
func SectionRowFromColumns(columns []*model.Column, section model.Section) (model.RowInput, bool) {
	pairs := make([]model.KV, 0, len(columns))
	found := false
	for _, col := range columns {
		var input *model.CellInput
		switch section {
		case model.Head:
			input = col.Header
		case model.Foot:
			input = col.Footer
		}
		if input == nil {
			continue
		}
		found = true
		pairs = append(pairs, model.KV{Key: col.DataKey, Value: *input})
	}
	if !found {
		return model.RowInput{}, false
	}
	return model.Keyed(pairs...), true
}
