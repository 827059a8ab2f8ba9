package autotable

import (
	"github.com/tsawler/autotable/model"
)

// Options holds the validated table settings a build consumes. Rows may be
// positional or keyed; cell values may be scalars or rich cells carrying
// spans and a style layer. Shape validation is the caller's concern.
type Options struct {
	// Columns are explicit column descriptors. When empty, columns are
	// inferred from the first available row.
	Columns []model.ColumnDef

	Head []model.RowInput
	Body []model.RowInput
	Foot []model.RowInput

	// Theme names a built-in theme (striped, grid, plain). Empty or
	// unknown names resolve to striped.
	Theme string

	// Style layers by scope. ColumnStyles is keyed by data key or by
	// decimal column index.
	Styles             model.StyleDef
	HeadStyles         model.StyleDef
	BodyStyles         model.StyleDef
	FootStyles         model.StyleDef
	AlternateRowStyles model.StyleDef
	ColumnStyles       map[string]model.StyleDef

	Hooks Hooks
}

// HookData is the payload passed to cell hooks
type HookData struct {
	Table   *model.Table
	Cell    *model.Cell
	Row     *model.Row
	Column  *model.Column
	Section model.Section
}

// CellHook is a synchronous callback invoked once per cell. A hook may
// mutate the cell's text and styles in place; for DidParseCell the
// mutation is visible to the width computation that follows.
type CellHook func(*HookData)

// PageHook is invoked by the downstream renderer once per drawn page
type PageHook func(table *model.Table)

// Hooks holds ordered callback lists per lifecycle event. The build
// invokes only DidParseCell; the draw-time hooks are stored for the
// downstream renderer.
type Hooks struct {
	DidParseCell []CellHook
	WillDrawCell []CellHook
	DidDrawCell  []CellHook
	DidDrawPage  []PageHook
}
