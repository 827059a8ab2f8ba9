package grid

import (
	"fmt"
	"strconv"

	"github.com/tsawler/autotable/model"
)

// ResolveColumns derives the ordered column list for a table. Explicit
// descriptors win; otherwise columns are inferred from the shape of the
// first non-empty row of head, then body, then foot. A table with no
// descriptors and no rows has no columns.
func ResolveColumns(defs []model.ColumnDef, head, body, foot []model.RowInput) []*model.Column {
	if len(defs) > 0 {
		return columnsFromDefs(defs)
	}

	row, ok := firstRow(head, body, foot)
	if !ok {
		return nil
	}
	if row.IsKeyed() {
		return columnsFromKeys(row)
	}
	return positionalColumns(row.Len())
}

// columnsFromDefs builds columns from explicit descriptors, preserving
// order. Identity falls back from DataKey to the legacy Key alias to the
// positional index.
func columnsFromDefs(defs []model.ColumnDef) []*model.Column {
	cols := make([]*model.Column, len(defs))
	for i, def := range defs {
		key := def.DataKey
		if key == "" {
			key = def.Key
		}
		if key == "" {
			key = strconv.Itoa(i)
		}

		col := &model.Column{DataKey: key, Index: i}
		if def.Header != nil {
			c := model.AsCellInput(def.Header)
			col.Header = &c
		}
		if def.Footer != nil {
			c := model.AsCellInput(def.Footer)
			col.Footer = &c
		}
		cols[i] = col
	}
	return cols
}

// columnsFromKeys infers columns from a keyed row: one column per key in
// input order. A cell declaring a colSpan on this row expands into sibling
// columns with suffixed keys so later rows can address each slot.
func columnsFromKeys(row model.RowInput) []*model.Column {
	var cols []*model.Column
	for _, key := range row.Keys() {
		if key == model.ElementKey {
			continue
		}
		cols = append(cols, &model.Column{DataKey: key, Index: len(cols)})

		cell, _ := row.Get(key)
		for j := 1; j < cell.ColSpan; j++ {
			sibling := fmt.Sprintf("%s_%d", key, j)
			cols = append(cols, &model.Column{DataKey: sibling, Index: len(cols)})
		}
	}
	return cols
}

// positionalColumns builds n columns identified by their decimal index
func positionalColumns(n int) []*model.Column {
	cols := make([]*model.Column, n)
	for i := range cols {
		cols[i] = &model.Column{DataKey: strconv.Itoa(i), Index: i}
	}
	return cols
}

// firstRow returns the first row with at least one cell, scanning the
// sections in priority order
func firstRow(sections ...[]model.RowInput) (model.RowInput, bool) {
	for _, rows := range sections {
		for _, row := range rows {
			if row.Len() > 0 {
				return row, true
			}
		}
	}
	return model.RowInput{}, false
}
