package style

import (
	"strconv"

	"github.com/tsawler/autotable/model"
)

// Cascade computes effective cell styles by merging layered style sources.
// Precedence, lowest to highest: Default, theme table, theme section, user
// global styles, user section styles, alternate-row styles (body only, even
// row indices), column styles (body only), and finally the cell input's own
// style layer. Each property is replaced wholesale by the highest layer
// that sets it.
type Cascade struct {
	Theme   Theme
	Default model.Style

	Styles     model.StyleDef
	HeadStyles model.StyleDef
	BodyStyles model.StyleDef
	FootStyles model.StyleDef

	AlternateRowStyles model.StyleDef
	ColumnStyles       map[string]model.StyleDef
}

// CellStyle resolves the effective style for a cell at the given section,
// column, and section-local row index. cellDef is the style layer from the
// raw cell input.
func (c *Cascade) CellStyle(section model.Section, col *model.Column, rowIndex int, cellDef model.StyleDef) model.Style {
	st := c.Default

	c.Theme.Table.Apply(&st)
	c.Theme.Section(section).Apply(&st)
	c.Styles.Apply(&st)
	c.sectionStyles(section).Apply(&st)

	if section == model.Body && rowIndex%2 == 0 {
		c.Theme.AlternateRow.Apply(&st)
		c.AlternateRowStyles.Apply(&st)
	}
	if section == model.Body {
		c.ColumnStyle(col).Apply(&st)
	}

	cellDef.Apply(&st)
	return st
}

// ColumnStyle returns the user style layer for a column, looked up by data
// key first and numeric index second
func (c *Cascade) ColumnStyle(col *model.Column) model.StyleDef {
	if c.ColumnStyles == nil || col == nil {
		return model.StyleDef{}
	}
	if d, ok := c.ColumnStyles[col.DataKey]; ok {
		return d
	}
	if d, ok := c.ColumnStyles[strconv.Itoa(col.Index)]; ok {
		return d
	}
	return model.StyleDef{}
}

func (c *Cascade) sectionStyles(section model.Section) model.StyleDef {
	switch section {
	case model.Head:
		return c.HeadStyles
	case model.Foot:
		return c.FootStyles
	default:
		return c.BodyStyles
	}
}
