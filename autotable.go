// Package autotable resolves raw tabular settings into a fully-specified
// grid model: every cell assigned to its row and column, every cell and
// column carrying resolved widths and styles, ready for a downstream
// paginator/renderer.
//
// Basic usage:
//
//	table := autotable.Build(autotable.Options{
//	    Columns: []model.ColumnDef{
//	        {DataKey: "name", Header: "Name"},
//	        {DataKey: "email", Header: "Email"},
//	    },
//	    Body: []model.RowInput{
//	        model.Keyed(model.KV{Key: "name", Value: "Ada"}, model.KV{Key: "email", Value: "ada@example.com"}),
//	    },
//	})
//
// With build environment options:
//
//	table := autotable.Build(opts,
//	    autotable.WithScaleFactor(72/25.4),
//	    autotable.WithMeasurer(font.NewMeasurer()),
//	)
//
// Pagination, drawing, and final column sizing are external collaborators;
// they consume the resolved model's minimum and wrapped widths.
package autotable

import (
	"github.com/tsawler/autotable/font"
	"github.com/tsawler/autotable/grid"
	"github.com/tsawler/autotable/model"
	"github.com/tsawler/autotable/style"
	"github.com/tsawler/autotable/width"
)

// environment holds the external collaborators a build consumes
type environment struct {
	measurer    width.Measurer
	scaleFactor float64
	themeLookup func(name string) style.Theme
}

// Option configures the build environment
type Option func(*environment)

// WithMeasurer sets the text width measurement function. The default is a
// font.Measurer using built-in metric tables.
func WithMeasurer(m width.Measurer) Option {
	return func(e *environment) {
		e.measurer = m
	}
}

// WithScaleFactor sets the host's rendering scale factor, which scales the
// default cell padding and the minimum width floor. The default is 1.
func WithScaleFactor(k float64) Option {
	return func(e *environment) {
		e.scaleFactor = k
	}
}

// WithThemeLookup replaces the built-in theme lookup
func WithThemeLookup(fn func(name string) style.Theme) Option {
	return func(e *environment) {
		e.themeLookup = fn
	}
}

// Build resolves the given settings into a table model. Resolution is
// synchronous and deterministic given a pure measurer; each call owns its
// own table graph. Build never fails: missing cells are simply absent and
// every cell and column receives a numeric width.
func Build(opts Options, options ...Option) *model.Table {
	env := environment{
		scaleFactor: 1,
		themeLookup: style.GetTheme,
	}
	for _, opt := range options {
		opt(&env)
	}
	if env.scaleFactor <= 0 {
		env.scaleFactor = 1
	}
	if env.measurer == nil {
		env.measurer = &font.Measurer{ScaleFactor: env.scaleFactor}
	}

	columns := grid.ResolveColumns(opts.Columns, opts.Head, opts.Body, opts.Foot)

	cascade := &style.Cascade{
		Theme:              env.themeLookup(opts.Theme),
		Default:            style.Default(env.scaleFactor),
		Styles:             opts.Styles,
		HeadStyles:         opts.HeadStyles,
		BodyStyles:         opts.BodyStyles,
		FootStyles:         opts.FootStyles,
		AlternateRowStyles: opts.AlternateRowStyles,
		ColumnStyles:       opts.ColumnStyles,
	}
	styleFor := func(section model.Section, col *model.Column, rowIndex int, cellDef model.StyleDef) model.Style {
		return cascade.CellStyle(section, col, rowIndex, cellDef)
	}

	builder := grid.NewBuilder(columns)
	table := &model.Table{
		Columns: columns,
		Head:    builder.BuildSection(model.Head, sectionRows(model.Head, opts.Head, columns), styleFor),
		Body:    builder.BuildSection(model.Body, opts.Body, styleFor),
		Foot:    builder.BuildSection(model.Foot, sectionRows(model.Foot, opts.Foot, columns), styleFor),
	}

	invokeParseHooks(table, opts.Hooks.DidParseCell)

	resolver := &width.Resolver{
		Measurer:     env.measurer,
		ScaleFactor:  env.scaleFactor,
		ColumnStyles: opts.ColumnStyles,
	}
	resolver.ResolveCellWidths(table)
	resolver.ResolveColumnWidths(table)

	return table
}

// sectionRows returns the rows to build for a head or foot section,
// synthesizing one from column descriptor metadata when the section is
// empty and a descriptor carries content
func sectionRows(section model.Section, rows []model.RowInput, columns []*model.Column) []model.RowInput {
	if len(rows) > 0 {
		return rows
	}
	row, ok := grid.SectionRowFromColumns(columns, section)
	if !ok {
		return nil
	}
	return []model.RowInput{row}
}

// invokeParseHooks runs the DidParseCell hooks in registration order, once
// per cell, before any width computation. A panicking hook aborts the
// build.
func invokeParseHooks(table *model.Table, hooks []CellHook) {
	if len(hooks) == 0 {
		return
	}
	for _, row := range table.AllRows() {
		for _, col := range table.Columns {
			cell := row.CellAt(col.Index)
			if cell == nil {
				continue
			}
			data := &HookData{
				Table:   table,
				Cell:    cell,
				Row:     row,
				Column:  col,
				Section: row.Section,
			}
			for _, hook := range hooks {
				hook(data)
			}
		}
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use with the
// input adapters in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	rows := autotable.Must(htmlinput.ParseString(markup))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
