// Package docxinput parses DOCX tables into raw row input.
package docxinput

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unidoc/unioffice/document"

	"github.com/tsawler/autotable/model"
)

// ErrNoTable is returned when the document contains no tables
var ErrNoTable = errors.New("document contains no tables")

// Tables reads a DOCX document from the provided reader and size and
// returns the rows of each table as positional row input, one slice per
// table in document order. Cell text joins the cell's paragraphs with
// newlines; horizontally merged cells carry their grid span.
func Tables(r io.ReaderAt, size int64) ([][]model.RowInput, error) {
	doc, err := document.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var out [][]model.RowInput
	for _, tbl := range doc.Tables() {
		out = append(out, convertTable(tbl))
	}
	return out, nil
}

// First returns the rows of the document's first table
func First(r io.ReaderAt, size int64) ([]model.RowInput, error) {
	tables, err := Tables(r, size)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, ErrNoTable
	}
	return tables[0], nil
}

// convertTable converts one table's rows into positional row input
func convertTable(t document.Table) []model.RowInput {
	var rows []model.RowInput
	for _, row := range t.Rows() {
		var cells []any
		for _, cell := range row.Cells() {
			input := model.CellInput{Content: cellText(cell)}
			if span := gridSpan(cell); span > 1 {
				input.ColSpan = span
			}
			cells = append(cells, input)
		}
		rows = append(rows, model.Cells(cells...).WithElement(row))
	}
	return rows
}

// cellText joins a cell's paragraphs with newlines
func cellText(c document.Cell) string {
	var lines []string
	for _, p := range c.Paragraphs() {
		var sb strings.Builder
		for _, run := range p.Runs() {
			sb.WriteString(run.Text())
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// gridSpan reads the horizontal merge span from the cell properties
func gridSpan(c document.Cell) int {
	tc := c.X()
	if tc == nil || tc.TcPr == nil || tc.TcPr.GridSpan == nil {
		return 1
	}
	return int(tc.TcPr.GridSpan.ValAttr)
}
