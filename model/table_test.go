package model

import (
	"reflect"
	"testing"
)

func TestNewCellClampsSpans(t *testing.T) {
	tests := []struct {
		name             string
		colSpan, rowSpan int
		wantCol, wantRow int
	}{
		{"unset", 0, 0, 1, 1},
		{"explicit", 2, 3, 2, 3},
		{"negative", -1, -5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := NewCell(CellInput{Content: "x", ColSpan: tt.colSpan, RowSpan: tt.rowSpan}, Style{})
			if cell.ColSpan != tt.wantCol {
				t.Errorf("ColSpan = %d, want %d", cell.ColSpan, tt.wantCol)
			}
			if cell.RowSpan != tt.wantRow {
				t.Errorf("RowSpan = %d, want %d", cell.RowSpan, tt.wantRow)
			}
		})
	}
}

func TestNewCellNormalizesText(t *testing.T) {
	cell := NewCell(CellInput{Content: "line1\nline2"}, Style{})
	want := []string{"line1", "line2"}
	if !reflect.DeepEqual(cell.Text, want) {
		t.Errorf("Text = %q, want %q", cell.Text, want)
	}
	if cell.Raw != "line1\nline2" {
		t.Errorf("Raw = %v", cell.Raw)
	}
}

func TestRowCellAliases(t *testing.T) {
	row := NewRow(Body, 0)
	col := &Column{DataKey: "x", Index: 2}
	cell := NewCell(Value("v"), Style{})

	row.SetCell(col, cell)

	if row.CellAt(2) != cell {
		t.Error("CellAt(2) should return the cell")
	}
	if row.CellByKey("x") != cell {
		t.Error("CellByKey(x) should return the same cell")
	}
	if row.CellAt(0) != nil {
		t.Error("CellAt(0) should be nil for an unset column")
	}
	if row.CellByKey("y") != nil {
		t.Error("CellByKey(y) should be nil for an unknown key")
	}
}

func TestTableAllRowsOrder(t *testing.T) {
	table := &Table{
		Head: []*Row{NewRow(Head, 0)},
		Body: []*Row{NewRow(Body, 0), NewRow(Body, 1)},
		Foot: []*Row{NewRow(Foot, 0)},
	}

	rows := table.AllRows()
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	wantSections := []Section{Head, Body, Body, Foot}
	for i, row := range rows {
		if row.Section != wantSections[i] {
			t.Errorf("rows[%d].Section = %v, want %v", i, row.Section, wantSections[i])
		}
	}
}

func TestTableSectionRows(t *testing.T) {
	table := &Table{
		Head: []*Row{NewRow(Head, 0)},
		Body: []*Row{NewRow(Body, 0)},
	}
	if got := table.SectionRows(Head); len(got) != 1 || got[0].Section != Head {
		t.Errorf("SectionRows(Head) = %v", got)
	}
	if got := table.SectionRows(Foot); len(got) != 0 {
		t.Errorf("SectionRows(Foot) = %v", got)
	}
}

func TestTableColumnByKey(t *testing.T) {
	table := &Table{Columns: []*Column{
		{DataKey: "a", Index: 0},
		{DataKey: "b", Index: 1},
	}}

	if col := table.ColumnByKey("b"); col == nil || col.Index != 1 {
		t.Errorf("ColumnByKey(b) = %v", col)
	}
	if col := table.ColumnByKey("z"); col != nil {
		t.Errorf("ColumnByKey(z) = %v, want nil", col)
	}
}

func TestSectionString(t *testing.T) {
	if Head.String() != "head" || Body.String() != "body" || Foot.String() != "foot" {
		t.Errorf("Section strings: %q %q %q", Head, Body, Foot)
	}
}
