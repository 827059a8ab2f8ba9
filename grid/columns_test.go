package grid

import (
	"testing"

	"github.com/tsawler/autotable/model"
)

func keysOf(cols []*model.Column) []string {
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.DataKey
	}
	return keys
}

func assertKeys(t *testing.T, cols []*model.Column, want ...string) {
	t.Helper()
	if len(cols) != len(want) {
		t.Fatalf("Expected %d columns %v, got %v", len(want), want, keysOf(cols))
	}
	for i, c := range cols {
		if c.DataKey != want[i] {
			t.Errorf("Column %d DataKey = %q, want %q", i, c.DataKey, want[i])
		}
		if c.Index != i {
			t.Errorf("Column %d Index = %d", i, c.Index)
		}
	}
}

func TestResolveColumnsExplicit(t *testing.T) {
	defs := []model.ColumnDef{
		{DataKey: "name", Header: "Name"},
		{Key: "legacy"},
		{},
	}

	cols := ResolveColumns(defs, nil, nil, nil)
	assertKeys(t, cols, "name", "legacy", "2")

	if cols[0].Header == nil || cols[0].Header.Content != "Name" {
		t.Errorf("Expected Header wrapped as cell input, got %+v", cols[0].Header)
	}
	if cols[1].Header != nil {
		t.Error("Expected nil Header for descriptor without one")
	}
}

func TestResolveColumnsExplicitWinsOverRows(t *testing.T) {
	defs := []model.ColumnDef{{DataKey: "only"}}
	body := []model.RowInput{model.Cells("a", "b", "c")}

	cols := ResolveColumns(defs, nil, body, nil)
	assertKeys(t, cols, "only")
}

func TestResolveColumnsFromPositionalRow(t *testing.T) {
	body := []model.RowInput{model.Cells("a", "b")}

	cols := ResolveColumns(nil, nil, body, nil)
	assertKeys(t, cols, "0", "1")
}

func TestResolveColumnsFromKeyedRow(t *testing.T) {
	body := []model.RowInput{model.Keyed(
		model.KV{Key: "id", Value: 1},
		model.KV{Key: "name", Value: "x"},
	)}

	cols := ResolveColumns(nil, nil, body, nil)
	assertKeys(t, cols, "id", "name")
}

func TestResolveColumnsExpandsColSpanSiblings(t *testing.T) {
	body := []model.RowInput{model.Keyed(
		model.KV{Key: "wide", Value: model.CellInput{Content: "w", ColSpan: 3}},
		model.KV{Key: "tail", Value: "t"},
	)}

	cols := ResolveColumns(nil, nil, body, nil)
	assertKeys(t, cols, "wide", "wide_1", "wide_2", "tail")
}

func TestResolveColumnsSkipsElementKey(t *testing.T) {
	body := []model.RowInput{model.Keyed(
		model.KV{Key: "a", Value: 1},
		model.KV{Key: model.ElementKey, Value: struct{}{}},
		model.KV{Key: "b", Value: 2},
	)}

	cols := ResolveColumns(nil, nil, body, nil)
	assertKeys(t, cols, "a", "b")
}

func TestResolveColumnsSectionPriority(t *testing.T) {
	head := []model.RowInput{model.Cells("h1", "h2", "h3")}
	body := []model.RowInput{model.Cells("b1")}

	cols := ResolveColumns(nil, head, body, nil)
	assertKeys(t, cols, "0", "1", "2")
}

func TestResolveColumnsSkipsEmptyRows(t *testing.T) {
	head := []model.RowInput{model.Cells()}
	foot := []model.RowInput{model.Cells("f1", "f2")}

	cols := ResolveColumns(nil, head, nil, foot)
	assertKeys(t, cols, "0", "1")
}

func TestResolveColumnsNoInput(t *testing.T) {
	cols := ResolveColumns(nil, nil, nil, nil)
	if cols != nil {
		t.Errorf("Expected nil columns, got %v", keysOf(cols))
	}
}
