package style

import (
	"testing"

	"github.com/tsawler/autotable/model"
)

func TestGetTheme(t *testing.T) {
	striped := GetTheme("striped")
	if striped.AlternateRow.FillColor == nil {
		t.Error("striped theme should set an alternate row fill")
	}

	grid := GetTheme("grid")
	if grid.Table.LineWidth == nil || *grid.Table.LineWidth != 0.1 {
		t.Error("grid theme should set a table line width")
	}

	plain := GetTheme("plain")
	if plain.Head.FontStyle == nil || *plain.Head.FontStyle != model.FontStyleBold {
		t.Error("plain theme should bold the head")
	}
	if !plain.Table.IsZero() {
		t.Error("plain theme should not style the table scope")
	}
}

func TestGetThemeFallsBackToStriped(t *testing.T) {
	for _, name := range []string{"", "nope"} {
		theme := GetTheme(name)
		if theme.Head.FillColor == nil {
			t.Errorf("GetTheme(%q) should fall back to striped", name)
		}
	}
}

func TestThemeSection(t *testing.T) {
	theme := GetTheme("striped")
	if theme.Section(model.Head).FillColor == nil {
		t.Error("Section(Head) should return the head layer")
	}
	if !theme.Section(model.Body).IsZero() {
		t.Error("striped body layer should be empty")
	}
}

func TestDefault(t *testing.T) {
	st := Default(1)

	if st.Font != "helvetica" || st.FontSize != 10 {
		t.Errorf("Default font = %q %f", st.Font, st.FontSize)
	}
	if st.FillColor != nil {
		t.Error("Default fill should be transparent")
	}
	if st.CellPadding.Horizontal() != 10 {
		t.Errorf("Default horizontal padding = %f", st.CellPadding.Horizontal())
	}
	if st.MinCellWidth != 10 {
		t.Errorf("Default MinCellWidth = %f", st.MinCellWidth)
	}
	if st.CellWidth.Mode != model.WidthAuto {
		t.Error("Default cell width should be auto")
	}
}

func TestDefaultScales(t *testing.T) {
	st := Default(2)
	if st.CellPadding.Left != 2.5 {
		t.Errorf("Scaled padding = %f, want 2.5", st.CellPadding.Left)
	}
	if st.MinCellWidth != 5 {
		t.Errorf("Scaled MinCellWidth = %f, want 5", st.MinCellWidth)
	}

	// Degenerate scale factors fall back to 1.
	if got := Default(0).MinCellWidth; got != 10 {
		t.Errorf("Default(0).MinCellWidth = %f", got)
	}
}
