package model

import (
	"testing"
)

func TestStyleDefApply(t *testing.T) {
	st := Style{
		Font:     "helvetica",
		FontSize: 10,
		Halign:   HAlignLeft,
	}

	def := StyleDef{
		FontSize: Ptr(14.0),
		Halign:   Ptr(HAlignRight),
	}
	def.Apply(&st)

	if st.FontSize != 14 {
		t.Errorf("Expected FontSize 14, got %f", st.FontSize)
	}
	if st.Halign != HAlignRight {
		t.Errorf("Expected HAlignRight, got %v", st.Halign)
	}
	if st.Font != "helvetica" {
		t.Errorf("Unset property changed: Font = %q", st.Font)
	}
}

func TestStyleDefApplyLayering(t *testing.T) {
	st := Style{FontSize: 10}

	lower := StyleDef{FontSize: Ptr(12.0), LineWidth: Ptr(0.5)}
	upper := StyleDef{FontSize: Ptr(16.0)}

	lower.Apply(&st)
	upper.Apply(&st)

	if st.FontSize != 16 {
		t.Errorf("Expected highest layer to win, got FontSize %f", st.FontSize)
	}
	if st.LineWidth != 0.5 {
		t.Errorf("Expected lower layer LineWidth 0.5 preserved, got %f", st.LineWidth)
	}
}

func TestStyleDefApplyCopiesFillColor(t *testing.T) {
	fill := Color{R: 1, G: 2, B: 3}
	def := StyleDef{FillColor: &fill}

	var st Style
	def.Apply(&st)

	if st.FillColor == nil {
		t.Fatal("Expected FillColor set")
	}
	if st.FillColor == &fill {
		t.Error("Expected FillColor to be copied, not aliased")
	}
	if *st.FillColor != fill {
		t.Errorf("Expected %v, got %v", fill, *st.FillColor)
	}
}

func TestStyleDefIsZero(t *testing.T) {
	if !(StyleDef{}).IsZero() {
		t.Error("Empty StyleDef should be zero")
	}
	if (StyleDef{FontSize: Ptr(10.0)}).IsZero() {
		t.Error("StyleDef with a property should not be zero")
	}
}

func TestPadding(t *testing.T) {
	p := Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if p.Horizontal() != 6 {
		t.Errorf("Expected Horizontal 6, got %f", p.Horizontal())
	}
	if p.Vertical() != 4 {
		t.Errorf("Expected Vertical 4, got %f", p.Vertical())
	}

	u := UniformPadding(2.5)
	if u.Horizontal() != 5 || u.Vertical() != 5 {
		t.Errorf("Expected uniform padding 5/5, got %f/%f", u.Horizontal(), u.Vertical())
	}
}

func TestWidthConstructors(t *testing.T) {
	if Auto().Mode != WidthAuto {
		t.Error("Auto() should produce WidthAuto")
	}
	if Wrap().Mode != WidthWrap {
		t.Error("Wrap() should produce WidthWrap")
	}
	w := Fixed(40)
	if w.Mode != WidthFixed || w.Value != 40 {
		t.Errorf("Fixed(40) = %+v", w)
	}
	var zero Width
	if zero.Mode != WidthAuto {
		t.Error("Zero value Width should be auto")
	}
}

func TestGray(t *testing.T) {
	c := Gray(80)
	if c.R != 80 || c.G != 80 || c.B != 80 {
		t.Errorf("Gray(80) = %+v", c)
	}
}

func TestFontStyleString(t *testing.T) {
	cases := map[FontStyle]string{
		FontStyleNormal:     "normal",
		FontStyleBold:       "bold",
		FontStyleItalic:     "italic",
		FontStyleBoldItalic: "bolditalic",
	}
	for fs, want := range cases {
		if got := fs.String(); got != want {
			t.Errorf("FontStyle(%d).String() = %q, want %q", fs, got, want)
		}
	}
}
