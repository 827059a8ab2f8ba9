package font

import (
	"github.com/tsawler/autotable/model"
)

// Measurer measures text using built-in Standard 14 metric tables. Widths
// are reported in document units: glyph units scaled by font size and
// divided by the host scale factor.
type Measurer struct {
	// ScaleFactor converts point-space widths to the host's units.
	// Values of zero or less are treated as 1.
	ScaleFactor float64
}

// NewMeasurer creates a measurer for a host with a unit scale factor
func NewMeasurer() *Measurer {
	return &Measurer{ScaleFactor: 1}
}

// Measure returns the width of the widest line, respecting the style's
// font family, variant, and size
func (m *Measurer) Measure(lines []string, st model.Style) float64 {
	k := m.ScaleFactor
	if k <= 0 {
		k = 1
	}

	widest := 0.0
	for _, line := range lines {
		w := stringUnitWidth(line, st) * st.FontSize / k
		if w > widest {
			widest = w
		}
	}
	return widest
}

// stringUnitWidth computes the width of a string in em units for the
// style's font
func stringUnitWidth(s string, st model.Style) float64 {
	regular, variant := widthTables(st.Font, st.FontStyle)

	total := 0.0
	for _, r := range s {
		total += charWidth(regular, variant, r)
	}
	return total / 1000
}

// charWidth returns a glyph width in 1000ths of em. The variant table is
// consulted first, then the regular table, then the fallback width.
func charWidth(regular, variant map[rune]float64, r rune) float64 {
	if variant != nil {
		if w, ok := variant[r]; ok {
			return w
		}
	}
	if regular != nil {
		if w, ok := regular[r]; ok {
			return w
		}
	}
	if regular == nil && variant == nil {
		// Monospaced fallback (courier)
		return courierWidth
	}
	return defaultWidth
}

// widthTables selects the metric tables for a font family and variant.
// Oblique/italic variants share their upright metrics, as in the Standard
// 14 set. Unknown families fall back to helvetica; courier has no table
// since every glyph is courierWidth wide.
func widthTables(family string, fs model.FontStyle) (regular, variant map[rune]float64) {
	bold := fs == model.FontStyleBold || fs == model.FontStyleBoldItalic

	switch family {
	case "courier":
		return nil, nil
	case "times":
		if bold {
			return timesWidths, timesBoldWidths
		}
		return timesWidths, nil
	default:
		if bold {
			return helveticaWidths, helveticaBoldWidths
		}
		return helveticaWidths, nil
	}
}
