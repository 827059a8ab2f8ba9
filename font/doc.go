// Package font provides text width measurement for table resolution.
//
// Width computation consumes measurement only through an abstract function
// of (lines, style); this package supplies the two stock implementations.
//
// # Metric Tables
//
// [Measurer] measures with built-in Standard 14 metric tables (helvetica,
// times, courier, with bold variants). Widths are glyph units scaled by the
// style's font size and divided by the host scale factor:
//
//	m := font.NewMeasurer()
//	w := m.Measure([]string{"Total"}, st)
//
// Glyphs outside the tables fall back to a nominal width, so measurement
// never fails on unusual input.
//
// # Font Faces
//
// [FaceMeasurer] measures with any golang.org/x/image/font Face for hosts
// that size in raster pixels:
//
//	m := font.NewFaceMeasurer(basicfont.Face7x13)
//
// Both implementations are pure, which keeps table resolution
// deterministic.
package font
