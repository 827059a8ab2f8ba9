package font

import (
	xfont "golang.org/x/image/font"

	"github.com/tsawler/autotable/model"
)

// FaceMeasurer measures text with a concrete font.Face, for hosts that
// size in raster pixels rather than document points. The face carries its
// own size, so the style's font family and size are ignored.
type FaceMeasurer struct {
	Face xfont.Face
}

// NewFaceMeasurer creates a measurer backed by the given face
func NewFaceMeasurer(face xfont.Face) *FaceMeasurer {
	return &FaceMeasurer{Face: face}
}

// Measure returns the pixel width of the widest line
func (m *FaceMeasurer) Measure(lines []string, _ model.Style) float64 {
	widest := 0.0
	for _, line := range lines {
		// MeasureString reports advance in 26.6 fixed point.
		w := float64(xfont.MeasureString(m.Face, line)) / 64
		if w > widest {
			widest = w
		}
	}
	return widest
}
