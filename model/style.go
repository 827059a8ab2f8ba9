package model

// FontStyle represents a font weight/slant variant
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleBold
	FontStyleItalic
	FontStyleBoldItalic
)

func (fs FontStyle) String() string {
	switch fs {
	case FontStyleBold:
		return "bold"
	case FontStyleItalic:
		return "italic"
	case FontStyleBoldItalic:
		return "bolditalic"
	default:
		return "normal"
	}
}

// HAlign represents horizontal text alignment within a cell
type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
	HAlignJustify
)

// VAlign represents vertical text alignment within a cell
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// Overflow represents how cell text that exceeds the column width is handled
// by the downstream renderer
type Overflow int

const (
	OverflowLinebreak Overflow = iota
	OverflowEllipsize
	OverflowVisible
	OverflowHidden
)

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Gray returns a gray color with equal RGB components
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v}
}

// Padding represents the inner padding of a cell on each side
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates padding with the same value on all sides
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the combined left and right padding
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom padding
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// WidthMode selects how a cell's width demand is computed
type WidthMode int

const (
	// WidthAuto sizes the cell between a minimum floor and its content width
	WidthAuto WidthMode = iota
	// WidthWrap sizes the cell exactly to its unwrapped content
	WidthWrap
	// WidthFixed forces an explicit width
	WidthFixed
)

// Width represents a cell width demand. The zero value is auto.
type Width struct {
	Mode  WidthMode
	Value float64
}

// Auto returns an auto width
func Auto() Width {
	return Width{Mode: WidthAuto}
}

// Wrap returns a wrap-to-content width
func Wrap() Width {
	return Width{Mode: WidthWrap}
}

// Fixed returns a fixed numeric width
func Fixed(w float64) Width {
	return Width{Mode: WidthFixed, Value: w}
}

// Style is a fully resolved cell style. Every property holds a concrete
// value after the cascade has run; FillColor is nil for transparent cells.
type Style struct {
	Font          string
	FontStyle     FontStyle
	Overflow      Overflow
	FillColor     *Color
	TextColor     Color
	Halign        HAlign
	Valign        VAlign
	FontSize      float64
	CellPadding   Padding
	LineColor     Color
	LineWidth     float64
	CellWidth     Width
	MinCellWidth  float64
	MinCellHeight float64
}

// StyleDef is one layer of the style cascade. Only non-nil properties are
// applied; a set property replaces the lower layer's value wholesale.
type StyleDef struct {
	Font          *string
	FontStyle     *FontStyle
	Overflow      *Overflow
	FillColor     *Color
	TextColor     *Color
	Halign        *HAlign
	Valign        *VAlign
	FontSize      *float64
	CellPadding   *Padding
	LineColor     *Color
	LineWidth     *float64
	CellWidth     *Width
	MinCellWidth  *float64
	MinCellHeight *float64
}

// Ptr returns a pointer to v, for building StyleDef literals
func Ptr[T any](v T) *T {
	return &v
}

// Apply merges this layer onto s, property by property. Properties left nil
// in the layer keep the value already in s.
func (d StyleDef) Apply(s *Style) {
	if d.Font != nil {
		s.Font = *d.Font
	}
	if d.FontStyle != nil {
		s.FontStyle = *d.FontStyle
	}
	if d.Overflow != nil {
		s.Overflow = *d.Overflow
	}
	if d.FillColor != nil {
		c := *d.FillColor
		s.FillColor = &c
	}
	if d.TextColor != nil {
		s.TextColor = *d.TextColor
	}
	if d.Halign != nil {
		s.Halign = *d.Halign
	}
	if d.Valign != nil {
		s.Valign = *d.Valign
	}
	if d.FontSize != nil {
		s.FontSize = *d.FontSize
	}
	if d.CellPadding != nil {
		s.CellPadding = *d.CellPadding
	}
	if d.LineColor != nil {
		s.LineColor = *d.LineColor
	}
	if d.LineWidth != nil {
		s.LineWidth = *d.LineWidth
	}
	if d.CellWidth != nil {
		s.CellWidth = *d.CellWidth
	}
	if d.MinCellWidth != nil {
		s.MinCellWidth = *d.MinCellWidth
	}
	if d.MinCellHeight != nil {
		s.MinCellHeight = *d.MinCellHeight
	}
}

// IsZero reports whether no property is set in this layer
func (d StyleDef) IsZero() bool {
	return d == StyleDef{}
}
