package style

import (
	"github.com/tsawler/autotable/model"
)

// Theme is a named bundle of style layers applied beneath user styles
type Theme struct {
	Table        model.StyleDef
	Head         model.StyleDef
	Body         model.StyleDef
	Foot         model.StyleDef
	AlternateRow model.StyleDef
}

// Section returns the theme layer for the given section
func (t Theme) Section(s model.Section) model.StyleDef {
	switch s {
	case model.Head:
		return t.Head
	case model.Foot:
		return t.Foot
	default:
		return t.Body
	}
}

var themes = map[string]Theme{
	"striped": {
		Table: model.StyleDef{
			FillColor: &model.Color{R: 255, G: 255, B: 255},
			TextColor: model.Ptr(model.Gray(80)),
			FontStyle: model.Ptr(model.FontStyleNormal),
		},
		Head: model.StyleDef{
			TextColor: model.Ptr(model.Gray(255)),
			FillColor: &model.Color{R: 41, G: 128, B: 185},
			FontStyle: model.Ptr(model.FontStyleBold),
		},
		Foot: model.StyleDef{
			TextColor: model.Ptr(model.Gray(255)),
			FillColor: &model.Color{R: 41, G: 128, B: 185},
			FontStyle: model.Ptr(model.FontStyleBold),
		},
		AlternateRow: model.StyleDef{
			FillColor: model.Ptr(model.Gray(245)),
		},
	},
	"grid": {
		Table: model.StyleDef{
			FillColor: &model.Color{R: 255, G: 255, B: 255},
			TextColor: model.Ptr(model.Gray(80)),
			FontStyle: model.Ptr(model.FontStyleNormal),
			LineWidth: model.Ptr(0.1),
			LineColor: model.Ptr(model.Gray(200)),
		},
		Head: model.StyleDef{
			TextColor: model.Ptr(model.Gray(255)),
			FillColor: &model.Color{R: 26, G: 188, B: 156},
			FontStyle: model.Ptr(model.FontStyleBold),
			LineWidth: model.Ptr(0.0),
		},
		Foot: model.StyleDef{
			TextColor: model.Ptr(model.Gray(255)),
			FillColor: &model.Color{R: 26, G: 188, B: 156},
			FontStyle: model.Ptr(model.FontStyleBold),
			LineWidth: model.Ptr(0.0),
		},
	},
	"plain": {
		Head: model.StyleDef{FontStyle: model.Ptr(model.FontStyleBold)},
		Foot: model.StyleDef{FontStyle: model.Ptr(model.FontStyleBold)},
	},
}

// GetTheme returns the built-in theme with the given name. Unknown or empty
// names resolve to the striped theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["striped"]
}

// Default returns the base style every cascade starts from. The cell
// padding and the minimum cell width floor scale with the host's rendering
// scale factor.
func Default(scaleFactor float64) model.Style {
	k := scaleFactor
	if k <= 0 {
		k = 1
	}
	return model.Style{
		Font:          "helvetica",
		FontStyle:     model.FontStyleNormal,
		Overflow:      model.OverflowLinebreak,
		FillColor:     nil,
		TextColor:     model.Gray(20),
		Halign:        model.HAlignLeft,
		Valign:        model.VAlignTop,
		FontSize:      10,
		CellPadding:   model.UniformPadding(5 / k),
		LineColor:     model.Gray(200),
		LineWidth:     0,
		CellWidth:     model.Auto(),
		MinCellWidth:  10 / k,
		MinCellHeight: 0,
	}
}
