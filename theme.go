package cubelab

// Theme is a set of six sticker colors, one per solved-state face,
// expressed as hex color strings. Themes only affect rendering; the
// engine's geometric state is theme-independent.
type Theme struct {
	Name string

	U, D, L, R, F, B string
}

// FaceColor returns the theme color for a sticker face.
func (t Theme) FaceColor(f Face) string {
	switch f {
	case FaceU:
		return t.U
	case FaceD:
		return t.D
	case FaceL:
		return t.L
	case FaceR:
		return t.R
	case FaceF:
		return t.F
	default:
		return t.B
	}
}

// Built-in themes.
var (
	// ThemeClassic uses the standard western color scheme: white up,
	// yellow down, green front.
	ThemeClassic = Theme{
		Name: "classic",
		U:    "#ffffff",
		D:    "#ffd500",
		L:    "#ff8c00",
		R:    "#c41e3a",
		F:    "#009e60",
		B:    "#0051ba",
	}

	ThemeDusk = Theme{
		Name: "dusk",
		U:    "#f4ecd8",
		D:    "#d8a47f",
		L:    "#bc5f6a",
		R:    "#8a4f7d",
		F:    "#5b618a",
		B:    "#2d3142",
	}

	ThemeMono = Theme{
		Name: "mono",
		U:    "#fafafa",
		D:    "#1a1a1a",
		L:    "#bdbdbd",
		R:    "#424242",
		F:    "#9e9e9e",
		B:    "#616161",
	}
)

// Themes lists the built-in themes in cycling order.
var Themes = []Theme{ThemeClassic, ThemeDusk, ThemeMono}
