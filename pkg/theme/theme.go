// Package theme provides the constant tables that keep an app's look
// consistent: color schemes, the typography scale, spacing, shadow
// levels, and motion durations.
//
// Colors are hex strings, the form widget styles and the drawing backend
// exchange; malformed values fall back at parse time rather than here.
package theme

import (
	"time"

	"github.com/pocket-ui/pocket/pkg/graphics"
)

// Mode distinguishes light from dark themes.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ColorScheme is the color palette of one mode.
type ColorScheme struct {
	Primary      string
	PrimaryDark  string
	PrimaryLight string

	Secondary      string
	SecondaryDark  string
	SecondaryLight string

	Success string
	Warning string
	Error   string
	Info    string

	Background string
	Surface    string
	Card       string
	Border     string
	Divider    string

	TextPrimary   string
	TextSecondary string
	TextTertiary  string
	TextDisabled  string

	Hover      string
	Active     string
	Focus      string
	DisabledBg string

	Overlay string
	Shadow  string
}

// Typography is the font and size scale.
type Typography struct {
	FontPrimary   string
	FontSecondary string
	FontMonospace string

	SizeXS  float64
	SizeSM  float64
	SizeMD  float64
	SizeLG  float64
	SizeXL  float64
	Size2XL float64
	Size3XL float64

	LineHeightTight   float64
	LineHeightNormal  float64
	LineHeightRelaxed float64
}

// Spacing is the spacing and radius scale.
type Spacing struct {
	Unit float64

	XS  float64
	SM  float64
	MD  float64
	LG  float64
	XL  float64
	XXL float64

	PaddingButton graphics.EdgeInsets
	PaddingCard   float64
	PaddingScreen float64

	RadiusSM float64
	RadiusMD float64
	RadiusLG float64
	RadiusXL float64
}

// ShadowLevel is one elevation step: an offset, a blur radius and a
// color.
type ShadowLevel struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Color   string
}

// Shadows maps the named elevations used by surface widgets.
type Shadows struct {
	Low    ShadowLevel
	Medium ShadowLevel
	High   ShadowLevel
}

// Level resolves an elevation name to its shadow, defaulting unknown
// names to no shadow.
func (s Shadows) Level(name string) (ShadowLevel, bool) {
	switch name {
	case "low":
		return s.Low, true
	case "medium":
		return s.Medium, true
	case "high":
		return s.High, true
	}
	return ShadowLevel{}, false
}

// Motion holds the standard animation durations.
type Motion struct {
	Fast   time.Duration
	Normal time.Duration
	Slow   time.Duration
}

// Theme bundles every style table for one mode.
type Theme struct {
	Mode       Mode
	Colors     ColorScheme
	Typography Typography
	Spacing    Spacing
	Shadows    Shadows
	Motion     Motion
}

func defaultTypography() Typography {
	return Typography{
		FontPrimary:   "sans-serif",
		FontSecondary: "serif",
		FontMonospace: "monospace",
		SizeXS:        12,
		SizeSM:        14,
		SizeMD:        16,
		SizeLG:        18,
		SizeXL:        24,
		Size2XL:       32,
		Size3XL:       48,

		LineHeightTight:   1.2,
		LineHeightNormal:  1.5,
		LineHeightRelaxed: 1.75,
	}
}

func defaultSpacing() Spacing {
	return Spacing{
		Unit: 8,
		XS:   4,
		SM:   8,
		MD:   16,
		LG:   24,
		XL:   32,
		XXL:  48,

		PaddingButton: graphics.InsetsSymmetric(12, 24),
		PaddingCard:   16,
		PaddingScreen: 20,

		RadiusSM: 4,
		RadiusMD: 8,
		RadiusLG: 12,
		RadiusXL: 16,
	}
}

func defaultShadows() Shadows {
	return Shadows{
		Low:    ShadowLevel{OffsetY: 1, Blur: 2, Color: "#00000019"},
		Medium: ShadowLevel{OffsetY: 2, Blur: 4, Color: "#00000019"},
		High:   ShadowLevel{OffsetY: 4, Blur: 8, Color: "#00000019"},
	}
}

func defaultMotion() Motion {
	return Motion{
		Fast:   150 * time.Millisecond,
		Normal: 300 * time.Millisecond,
		Slow:   500 * time.Millisecond,
	}
}

// Light returns the default light theme.
func Light() *Theme {
	return &Theme{
		Mode: ModeLight,
		Colors: ColorScheme{
			Primary:      "#007AFF",
			PrimaryDark:  "#0051D5",
			PrimaryLight: "#4DA6FF",

			Secondary:      "#5856D6",
			SecondaryDark:  "#3634A3",
			SecondaryLight: "#8B8AE8",

			Success: "#34C759",
			Warning: "#FF9500",
			Error:   "#FF3B30",
			Info:    "#5AC8FA",

			Background: "#F2F2F7",
			Surface:    "#FFFFFF",
			Card:       "#FFFFFF",
			Border:     "#C6C6C8",
			Divider:    "#E5E5EA",

			TextPrimary:   "#000000",
			TextSecondary: "#3C3C43",
			TextTertiary:  "#8E8E93",
			TextDisabled:  "#C7C7CC",

			Hover:      "#F2F2F7",
			Active:     "#E5E5EA",
			Focus:      "#007AFF",
			DisabledBg: "#E5E5EA",

			Overlay: "#00000050",
			Shadow:  "#00000020",
		},
		Typography: defaultTypography(),
		Spacing:    defaultSpacing(),
		Shadows:    defaultShadows(),
		Motion:     defaultMotion(),
	}
}

// Dark returns the default dark theme.
func Dark() *Theme {
	t := Light()
	t.Mode = ModeDark
	t.Colors.Primary = "#0A84FF"
	t.Colors.PrimaryDark = "#006DD9"
	t.Colors.PrimaryLight = "#409CFF"
	t.Colors.Background = "#000000"
	t.Colors.Surface = "#1C1C1E"
	t.Colors.Card = "#2C2C2E"
	t.Colors.Border = "#38383A"
	t.Colors.Divider = "#3A3A3C"
	t.Colors.TextPrimary = "#FFFFFF"
	t.Colors.TextSecondary = "#EBEBF5"
	t.Colors.TextTertiary = "#EBEBF599"
	t.Colors.TextDisabled = "#545456"
	t.Colors.Hover = "#2C2C2E"
	t.Colors.Active = "#3A3A3C"
	t.Colors.DisabledBg = "#3A3A3C"
	t.Colors.Overlay = "#000000AA"
	t.Colors.Shadow = "#00000040"
	return t
}
