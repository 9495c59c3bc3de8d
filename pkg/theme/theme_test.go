package theme

import (
	"testing"

	"github.com/pocket-ui/pocket/pkg/graphics"
)

func TestEveryColorParses(t *testing.T) {
	for _, th := range []*Theme{Light(), Dark()} {
		colors := []string{
			th.Colors.Primary, th.Colors.PrimaryDark, th.Colors.PrimaryLight,
			th.Colors.Secondary, th.Colors.Success, th.Colors.Warning,
			th.Colors.Error, th.Colors.Info, th.Colors.Background,
			th.Colors.Surface, th.Colors.Card, th.Colors.Border,
			th.Colors.Divider, th.Colors.TextPrimary, th.Colors.TextSecondary,
			th.Colors.TextTertiary, th.Colors.TextDisabled, th.Colors.Overlay,
			th.Colors.Shadow,
		}
		for _, hex := range colors {
			if got := graphics.ParseHexOr(hex, graphics.ColorTransparent); got == graphics.ColorTransparent {
				t.Errorf("%s theme: color %q does not parse", th.Mode, hex)
			}
		}
	}
}

func TestShadowLevelLookup(t *testing.T) {
	s := Light().Shadows
	if _, ok := s.Level("medium"); !ok {
		t.Error("medium level missing")
	}
	if _, ok := s.Level("chrome"); ok {
		t.Error("unknown level must report false")
	}
}

func TestDarkDiffersFromLight(t *testing.T) {
	light, dark := Light(), Dark()
	if light.Colors.Background == dark.Colors.Background {
		t.Error("dark background should differ from light")
	}
	if light.Typography != dark.Typography {
		t.Error("typography scale is shared between modes")
	}
}
