package graphics

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"opaque red", "#FF0000", ColorRed},
		{"lowercase", "#ff0000", ColorRed},
		{"mixed case", "#Ff00fF", Color(0xFFFF00FF)},
		{"no hash prefix", "00FF00", ColorGreen},
		{"with alpha suffix", "#00000050", Color(0x50000000)},
		{"empty falls back", "", FallbackColor},
		{"too short falls back", "#FFF", FallbackColor},
		{"too long falls back", "#FF0000FF0", FallbackColor},
		{"bad digit falls back", "#GG0000", FallbackColor},
		{"bare hash falls back", "#", FallbackColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHex(tt.input); got != tt.want {
				t.Errorf("ParseHex(%q) = %#08x, want %#08x", tt.input, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestParseHexOr(t *testing.T) {
	if got := ParseHexOr("nonsense", ColorBlack); got != ColorBlack {
		t.Errorf("ParseHexOr fallback = %#08x, want black", uint32(got))
	}
	if got := ParseHexOr("#0000FF", ColorBlack); got != ColorBlue {
		t.Errorf("ParseHexOr valid input = %#08x, want blue", uint32(got))
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	inside := []Offset{{10, 20}, {40, 60}, {25, 35}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	outside := []Offset{{9, 20}, {41, 60}, {25, 61}}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestEdgeInsetsNormalized(t *testing.T) {
	e := EdgeInsets{Top: -5, Right: 3, Bottom: -1, Left: 0}.Normalized()
	want := EdgeInsets{Top: 0, Right: 3, Bottom: 0, Left: 0}
	if e != want {
		t.Errorf("Normalized() = %+v, want %+v", e, want)
	}
}

func TestInsetsConstructors(t *testing.T) {
	if got := InsetsAll(4); got != (EdgeInsets{4, 4, 4, 4}) {
		t.Errorf("InsetsAll(4) = %+v", got)
	}
	if got := InsetsSymmetric(10, 20); got != (EdgeInsets{Top: 10, Right: 20, Bottom: 10, Left: 20}) {
		t.Errorf("InsetsSymmetric(10, 20) = %+v", got)
	}
}
