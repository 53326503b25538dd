// Package harmony provides classical color-wheel relationships on top
// of HSL hue rotation, plus nearest-match lookup against a brand
// palette.
package harmony

import (
	"math"

	"github.com/sitescore/sitescore/internal/domain/colour"
)

// Scheme names a hue-rotation harmony.
type Scheme string

const (
	SchemeComplementary      Scheme = "complementary"
	SchemeAnalogous          Scheme = "analogous"
	SchemeTriadic            Scheme = "triadic"
	SchemeSplitComplementary Scheme = "split-complementary"
	SchemeTetradic           Scheme = "tetradic"
)

// Schemes lists every supported harmony scheme.
var Schemes = []Scheme{
	SchemeComplementary,
	SchemeAnalogous,
	SchemeTriadic,
	SchemeSplitComplementary,
	SchemeTetradic,
}

// harmonyAngles are the canonical hue separations considered harmonious.
var harmonyAngles = []float64{0, 30, 90, 120, 150, 180, 210, 240, 270, 300, 330}

// Rotate shifts a color's hue by the given number of degrees, keeping
// saturation and lightness.
func Rotate(c colour.RGB, degrees float64) colour.RGB {
	hsl := c.HSL()
	hsl.H = math.Mod(hsl.H+degrees+360, 360)
	return hsl.RGB()
}

// Complementary returns the color opposite on the wheel (+180°).
func Complementary(c colour.RGB) colour.RGB {
	return Rotate(c, 180)
}

// Analogous returns the two neighbors at ±30°.
func Analogous(c colour.RGB) [2]colour.RGB {
	return [2]colour.RGB{Rotate(c, -30), Rotate(c, 30)}
}

// Triadic returns the two colors at +120° and +240°.
func Triadic(c colour.RGB) [2]colour.RGB {
	return [2]colour.RGB{Rotate(c, 120), Rotate(c, 240)}
}

// SplitComplementary returns the colors at +150° and +210°.
func SplitComplementary(c colour.RGB) [2]colour.RGB {
	return [2]colour.RGB{Rotate(c, 150), Rotate(c, 210)}
}

// Tetradic returns the colors at +90°, +180° and +270°.
func Tetradic(c colour.RGB) [3]colour.RGB {
	return [3]colour.RGB{Rotate(c, 90), Rotate(c, 180), Rotate(c, 270)}
}

// Related returns the harmony companions for a scheme, in rotation order.
func Related(c colour.RGB, scheme Scheme) []colour.RGB {
	switch scheme {
	case SchemeComplementary:
		return []colour.RGB{Complementary(c)}
	case SchemeAnalogous:
		p := Analogous(c)
		return p[:]
	case SchemeTriadic:
		p := Triadic(c)
		return p[:]
	case SchemeSplitComplementary:
		p := SplitComplementary(c)
		return p[:]
	case SchemeTetradic:
		p := Tetradic(c)
		return p[:]
	}
	return nil
}

// AreHarmonious reports whether the circular hue difference between two
// colors falls within tolerance degrees of a canonical harmony angle.
func AreHarmonious(a, b colour.RGB, tolerance float64) bool {
	diff := colour.HueDistance(a.HSL().H, b.HSL().H)
	for _, angle := range harmonyAngles {
		if math.Abs(diff-angle) <= tolerance {
			return true
		}
	}
	return false
}

// BrandPalette is the fixed set of named slots a site's brand colors
// fill. Zero-value slots fall back to the defaults.
type BrandPalette struct {
	Primary   colour.RGB `json:"primary"`
	Secondary colour.RGB `json:"secondary"`
	Accent    colour.RGB `json:"accent"`
	Neutral   colour.RGB `json:"neutral"`
	Success   colour.RGB `json:"success"`
	Warning   colour.RGB `json:"warning"`
	Error     colour.RGB `json:"error"`
}

// DefaultBrandPalette mirrors a common Tailwind-flavored starter set.
var DefaultBrandPalette = BrandPalette{
	Primary:   colour.RGB{R: 0x3b, G: 0x82, B: 0xf6},
	Secondary: colour.RGB{R: 0x64, G: 0x74, B: 0x8b},
	Accent:    colour.RGB{R: 0xd9, G: 0x77, B: 0x06},
	Neutral:   colour.RGB{R: 0x6b, G: 0x72, B: 0x80},
	Success:   colour.RGB{R: 0x22, G: 0xc5, B: 0x5e},
	Warning:   colour.RGB{R: 0xf5, G: 0x9e, B: 0x0b},
	Error:     colour.RGB{R: 0xef, G: 0x44, B: 0x44},
}

// PaletteFromHex builds a palette from slot-keyed hex values, filling
// missing or unparseable slots from DefaultBrandPalette.
func PaletteFromHex(slots map[string]string) BrandPalette {
	p := DefaultBrandPalette
	set := func(dst *colour.RGB, key string) {
		if c, ok := colour.ParseColor(slots[key]); ok {
			*dst = c
		}
	}
	set(&p.Primary, "primary")
	set(&p.Secondary, "secondary")
	set(&p.Accent, "accent")
	set(&p.Neutral, "neutral")
	set(&p.Success, "success")
	set(&p.Warning, "warning")
	set(&p.Error, "error")
	return p
}

// slots returns the palette in its fixed slot order.
func (p BrandPalette) slots() []struct {
	Name  string
	Color colour.RGB
} {
	return []struct {
		Name  string
		Color colour.RGB
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"neutral", p.Neutral},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
	}
}

// BrandMatch is the nearest brand slot for a color.
type BrandMatch struct {
	Slot     string     `json:"slot"`
	Color    colour.RGB `json:"color"`
	Hex      string     `json:"hex"`
	Distance float64    `json:"distance"`
}

// ClosestBrandColor finds the palette slot nearest to a color under a
// weighted HSL distance: hue difference (shorter arc) ×1.5, saturation
// and lightness each ×0.5. Ties keep the earlier slot.
func ClosestBrandColor(c colour.RGB, p BrandPalette) BrandMatch {
	hsl := c.HSL()
	best := BrandMatch{Distance: math.MaxFloat64}
	for _, slot := range p.slots() {
		d := hslDistance(hsl, slot.Color.HSL())
		if d < best.Distance {
			best = BrandMatch{Slot: slot.Name, Color: slot.Color, Hex: slot.Color.Hex(), Distance: d}
		}
	}
	return best
}

func hslDistance(a, b colour.HSL) float64 {
	return colour.HueDistance(a.H, b.H)*1.5 +
		math.Abs(a.S-b.S)*0.5 +
		math.Abs(a.L-b.L)*0.5
}
