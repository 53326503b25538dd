// Package colour implements the color science the audit needs: parsing
// CSS color values, hex/HSL conversion, and WCAG 2.1 relative luminance
// and contrast ratio.
package colour

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a value cannot be parsed as a color.
var ErrInvalidColor = errors.New("invalid color")

// RGB is an 8-bit sRGB color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL holds hue in degrees [0, 360) and saturation and lightness in
// percent [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Hex renders the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// HSL converts the color to its HSL representation.
func (c RGB) HSL() HSL {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := col.Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// RGB converts back to 8-bit sRGB.
func (h HSL) RGB() RGB {
	r, g, b := colorful.Hsl(h.H, h.S/100, h.L/100).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex renders the HSL color as a lowercase #rrggbb string.
func (h HSL) Hex() string { return h.RGB().Hex() }

// ParseHex parses #rgb or #rrggbb, case-insensitive, with or without
// the leading '#'.
func ParseHex(s string) (RGB, bool) {
	v := strings.TrimSpace(strings.ToLower(s))
	if v == "" {
		return RGB{}, false
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) != 4 && len(v) != 7 {
		return RGB{}, false
	}
	col, err := colorful.Hex(v)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

var (
	rgbFuncRe = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*(?:[,/]\s*[\d.]+%?\s*)?\)$`)
	hslFuncRe = regexp.MustCompile(`^hsla?\(\s*([\d.]+)(?:deg)?\s*[,\s]\s*([\d.]+)%\s*[,\s]\s*([\d.]+)%\s*(?:[,/]\s*[\d.]+%?\s*)?\)$`)
)

// ParseColor parses any supported CSS color value: hex, rgb()/rgba(),
// hsl()/hsla(), and CSS named colors. Alpha channels are accepted and
// discarded.
func ParseColor(s string) (RGB, bool) {
	v := strings.TrimSpace(strings.ToLower(s))
	switch {
	case v == "":
		return RGB{}, false
	case strings.HasPrefix(v, "#"):
		return ParseHex(v)
	case strings.HasPrefix(v, "rgb"):
		return parseRGBFunc(v)
	case strings.HasPrefix(v, "hsl"):
		return parseHSLFunc(v)
	}
	c, ok := namedColors[v]
	return c, ok
}

// Parse is ParseColor with an error instead of a bool, for surfaces
// that report to users.
func Parse(s string) (RGB, error) {
	c, ok := ParseColor(s)
	if !ok {
		return RGB{}, ErrInvalidColor
	}
	return c, nil
}

func parseRGBFunc(v string) (RGB, bool) {
	m := rgbFuncRe.FindStringSubmatch(v)
	if m == nil {
		return RGB{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return RGB{}, false
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

func parseHSLFunc(v string) (RGB, bool) {
	m := hslFuncRe.FindStringSubmatch(v)
	if m == nil {
		return RGB{}, false
	}
	h, err1 := strconv.ParseFloat(m[1], 64)
	s, err2 := strconv.ParseFloat(m[2], 64)
	l, err3 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return RGB{}, false
	}
	if s > 100 || l > 100 {
		return RGB{}, false
	}
	return HSL{H: math.Mod(h, 360), S: s, L: l}.RGB(), true
}

// RelativeLuminance computes WCAG 2.1 relative luminance: channels are
// linearized with the 0.03928 sRGB knee, then weighted 0.2126 R +
// 0.7152 G + 0.0722 B.
func RelativeLuminance(c RGB) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors.
// The result is in [1, 21] and independent of argument order.
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// HueDistance returns the shorter arc between two hue angles, in degrees.
func HueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
