package harmony_test

import (
	"testing"

	"github.com/sitescore/sitescore/internal/domain/colour"
	"github.com/sitescore/sitescore/internal/domain/harmony"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hex(t *testing.T, s string) colour.RGB {
	t.Helper()
	c, ok := colour.ParseHex(s)
	require.True(t, ok, "bad fixture color %q", s)
	return c
}

func assertNear(t *testing.T, want, got colour.RGB, tol float64) {
	t.Helper()
	assert.InDelta(t, float64(want.R), float64(got.R), tol)
	assert.InDelta(t, float64(want.G), float64(got.G), tol)
	assert.InDelta(t, float64(want.B), float64(got.B), tol)
}

func TestComplementary(t *testing.T) {
	red := hex(t, "#ff0000")
	assertNear(t, hex(t, "#00ffff"), harmony.Complementary(red), 2)
}

func TestComplementary_Involution(t *testing.T) {
	for _, s := range []string{"#ff0000", "#3b82f6", "#d97706", "#22c55e"} {
		c := hex(t, s)
		assertNear(t, c, harmony.Complementary(harmony.Complementary(c)), 2)
	}
}

func TestAnalogous(t *testing.T) {
	got := harmony.Analogous(hex(t, "#ff0000"))
	assertNear(t, hex(t, "#ff0080"), got[0], 2) // -30° lands at hue 330
	assertNear(t, hex(t, "#ff8000"), got[1], 2) // +30° lands at hue 30
}

func TestTriadic(t *testing.T) {
	got := harmony.Triadic(hex(t, "#ff0000"))
	assertNear(t, hex(t, "#00ff00"), got[0], 2)
	assertNear(t, hex(t, "#0000ff"), got[1], 2)
}

func TestTetradic(t *testing.T) {
	got := harmony.Tetradic(hex(t, "#ff0000"))
	assertNear(t, hex(t, "#80ff00"), got[0], 2)
	assertNear(t, hex(t, "#00ffff"), got[1], 2)
	assertNear(t, hex(t, "#8000ff"), got[2], 2)
}

func TestRelated_Counts(t *testing.T) {
	c := hex(t, "#3b82f6")
	assert.Len(t, harmony.Related(c, harmony.SchemeComplementary), 1)
	assert.Len(t, harmony.Related(c, harmony.SchemeAnalogous), 2)
	assert.Len(t, harmony.Related(c, harmony.SchemeTriadic), 2)
	assert.Len(t, harmony.Related(c, harmony.SchemeSplitComplementary), 2)
	assert.Len(t, harmony.Related(c, harmony.SchemeTetradic), 3)
	assert.Nil(t, harmony.Related(c, harmony.Scheme("square")))
}

func TestAreHarmonious(t *testing.T) {
	red := hex(t, "#ff0000")
	cyan := hex(t, "#00ffff")
	assert.True(t, harmony.AreHarmonious(red, cyan, 5), "complementary pair")
	assert.True(t, harmony.AreHarmonious(red, red, 5), "same hue")
	assert.True(t, harmony.AreHarmonious(red, hex(t, "#00ff00"), 5), "triadic pair")

	// hue 100 sits 10° away from the nearest canonical angle
	off := colour.HSL{H: 100, S: 100, L: 50}.RGB()
	assert.False(t, harmony.AreHarmonious(red, off, 5))
	assert.True(t, harmony.AreHarmonious(red, off, 15))
}

func TestAreHarmonious_Symmetric(t *testing.T) {
	a := hex(t, "#d97706")
	b := hex(t, "#3b82f6")
	assert.Equal(t, harmony.AreHarmonious(a, b, 10), harmony.AreHarmonious(b, a, 10))
}

func TestClosestBrandColor_ExactMatch(t *testing.T) {
	p := harmony.DefaultBrandPalette
	m := harmony.ClosestBrandColor(p.Primary, p)
	assert.Equal(t, "primary", m.Slot)
	assert.InDelta(t, 0, m.Distance, 1e-9)
	assert.Equal(t, p.Primary.Hex(), m.Hex)
}

func TestClosestBrandColor_NearMatch(t *testing.T) {
	m := harmony.ClosestBrandColor(hex(t, "#ff0000"), harmony.DefaultBrandPalette)
	assert.Equal(t, "error", m.Slot)

	m = harmony.ClosestBrandColor(hex(t, "#16a34a"), harmony.DefaultBrandPalette)
	assert.Equal(t, "success", m.Slot)
}

func TestPaletteFromHex(t *testing.T) {
	p := harmony.PaletteFromHex(map[string]string{
		"primary": "#112233",
		"error":   "not-a-color",
	})
	assert.Equal(t, "#112233", p.Primary.Hex())
	// unparseable slots keep the default
	assert.Equal(t, harmony.DefaultBrandPalette.Error, p.Error)
	assert.Equal(t, harmony.DefaultBrandPalette.Success, p.Success)
}
