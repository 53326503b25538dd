package tui_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitescore/sitescore/internal/adapters/outbound/tui"
	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/colour"
	"github.com/sitescore/sitescore/internal/domain/cssvars"
	"github.com/sitescore/sitescore/internal/domain/harmony"
)

func samplePalette() cssvars.Palette {
	return cssvars.Palette{
		Light: []cssvars.Variable{
			{Name: "bg-color", Value: "#ffffff", Selector: ":root", Type: cssvars.TypeColor, Mode: domain.ModeLight},
		},
		Dark: []cssvars.Variable{
			{Name: "bg-color", Value: "#121212", Selector: ":root", Type: cssvars.TypeColor, Mode: domain.ModeDark},
		},
		Shared: []cssvars.Variable{
			{Name: "spacing-md", Value: "16px", Selector: ":root", Type: cssvars.TypeSize, Mode: domain.ModeNone},
		},
	}
}

func TestRenderPalette_Header(t *testing.T) {
	output := tui.RenderPalette("https://example.com", samplePalette())
	assert.Contains(t, output, "https://example.com")
	assert.Contains(t, output, "3 variables")
	assert.Contains(t, output, "1 light")
	assert.Contains(t, output, "1 dark")
	assert.Contains(t, output, "1 shared")
}

func TestRenderPalette_Sections(t *testing.T) {
	output := tui.RenderPalette("https://example.com", samplePalette())
	assert.Contains(t, output, "Light")
	assert.Contains(t, output, "Dark")
	assert.Contains(t, output, "Shared")
}

func TestRenderPalette_VariableRows(t *testing.T) {
	output := tui.RenderPalette("https://example.com", samplePalette())
	assert.Contains(t, output, "--bg-color")
	assert.Contains(t, output, "#ffffff")
	assert.Contains(t, output, "#121212")
	assert.Contains(t, output, "--spacing-md")
	assert.Contains(t, output, "16px")
}

func TestRenderPalette_ShowsValueTypes(t *testing.T) {
	output := tui.RenderPalette("https://example.com", samplePalette())
	assert.Contains(t, output, "color")
	assert.Contains(t, output, "size")
}

func TestRenderPalette_Empty(t *testing.T) {
	output := tui.RenderPalette("https://example.com", cssvars.Palette{})
	assert.Contains(t, output, "No CSS custom properties found.")
}

func TestRenderPalette_CapsLongSections(t *testing.T) {
	p := cssvars.Palette{}
	for i := 0; i < 20; i++ {
		p.Shared = append(p.Shared, cssvars.Variable{
			Name:  fmt.Sprintf("token-%d", i),
			Value: "1px",
			Type:  cssvars.TypeSize,
			Mode:  domain.ModeNone,
		})
	}
	output := tui.RenderPalette("https://example.com", p)
	assert.Contains(t, output, "--token-0")
	assert.Contains(t, output, "(5 more variables)")
	assert.NotContains(t, output, "--token-19")
}

func TestRenderHarmony_Header(t *testing.T) {
	base := colour.RGB{R: 0x3b, G: 0x82, B: 0xf6}
	output := tui.RenderHarmony(base, harmony.Schemes, harmony.DefaultBrandPalette)
	assert.Contains(t, output, "Color Harmony")
	assert.Contains(t, output, "#3b82f6")
	assert.Contains(t, output, "hue 217°")
}

func TestRenderHarmony_AllSchemes(t *testing.T) {
	base := colour.RGB{R: 0x3b, G: 0x82, B: 0xf6}
	output := tui.RenderHarmony(base, harmony.Schemes, harmony.DefaultBrandPalette)
	assert.Contains(t, output, "complementary")
	assert.Contains(t, output, "analogous")
	assert.Contains(t, output, "triadic")
	assert.Contains(t, output, "split-complementary")
	assert.Contains(t, output, "tetradic")
}

func TestRenderHarmony_SingleScheme(t *testing.T) {
	base := colour.RGB{R: 0x3b, G: 0x82, B: 0xf6}
	output := tui.RenderHarmony(base, []harmony.Scheme{harmony.SchemeTriadic}, harmony.DefaultBrandPalette)
	assert.Contains(t, output, "triadic")
	assert.NotContains(t, output, "tetradic")
}

func TestRenderHarmony_BrandMatch(t *testing.T) {
	base := colour.RGB{R: 0x3b, G: 0x82, B: 0xf6}
	output := tui.RenderHarmony(base, harmony.Schemes, harmony.DefaultBrandPalette)
	assert.Contains(t, output, "Closest brand slot")
	assert.Contains(t, output, "(primary, distance 0.0)")
}
