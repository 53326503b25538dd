package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sitescore/sitescore/internal/domain/colour"
	"github.com/sitescore/sitescore/internal/domain/cssvars"
	"github.com/sitescore/sitescore/internal/domain/harmony"
)

const paletteMaxRows = 15

// RenderPalette produces a terminal listing of a page's CSS custom
// properties, grouped by mode.
func RenderPalette(url string, p cssvars.Palette) string {
	if p.Empty() {
		return "\n  " + dimStyle.Render("No CSS custom properties found.") + "\n\n"
	}

	var b strings.Builder

	title := headerStyle.Render("sitescore")
	subtitle := dimStyle.Render(url)
	total := len(p.Light) + len(p.Dark) + len(p.Shared)
	stats := dimStyle.Render(fmt.Sprintf(
		"%d variables  ·  %d light  ·  %d dark  ·  %d shared",
		total, len(p.Light), len(p.Dark), len(p.Shared)))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + stats))
	b.WriteString("\n")

	renderVarSection(&b, "Light", p.Light)
	renderVarSection(&b, "Dark", p.Dark)
	renderVarSection(&b, "Shared", p.Shared)

	return b.String()
}

func renderVarSection(b *strings.Builder, title string, vars []cssvars.Variable) {
	if len(vars) == 0 {
		return
	}

	b.WriteString("\n  " + sectionHeaderStyle.Render(title) + "\n")

	shown := paletteMaxRows
	if len(vars) < shown {
		shown = len(vars)
	}

	for _, v := range vars[:shown] {
		name := truncateOrPad("--"+v.Name, 28)
		fmt.Fprintf(b, "    %s %s %s  %s\n",
			valueChip(v),
			titleStyle.Render(name),
			dimStyle.Render(truncateOrPad(v.Value, 24)),
			faintStyle.Render(string(v.Type)),
		)
	}

	remaining := len(vars) - shown
	if remaining > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("    (%d more variables)\n", remaining)))
	}
}

// valueChip shows color values as a filled swatch and everything else
// as a neutral dot.
func valueChip(v cssvars.Variable) string {
	if v.Type != cssvars.TypeColor {
		return dimStyle.Render("·")
	}
	c, ok := colour.ParseColor(v.Value)
	if !ok {
		return dimStyle.Render("·")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█")
}

// RenderHarmony renders the hue companions of a base color for each
// scheme, plus its nearest brand slot.
func RenderHarmony(base colour.RGB, schemes []harmony.Scheme, brand harmony.BrandPalette) string {
	var b strings.Builder

	title := headerStyle.Render("Color Harmony")
	baseLine := colorChip(base) + " " + lipgloss.NewStyle().Bold(true).Foreground(fg).Render(base.Hex())
	hsl := base.HSL()
	stats := dimStyle.Render(fmt.Sprintf("hue %.0f°  ·  saturation %.0f%%  ·  lightness %.0f%%",
		hsl.H, hsl.S, hsl.L))

	b.WriteString(boxStyle.Render(title + "\n\n" + baseLine + "\n" + stats))
	b.WriteString("\n")

	for _, scheme := range schemes {
		b.WriteString("\n  " + sectionHeaderStyle.Render(string(scheme)) + "\n    ")
		for _, c := range harmony.Related(base, scheme) {
			b.WriteString(colorChip(c) + " " + dimStyle.Render(c.Hex()) + "  ")
		}
		b.WriteString("\n")
	}

	match := harmony.ClosestBrandColor(base, brand)
	b.WriteString("\n  " + titleStyle.Render("Closest brand slot") + "\n")
	fmt.Fprintf(&b, "    %s %s %s\n",
		colorChip(match.Color),
		dimStyle.Render(match.Hex),
		faintStyle.Render(fmt.Sprintf("(%s, distance %.1f)", match.Slot, match.Distance)),
	)

	return b.String()
}

func colorChip(c colour.RGB) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
}

func truncateOrPad(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return padRight(s, width)
}
