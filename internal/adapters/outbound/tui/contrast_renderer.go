package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sitescore/sitescore/internal/domain/contrast"
	"github.com/sitescore/sitescore/internal/domain/suggest"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderContrastReport renders an accessibility audit as a styled TUI
// string.
func RenderContrastReport(report *contrast.Report) string {
	var b strings.Builder

	title := headerStyle.Render("sitescore")
	subtitle := dimStyle.Render(report.URL)
	aaStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(percentColor(report.WCAGAA.Percent)).
		Render(fmt.Sprintf("WCAG AA %.0f%%", report.WCAGAA.Percent))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + aaStyled))
	b.WriteString("\n")

	renderModeSection(&b, "Light mode", report.LightMode)
	renderModeSection(&b, "Dark mode", report.DarkMode)

	b.WriteString("\n  ")
	b.WriteString(hintStyle.Render(report.Summary))
	b.WriteString("\n")

	return b.String()
}

func renderModeSection(b *strings.Builder, title string, mode contrast.ModeReport) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d pairs)", mode.TotalPairs)),
	)

	renderLevelLine(b, "AA ", mode.AA)
	renderLevelLine(b, "AAA", mode.AAA)

	for _, issue := range mode.Issues {
		fmt.Fprintf(b, "    %s %s  %s\n",
			failStyle.Render("●"),
			titleStyle.Render(issue.Element),
			dimStyle.Render(fmt.Sprintf("%s on %s is %.2f:1", issue.Foreground, issue.Background, issue.Ratio)),
		)
		if best := bestFix(issue.SuggestedFixes); best != nil {
			fmt.Fprintf(b, "      %s\n",
				faintStyle.Render(fmt.Sprintf("try %s (%.2f:1, %s)", best.Preview.Suggested, best.Ratio, best.Strategy)))
		}
	}
}

func renderLevelLine(b *strings.Builder, name string, stats contrast.LevelStats) {
	bar := coloredBar(int(stats.Percent), 20)
	pct := lipgloss.NewStyle().Bold(true).Foreground(percentColor(stats.Percent)).
		Render(fmt.Sprintf("%.0f%%", stats.Percent))
	counts := dimStyle.Render(fmt.Sprintf("%d pass, %d fail", stats.Pass, stats.Fail))
	fmt.Fprintf(b, "    %s %s  %s  %s\n", catNameStyle.Render(name), bar, pct, counts)
}

// bestFix mirrors the preference the remediation search itself applies,
// so the terminal shows the same pick the JSON marks best.
func bestFix(fixes []suggest.Suggestion) *suggest.Suggestion {
	for i := range fixes {
		if fixes[i].Strategy == suggest.StrategyHybrid {
			return &fixes[i]
		}
	}
	if len(fixes) > 0 {
		return &fixes[0]
	}
	return nil
}

func percentColor(pct float64) lipgloss.Color {
	switch {
	case pct >= 90:
		return success
	case pct >= 80:
		return lipgloss.Color("#A3E635") // lime
	case pct >= 50:
		return warning
	default:
		return danger
	}
}

// RenderSuggestions formats remediation candidates for one color pair.
func RenderSuggestions(fg, bg string, suggestions []suggest.Suggestion) string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Fixes for %s on %s", fg, bg)))
	b.WriteString("\n  ")
	b.WriteString(faintStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n\n")

	if len(suggestions) == 0 {
		b.WriteString("  " + dimStyle.Render("No adjustment within bounds reaches the target ratio.") + "\n")
		return b.String()
	}

	for _, s := range suggestions {
		level := passStyle.Render(string(s.WCAGLevel))
		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			swatch(s.Foreground, s.Background),
			titleStyle.Render(padRight(string(s.Strategy), 14)),
			level,
			dimStyle.Render(fmt.Sprintf("%s  %.2f:1  +%.0f%%", s.Preview.Suggested, s.Ratio, s.ImprovementPct)),
		)
	}

	return b.String()
}

// swatch renders a two-cell preview of the pair's actual colors.
func swatch(fg, bg string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Render(" Aa ")
}
