package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sitescore/sitescore/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	critTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderAudit formats a consistency audit for terminal output.
func RenderAudit(result *domain.AuditResult) string {
	var b strings.Builder

	// ── Header ──
	grade := result.Grade()
	title := headerStyle.Render("sitescore")
	subtitle := dimStyle.Render(result.URL)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", result.OverallScore))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Category scores ──
	renderCategory(&b, "CSS", result.CSSScore)
	renderCategory(&b, "JavaScript", result.JSScore)

	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render(statsLine(result.Stats)))
	b.WriteString("\n\n  ")
	b.WriteString(separatorLine)
	b.WriteString("\n\n")

	// ── Issues ──
	if len(result.Issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if result.Summary.Critical > 0 {
		b.WriteString(critTagStyle.Render(fmt.Sprintf("%d critical", result.Summary.Critical)))
		b.WriteString("  ")
	}
	if result.Summary.Warning > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", result.Summary.Warning)))
		b.WriteString("  ")
	}
	if result.Summary.Info > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", result.Summary.Info)))
	}
	b.WriteString("\n\n")

	for _, issue := range sortedBySeverity(result.Issues) {
		renderIssue(&b, issue)
	}

	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, name string, score int) {
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%d", score))
	bar := coloredBar(score, 20)
	styled := catNameStyle.Render(padRight(name, 14))
	fmt.Fprintf(b, "  %s %s  %s\n", styled, bar, scoreText)
}

func statsLine(s domain.PageStats) string {
	return fmt.Sprintf("%d stylesheets · %d scripts · %d inline styles · %d classes",
		s.Stylesheets, s.Scripts, s.InlineStyles, s.ClassNames)
}

func renderIssue(b *strings.Builder, issue domain.AuditIssue) {
	fmt.Fprintf(b, "    %s %s\n", severityTag(issue.Severity), titleStyle.Render(issue.Title))
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(issue.Description))
	for _, ex := range issue.Examples {
		fmt.Fprintf(b, "           %s\n", faintStyle.Render(ex))
	}
	fmt.Fprintf(b, "         %s\n", dimStyle.Render("fix: "+issue.Recommendation))
}

func severityTag(severity domain.Severity) string {
	switch severity {
	case domain.SeverityCritical:
		return critTagStyle.Render("crit ")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

// sortedBySeverity orders a copy for display; the result itself keeps
// rule order so JSON output stays diff-stable.
func sortedBySeverity(issues []domain.AuditIssue) []domain.AuditIssue {
	order := map[domain.Severity]int{
		domain.SeverityCritical: 0,
		domain.SeverityWarning:  1,
		domain.SeverityInfo:     2,
	}
	sorted := append([]domain.AuditIssue(nil), issues...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && order[sorted[j].Severity] < order[sorted[j-1].Severity]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

// RenderHistory formats past audits of a URL for terminal output.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Audit History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.OverallScore)).
			Render(fmt.Sprintf("%d/100", e.OverallScore))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(e.Timestamp.Format("2006-01-02")),
			faintStyle.Render(fmt.Sprintf("css %3d  js %3d", e.CSSScore, e.JSScore)),
			scoreStyled,
			domain.GradeFor(e.OverallScore),
		)

		if i > 0 {
			diff := e.OverallScore - entries[i-1].OverallScore
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
