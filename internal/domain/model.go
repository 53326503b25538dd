// Package domain contains the core model for website markup audits.
// It has no outward dependencies; adapters depend on it, never the
// other way around.
package domain

import "time"

// Severity ranks how strongly an issue degrades the audited page.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Category groups issues by the surface they affect. Only CSS and
// JavaScript feed the category scores; the other two are advisory.
type Category string

const (
	CategoryCSS          Category = "css"
	CategoryJavaScript   Category = "javascript"
	CategoryPerformance  Category = "performance"
	CategoryBestPractice Category = "best-practice"
)

// Difficulty estimates the effort of applying a recommendation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Impact estimates how much applying a recommendation improves the page.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// TextSize is the WCAG size class of rendered text. Large text gets
// more lenient contrast thresholds than normal text.
type TextSize string

const (
	TextSizeNormal TextSize = "normal"
	TextSizeLarge  TextSize = "large"
)

// Mode names a color-scheme context of the page. ModeNone marks values
// that apply regardless of scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeNone  Mode = "none"
)

// AuditIssue is a single finding produced by the consistency rule engine.
type AuditIssue struct {
	ID             string     `json:"id"`
	Category       Category   `json:"category"`
	Severity       Severity   `json:"severity"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Examples       []string   `json:"examples,omitempty"`
	Recommendation string     `json:"recommendation"`
	Difficulty     Difficulty `json:"difficulty"`
	Impact         Impact     `json:"impact"`
}

// IssueSummary counts issues by severity.
type IssueSummary struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

// PageStats holds raw counts from the scanned markup, reported alongside
// the issues so users can sanity-check what the audit saw.
type PageStats struct {
	Stylesheets   int `json:"stylesheets"`
	ExternalCSS   int `json:"external_css"`
	InlineStyles  int `json:"inline_styles"`
	Scripts       int `json:"scripts"`
	ExternalJS    int `json:"external_js"`
	InlineScripts int `json:"inline_scripts"`
	ClassNames    int `json:"class_names"`
}

// AuditResult is the full outcome of a consistency audit for one page.
type AuditResult struct {
	URL          string       `json:"url"`
	Timestamp    time.Time    `json:"timestamp"`
	CSSScore     int          `json:"css_score"`
	JSScore      int          `json:"js_score"`
	OverallScore int          `json:"overall_score"`
	Issues       []AuditIssue `json:"issues"`
	Summary      IssueSummary `json:"summary"`
	Stats        PageStats    `json:"stats"`
}

func (r AuditResult) Grade() string { return GradeFor(r.OverallScore) }

// ColorPair is a foreground/background combination observed in markup.
// Color values are kept verbatim from the source; consumers parse them
// and skip pairs they cannot interpret.
type ColorPair struct {
	Element    string   `json:"element"`
	Foreground string   `json:"foreground"`
	Background string   `json:"background"`
	TextSize   TextSize `json:"text_size"`
}

// HistoryEntry is one stored audit outcome, kept for trend display.
type HistoryEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	URL          string    `json:"url"`
	CSSScore     int       `json:"css_score"`
	JSScore      int       `json:"js_score"`
	OverallScore int       `json:"overall_score"`
	Issues       int       `json:"issues"`
}

// Summarize tallies issues by severity.
func Summarize(issues []AuditIssue) IssueSummary {
	var s IssueSummary
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			s.Critical++
		case SeverityWarning:
			s.Warning++
		case SeverityInfo:
			s.Info++
		}
	}
	s.Total = len(issues)
	return s
}

// ComputeOverallScore combines the CSS and JavaScript scores into the
// overall page score.
func ComputeOverallScore(cssScore, jsScore int) int {
	return (cssScore + jsScore) / 2
}

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}
