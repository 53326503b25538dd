// Package contrast audits foreground/background color pairs against
// the WCAG AA and AAA thresholds, reporting light and dark mode
// separately and attaching remediation candidates to every failure.
package contrast

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/colour"
	"github.com/sitescore/sitescore/internal/domain/cssvars"
	"github.com/sitescore/sitescore/internal/domain/markup"
	"github.com/sitescore/sitescore/internal/domain/suggest"
	"github.com/sitescore/sitescore/internal/domain/wcag"
)

// Issue is one color pair that fails WCAG AA. Passing pairs are
// counted but never reported as issues.
type Issue struct {
	Element        string               `json:"element"`
	Foreground     string               `json:"foreground"`
	Background     string               `json:"background"`
	Ratio          float64              `json:"ratio"`
	WCAGAA         bool                 `json:"wcag_aa"`
	WCAGAAA        bool                 `json:"wcag_aaa"`
	TextSize       domain.TextSize      `json:"text_size"`
	Mode           domain.Mode          `json:"mode"`
	Recommendation string               `json:"recommendation"`
	SuggestedFixes []suggest.Suggestion `json:"suggested_fixes"`
}

// LevelStats counts the pairs passing and failing one conformance
// level. Percent is the pass rate, one decimal; an empty pair set
// counts as fully passing.
type LevelStats struct {
	Pass    int     `json:"pass"`
	Fail    int     `json:"fail"`
	Percent float64 `json:"percent"`
}

// ModeReport is the audit of one color-scheme context.
type ModeReport struct {
	Mode       domain.Mode `json:"mode"`
	TotalPairs int         `json:"total_pairs"`
	AA         LevelStats  `json:"wcag_aa"`
	AAA        LevelStats  `json:"wcag_aaa"`
	Issues     []Issue     `json:"issues"`
}

// Report is the accessibility audit for one page. ContrastIssues,
// WCAGAA and WCAGAAA flatten both modes for consumers that predate the
// per-mode reports.
type Report struct {
	URL           string     `json:"url"`
	Timestamp     time.Time  `json:"timestamp"`
	TotalElements int        `json:"total_elements"`
	LightMode     ModeReport `json:"light_mode"`
	DarkMode      ModeReport `json:"dark_mode"`
	Summary       string     `json:"summary"`

	ContrastIssues []Issue    `json:"contrast_issues"`
	WCAGAA         LevelStats `json:"wcag_aa"`
	WCAGAAA        LevelStats `json:"wcag_aaa"`
}

// Dark-theme element colors audited for every page, so reports carry a
// dark baseline even when the page declares no dark styles of its own.
var syntheticDarkPairs = []domain.ColorPair{
	{Element: "body", Foreground: "#ffffff", Background: "#121212", TextSize: domain.TextSizeNormal},
	{Element: "p", Foreground: "#e0e0e0", Background: "#121212", TextSize: domain.TextSizeNormal},
	{Element: "h1", Foreground: "#ffffff", Background: "#1e1e1e", TextSize: domain.TextSizeLarge},
	{Element: "a", Foreground: "#90caf9", Background: "#121212", TextSize: domain.TextSizeNormal},
	{Element: "button", Foreground: "#121212", Background: "#90caf9", TextSize: domain.TextSizeNormal},
	{Element: "span", Foreground: "#9e9e9e", Background: "#1e1e1e", TextSize: domain.TextSizeNormal},
}

// Defaults assumed when a dark-scoped rule declares only one side of a
// color pair.
const (
	darkDefaultFg = "#ffffff"
	darkDefaultBg = "#121212"
)

// Audit evaluates the scan's light-mode pairs and a dark-mode set
// combining common dark-theme defaults with pairs declared in the
// page's own dark-scoped style blocks. Unparseable color values are
// skipped, never fatal.
func Audit(url string, scan *markup.ScanResult, cfg domain.ContrastConfig) Report {
	light := auditPairs(scan.ColorPairs, domain.ModeLight, cfg.TargetRatio)
	dark := auditPairs(darkPairs(scan, cfg.DarkSelectors), domain.ModeDark, cfg.TargetRatio)

	rep := Report{
		URL:           url,
		Timestamp:     time.Now().UTC(),
		TotalElements: len(scan.ColorPairs),
		LightMode:     light,
		DarkMode:      dark,
		Summary:       summarize(light, dark),
	}
	rep.ContrastIssues = append(append([]Issue{}, light.Issues...), dark.Issues...)
	rep.WCAGAA = mergeStats(light.AA, dark.AA)
	rep.WCAGAAA = mergeStats(light.AAA, dark.AAA)
	return rep
}

// AuditPairs evaluates an explicit pair list in one mode. The contrast
// command uses it to check caller-supplied colors without a page scan.
func AuditPairs(pairs []domain.ColorPair, mode domain.Mode, target float64) ModeReport {
	return auditPairs(pairs, mode, target)
}

func auditPairs(pairs []domain.ColorPair, mode domain.Mode, target float64) ModeReport {
	rep := ModeReport{Mode: mode}
	for _, p := range pairs {
		fg, okFg := colour.ParseColor(p.Foreground)
		bg, okBg := colour.ParseColor(p.Background)
		if !okFg || !okBg {
			continue
		}
		rep.TotalPairs++

		ratio := colour.ContrastRatio(fg, bg)
		aa := wcag.Meets(ratio, wcag.LevelAA, p.TextSize)
		aaa := wcag.Meets(ratio, wcag.LevelAAA, p.TextSize)
		rep.AA.count(aa)
		rep.AAA.count(aaa)
		if aa {
			continue
		}

		rep.Issues = append(rep.Issues, Issue{
			Element:        p.Element,
			Foreground:     fg.Hex(),
			Background:     bg.Hex(),
			Ratio:          round2(ratio),
			WCAGAA:         aa,
			WCAGAAA:        aaa,
			TextSize:       p.TextSize,
			Mode:           mode,
			Recommendation: recommend(p.Element, ratio, p.TextSize),
			SuggestedFixes: suggest.Generate(fg, bg, p.TextSize, target),
		})
	}
	rep.AA.finish(rep.TotalPairs)
	rep.AAA.finish(rep.TotalPairs)
	return rep
}

// darkPairs builds the dark-mode audit set: the synthetic baseline plus
// every color declaration found in dark-scoped blocks of the page's
// embedded styles.
func darkPairs(scan *markup.ScanResult, extraSelectors []string) []domain.ColorPair {
	pairs := append([]domain.ColorPair(nil), syntheticDarkPairs...)
	for _, css := range scan.StyleContents {
		for _, rule := range cssvars.DarkRules(css, extraSelectors) {
			fg, bg := markup.ColorDeclarations(rule.Body)
			if fg == "" && bg == "" {
				continue
			}
			if fg == "" {
				fg = darkDefaultFg
			}
			if bg == "" {
				bg = darkDefaultBg
			}
			sel := strings.TrimSpace(rule.Selector)
			pairs = append(pairs, domain.ColorPair{
				Element:    sel,
				Foreground: fg,
				Background: bg,
				TextSize:   markup.TextSizeFor(strings.ToLower(sel)),
			})
		}
	}
	return pairs
}

func recommend(element string, ratio float64, size domain.TextSize) string {
	return fmt.Sprintf("Raise the %s contrast from %.2f:1 to at least %.1f:1.",
		element, ratio, wcag.MinRatio(wcag.LevelAA, size))
}

// summarize compares the AA pass rates of the two modes.
func summarize(light, dark ModeReport) string {
	lp, dp := light.AA.Percent, dark.AA.Percent
	switch {
	case lp >= 90 && dp >= 90:
		return "Contrast is excellent in both light and dark mode."
	case lp >= 80 && dp >= 80:
		return "Contrast is good in both light and dark mode."
	case lp >= 80:
		return "Light mode passes but dark mode needs improvement."
	case dp >= 80:
		return "Dark mode passes but light mode needs improvement."
	default:
		return "Both light and dark mode need contrast improvement."
	}
}

func (s *LevelStats) count(pass bool) {
	if pass {
		s.Pass++
	} else {
		s.Fail++
	}
}

func (s *LevelStats) finish(total int) {
	s.Percent = pct(s.Pass, total)
}

func mergeStats(a, b LevelStats) LevelStats {
	out := LevelStats{Pass: a.Pass + b.Pass, Fail: a.Fail + b.Fail}
	out.Percent = pct(out.Pass, out.Pass+out.Fail)
	return out
}

func pct(pass, total int) float64 {
	if total == 0 {
		return 100
	}
	return math.Round(float64(pass)/float64(total)*1000) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
