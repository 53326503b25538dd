package rules

import (
	"fmt"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/markup"
)

func cssFragmentation(scan *markup.ScanResult, t domain.Thresholds) *domain.AuditIssue {
	linked := scan.LinkedStylesheets()
	if len(linked) <= t.MaxStylesheets {
		return nil
	}
	urls := make([]string, len(linked))
	for i, a := range linked {
		urls[i] = a.URL
	}
	return &domain.AuditIssue{
		ID:       "css-fragmentation",
		Category: domain.CategoryCSS,
		Severity: domain.SeverityWarning,
		Title:    "Too many stylesheets",
		Description: fmt.Sprintf("%d stylesheet files are loaded; more than %d suggests styling is fragmented across sources.",
			len(linked), t.MaxStylesheets),
		Examples:       firstN(urls, 3),
		Recommendation: "Consolidate stylesheets into one or two bundles so styles ship in fewer requests and stay consistent.",
		Difficulty:     domain.DifficultyMedium,
		Impact:         domain.ImpactHigh,
	}
}

func inlineStyles(scan *markup.ScanResult, t domain.Thresholds) *domain.AuditIssue {
	if scan.InlineStyles == 0 {
		return nil
	}
	severity := domain.SeverityInfo
	if scan.InlineStyles > t.InlineStyleWarn {
		severity = domain.SeverityWarning
	}
	return &domain.AuditIssue{
		ID:       "inline-styles",
		Category: domain.CategoryCSS,
		Severity: severity,
		Title:    "Inline style blocks",
		Description: fmt.Sprintf("%d inline <style> block(s) embed CSS in the page instead of a cacheable stylesheet.",
			scan.InlineStyles),
		Recommendation: "Move inline styles into the site stylesheet so they are cached and shared across pages.",
		Difficulty:     domain.DifficultyEasy,
		Impact:         domain.ImpactMedium,
	}
}

func unminifiedCSS(scan *markup.ScanResult, _ domain.Thresholds) *domain.AuditIssue {
	var plain []string
	for _, a := range scan.LinkedStylesheets() {
		if !a.IsMinified {
			plain = append(plain, a.URL)
		}
	}
	if len(plain) == 0 {
		return nil
	}
	return &domain.AuditIssue{
		ID:       "unminified-css",
		Category: domain.CategoryCSS,
		Severity: domain.SeverityInfo,
		Title:    "Unminified CSS",
		Description: fmt.Sprintf("%d stylesheet(s) are served without a .min.css name and are likely unminified.",
			len(plain)),
		Examples:       firstN(plain, 3),
		Recommendation: "Minify production stylesheets as part of the build.",
		Difficulty:     domain.DifficultyEasy,
		Impact:         domain.ImpactMedium,
	}
}
