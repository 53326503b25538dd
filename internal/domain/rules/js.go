package rules

import (
	"fmt"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/markup"
)

func duplicateScripts(scan *markup.ScanResult, _ domain.Thresholds) *domain.AuditIssue {
	dups := scan.DuplicateScriptURLs()
	if len(dups) == 0 {
		return nil
	}
	return &domain.AuditIssue{
		ID:       "duplicate-scripts",
		Category: domain.CategoryJavaScript,
		Severity: domain.SeverityCritical,
		Title:    "Duplicate script includes",
		Description: fmt.Sprintf("%d script URL(s) are included more than once; each copy is parsed and executed again.",
			len(dups)),
		Examples:       dups,
		Recommendation: "Remove the repeated <script> tags; each script should load exactly once.",
		Difficulty:     domain.DifficultyEasy,
		Impact:         domain.ImpactHigh,
	}
}

func scriptFragmentation(scan *markup.ScanResult, t domain.Thresholds) *domain.AuditIssue {
	linked := scan.LinkedScripts()
	if len(linked) <= t.MaxScripts {
		return nil
	}
	urls := make([]string, len(linked))
	for i, a := range linked {
		urls[i] = a.URL
	}
	return &domain.AuditIssue{
		ID:       "script-fragmentation",
		Category: domain.CategoryJavaScript,
		Severity: domain.SeverityWarning,
		Title:    "Too many script files",
		Description: fmt.Sprintf("%d script files are loaded; more than %d suggests JavaScript is fragmented across sources.",
			len(linked), t.MaxScripts),
		Examples:       firstN(urls, 3),
		Recommendation: "Bundle application scripts so the page loads fewer files.",
		Difficulty:     domain.DifficultyMedium,
		Impact:         domain.ImpactHigh,
	}
}

func unminifiedJS(scan *markup.ScanResult, _ domain.Thresholds) *domain.AuditIssue {
	var plain []string
	for _, a := range scan.LinkedScripts() {
		if !a.IsMinified {
			plain = append(plain, a.URL)
		}
	}
	if len(plain) == 0 {
		return nil
	}
	return &domain.AuditIssue{
		ID:       "unminified-js",
		Category: domain.CategoryJavaScript,
		Severity: domain.SeverityInfo,
		Title:    "Unminified JavaScript",
		Description: fmt.Sprintf("%d script(s) are served without a .min.js name and are likely unminified.",
			len(plain)),
		Examples:       firstN(plain, 3),
		Recommendation: "Minify production scripts as part of the build.",
		Difficulty:     domain.DifficultyEasy,
		Impact:         domain.ImpactMedium,
	}
}

func inlineScripts(scan *markup.ScanResult, _ domain.Thresholds) *domain.AuditIssue {
	if scan.InlineScripts == 0 {
		return nil
	}
	return &domain.AuditIssue{
		ID:       "inline-scripts",
		Category: domain.CategoryJavaScript,
		Severity: domain.SeverityInfo,
		Title:    "Inline scripts",
		Description: fmt.Sprintf("%d inline <script> block(s) embed code in the page instead of a cacheable file.",
			scan.InlineScripts),
		Recommendation: "Move inline code into external script files; keep only bootstrapping snippets inline.",
		Difficulty:     domain.DifficultyMedium,
		Impact:         domain.ImpactLow,
	}
}
