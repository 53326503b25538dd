package rules

import (
	"fmt"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/markup"
)

func assetCount(scan *markup.ScanResult, t domain.Thresholds) *domain.AuditIssue {
	total := len(scan.LinkedStylesheets()) + len(scan.LinkedScripts())
	if total <= t.SoftAssetCeiling {
		return nil
	}
	severity := domain.SeverityWarning
	if total > t.HardAssetCeiling {
		severity = domain.SeverityCritical
	}
	return &domain.AuditIssue{
		ID:       "asset-count",
		Category: domain.CategoryPerformance,
		Severity: severity,
		Title:    "High asset count",
		Description: fmt.Sprintf("%d stylesheets and scripts are loaded in total (soft ceiling %d, hard ceiling %d).",
			total, t.SoftAssetCeiling, t.HardAssetCeiling),
		Recommendation: "Audit which assets the page actually needs and bundle or drop the rest.",
		Difficulty:     domain.DifficultyHard,
		Impact:         domain.ImpactHigh,
	}
}

func blockingScripts(scan *markup.ScanResult, _ domain.Thresholds) *domain.AuditIssue {
	var blocking []string
	for _, a := range scan.LinkedScripts() {
		if !a.IsDeferred {
			blocking = append(blocking, a.URL)
		}
	}
	if len(blocking) == 0 {
		return nil
	}
	return &domain.AuditIssue{
		ID:       "blocking-scripts",
		Category: domain.CategoryPerformance,
		Severity: domain.SeverityWarning,
		Title:    "Render-blocking scripts",
		Description: fmt.Sprintf("%d script(s) load without async or defer and block HTML parsing while they download.",
			len(blocking)),
		Examples:       firstN(blocking, 3),
		Recommendation: "Add defer (or async for independent scripts) so parsing continues while scripts download.",
		Difficulty:     domain.DifficultyEasy,
		Impact:         domain.ImpactMedium,
	}
}
