// Package rules turns scanned markup facts into scored, categorized
// audit issues.
//
// Every rule is a pure function of the scan result: no rule reads
// another rule's output, so the set can be evaluated in any order. The
// report order is fixed by declaration, not severity, so diffs between
// runs stay stable.
package rules

import (
	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/markup"
)

type ruleFunc func(*markup.ScanResult, domain.Thresholds) *domain.AuditIssue

// ruleOrder fixes report ordering. IDs are stable keys downstream
// tooling branches on; never rename them.
var ruleOrder = []ruleFunc{
	cssFragmentation,
	inlineStyles,
	unminifiedCSS,
	inconsistentNaming,
	duplicateScripts,
	scriptFragmentation,
	unminifiedJS,
	inlineScripts,
	assetCount,
	blockingScripts,
}

// Evaluate runs every rule against the scan, in declaration order.
func Evaluate(scan *markup.ScanResult, t domain.Thresholds) []domain.AuditIssue {
	var issues []domain.AuditIssue
	for _, rule := range ruleOrder {
		if issue := rule(scan, t); issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}

// Severity penalties subtracted from a category's starting score of 100.
func penalty(s domain.Severity) int {
	switch s {
	case domain.SeverityCritical:
		return 20
	case domain.SeverityWarning:
		return 10
	case domain.SeverityInfo:
		return 5
	}
	return 0
}

// Scores derives the CSS and JavaScript category scores from the issue
// list. Only issues in those two categories move the scores; the
// performance and best-practice categories are advisory.
func Scores(issues []domain.AuditIssue) (cssScore, jsScore int) {
	cssScore, jsScore = 100, 100
	for _, issue := range issues {
		switch issue.Category {
		case domain.CategoryCSS:
			cssScore -= penalty(issue.Severity)
		case domain.CategoryJavaScript:
			jsScore -= penalty(issue.Severity)
		}
	}
	if cssScore < 0 {
		cssScore = 0
	}
	if jsScore < 0 {
		jsScore = 0
	}
	return cssScore, jsScore
}

// firstN copies up to n example strings for an issue.
func firstN(urls []string, n int) []string {
	if len(urls) <= n {
		return urls
	}
	return urls[:n]
}
