package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/markup"
	"github.com/sitescore/sitescore/internal/domain/rules"
)

// AuditService orchestrates the consistency audit pipeline:
// fetch page → scan markup → evaluate rules → score categories → record history.
type AuditService struct {
	fetcher domain.PageFetcher
	history domain.AuditHistory
	config  domain.Config
}

func NewAuditService(fetcher domain.PageFetcher, history domain.AuditHistory, cfg domain.Config) *AuditService {
	return &AuditService{fetcher: fetcher, history: history, config: cfg}
}

func (s *AuditService) AuditURL(ctx context.Context, rawURL string) (*domain.AuditResult, error) {
	pageURL := NormalizeURL(rawURL)

	// 1. Fetch the page
	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	// 2. Scan markup facts
	scan := markup.Scan(string(body))

	// 3. Run the rule set
	issues := rules.Evaluate(scan, s.config.Thresholds)

	// 4. Score categories
	cssScore, jsScore := rules.Scores(issues)

	result := &domain.AuditResult{
		URL:          pageURL,
		Timestamp:    time.Now().UTC(),
		CSSScore:     cssScore,
		JSScore:      jsScore,
		OverallScore: domain.ComputeOverallScore(cssScore, jsScore),
		Issues:       issues,
		Summary:      domain.Summarize(issues),
		Stats:        scan.Stats(),
	}

	// 5. Record history; a failed save never fails the audit
	if s.history != nil {
		_ = s.history.Save(pageURL, domain.HistoryEntry{
			Timestamp:    result.Timestamp,
			URL:          pageURL,
			CSSScore:     cssScore,
			JSScore:      jsScore,
			OverallScore: result.OverallScore,
			Issues:       len(issues),
		})
	}

	return result, nil
}

// History returns past audits of the URL, oldest first, or nil when the
// URL has never been audited.
func (s *AuditService) History(rawURL string) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Load(NormalizeURL(rawURL))
}
