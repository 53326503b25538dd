package application

import (
	"context"
	"fmt"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/contrast"
	"github.com/sitescore/sitescore/internal/domain/markup"
)

// AccessibilityService orchestrates the contrast audit:
// fetch page → scan color pairs → audit light and dark mode.
type AccessibilityService struct {
	fetcher domain.PageFetcher
	config  domain.Config
}

func NewAccessibilityService(fetcher domain.PageFetcher, cfg domain.Config) *AccessibilityService {
	return &AccessibilityService{fetcher: fetcher, config: cfg}
}

func (s *AccessibilityService) AuditURL(ctx context.Context, rawURL string) (*contrast.Report, error) {
	pageURL := NormalizeURL(rawURL)

	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	rep := contrast.Audit(pageURL, markup.Scan(string(body)), s.config.Contrast)
	return &rep, nil
}

// CheckPair audits one explicit color pair without fetching anything.
func (s *AccessibilityService) CheckPair(fg, bg string, size domain.TextSize) contrast.ModeReport {
	pair := domain.ColorPair{
		Element:    "text",
		Foreground: fg,
		Background: bg,
		TextSize:   size,
	}
	return contrast.AuditPairs([]domain.ColorPair{pair}, domain.ModeLight, s.config.Contrast.TargetRatio)
}
