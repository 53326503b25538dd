package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/cssvars"
	"github.com/sitescore/sitescore/internal/domain/markup"
)

// VariablesService extracts the CSS custom properties of a page,
// pulling in every linked stylesheet alongside the embedded style
// blocks.
type VariablesService struct {
	fetcher domain.PageFetcher
	config  domain.Config
	logger  hclog.Logger
}

func NewVariablesService(fetcher domain.PageFetcher, cfg domain.Config, logger hclog.Logger) *VariablesService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &VariablesService{fetcher: fetcher, config: cfg, logger: logger}
}

// ExtractURL fetches the page, then all of its stylesheets, and
// partitions every custom property found. Stylesheets are fetched
// concurrently; one that cannot be fetched is logged and skipped so the
// remaining sheets still contribute.
func (s *VariablesService) ExtractURL(ctx context.Context, rawURL string) (*cssvars.Palette, error) {
	pageURL := NormalizeURL(rawURL)

	// 1. Fetch the page
	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	scan := markup.Scan(string(body))

	// 2. Fetch linked stylesheets. Each goroutine writes its own slot,
	// so no mutex is needed.
	sheets := scan.LinkedStylesheets()
	texts := make([]string, len(scan.StyleContents)+len(sheets))
	copy(texts, scan.StyleContents)

	g, gctx := errgroup.WithContext(ctx)
	for i, sheet := range sheets {
		slot := len(scan.StyleContents) + i
		href := resolveURL(pageURL, sheet.URL)
		g.Go(func() error {
			css, err := s.fetcher.Fetch(gctx, href)
			if err != nil {
				s.logger.Warn("skipping stylesheet", "url", href, "error", err)
				return nil
			}
			texts[slot] = string(css)
			return nil
		})
	}
	_ = g.Wait() // fetch failures are swallowed above

	// 3. Partition custom properties
	palette := cssvars.ExtractWithSelectors(strings.Join(texts, "\n"), s.config.Contrast.DarkSelectors)
	return &palette, nil
}
