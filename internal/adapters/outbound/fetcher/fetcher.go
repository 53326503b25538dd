// Package fetcher retrieves page and stylesheet content over HTTP.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sitescore/sitescore/internal/domain"
)

const (
	// userAgent identifies the auditor to the sites it fetches.
	userAgent = "sitescore/1.0 (+https://github.com/sitescore/sitescore)"

	defaultTimeout = 10 * time.Second
	defaultMaxBody = 2 << 20
)

// Fetcher implements domain.PageFetcher over HTTP.
type Fetcher struct {
	client  *http.Client
	maxBody int64
}

// New builds a fetcher from the fetch configuration, falling back to
// the defaults for zero values.
func New(cfg domain.FetchConfig) *Fetcher {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBody := int64(cfg.MaxBodyKB) * 1024
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		maxBody: maxBody,
	}
}

// Fetch retrieves the URL with the configured timeout. The body is
// capped at the configured size so one oversized page cannot exhaust
// memory; markup past the cap is simply not audited.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,text/css,*/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}

// CachedFetcher wraps a PageFetcher with read-through caching, for
// long-running processes that hit the same URL from several commands.
type CachedFetcher struct {
	inner domain.PageFetcher
	cache domain.PageCache
}

// NewCached wraps inner so bodies are served from cache while fresh.
func NewCached(inner domain.PageFetcher, cache domain.PageCache) *CachedFetcher {
	return &CachedFetcher{inner: inner, cache: cache}
}

// Fetch returns the cached body when one is fresh, fetching and caching
// otherwise. Cache write failures never fail the fetch.
func (f *CachedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if body, err := f.cache.Load(url); err == nil && body != nil {
		return body, nil
	}

	body, err := f.inner.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	_ = f.cache.Save(url, body)
	return body, nil
}
