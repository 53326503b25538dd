package application_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitescore/sitescore/internal/application"
	"github.com/sitescore/sitescore/internal/domain"
)

// stubFetcher serves canned pages keyed by URL and records every fetch.
type stubFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	calls []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()

	body, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("no response for %s", url)
	}
	return []byte(body), nil
}

func (f *stubFetcher) fetched(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == url {
			return true
		}
	}
	return false
}

type stubHistory struct {
	entries  map[string][]domain.HistoryEntry
	failSave bool
}

func (h *stubHistory) Save(url string, e domain.HistoryEntry) error {
	if h.failSave {
		return errors.New("disk full")
	}
	if h.entries == nil {
		h.entries = map[string][]domain.HistoryEntry{}
	}
	h.entries[url] = append(h.entries[url], e)
	return nil
}

func (h *stubHistory) Load(url string) ([]domain.HistoryEntry, error) {
	return h.entries[url], nil
}

const messyPage = `<html><head>
<link rel="stylesheet" href="/css/one.css">
<script src="/js/app.js"></script>
<script src="/js/app.js"></script>
</head><body></body></html>`

func TestAuditService_AuditURL(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{"https://example.com": messyPage}}
	history := &stubHistory{}
	svc := application.NewAuditService(fetcher, history, domain.DefaultConfig())

	result, err := svc.AuditURL(context.Background(), "example.com")
	require.NoError(t, err)

	// bare hostnames are normalized before the fetch
	assert.Equal(t, "https://example.com", result.URL)
	assert.True(t, fetcher.fetched("https://example.com"))

	// duplicate script, unminified css/js and blocking scripts
	assert.Equal(t, 95, result.CSSScore)
	assert.Equal(t, 75, result.JSScore)
	assert.Equal(t, 85, result.OverallScore)
	assert.Equal(t, 4, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Critical)

	assert.Equal(t, 1, result.Stats.Stylesheets)
	assert.Equal(t, 2, result.Stats.Scripts)

	saved := history.entries["https://example.com"]
	require.Len(t, saved, 1)
	assert.Equal(t, result.OverallScore, saved[0].OverallScore)
	assert.Equal(t, len(result.Issues), saved[0].Issues)
}

func TestAuditService_FetchFailure(t *testing.T) {
	svc := application.NewAuditService(&stubFetcher{}, nil, domain.DefaultConfig())

	_, err := svc.AuditURL(context.Background(), "https://unreachable.test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching")
	assert.Contains(t, err.Error(), "unreachable.test")
}

func TestAuditService_HistorySaveFailureIsIgnored(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{"https://example.com": messyPage}}
	svc := application.NewAuditService(fetcher, &stubHistory{failSave: true}, domain.DefaultConfig())

	result, err := svc.AuditURL(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, 85, result.OverallScore)
}

func TestAuditService_History(t *testing.T) {
	history := &stubHistory{entries: map[string][]domain.HistoryEntry{
		"https://example.com": {{URL: "https://example.com", OverallScore: 90}},
	}}
	svc := application.NewAuditService(&stubFetcher{}, history, domain.DefaultConfig())

	entries, err := svc.History("example.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 90, entries[0].OverallScore)

	entries, err = svc.History("https://never-audited.test")
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestAuditService_NoHistoryConfigured(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{"https://example.com": messyPage}}
	svc := application.NewAuditService(fetcher, nil, domain.DefaultConfig())

	_, err := svc.AuditURL(context.Background(), "example.com")
	require.NoError(t, err)

	entries, err := svc.History("example.com")
	require.NoError(t, err)
	assert.Nil(t, entries)
}
