package domain

import "context"

// PageFetcher retrieves the raw body of a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// AuditHistory stores past audit outcomes per URL.
type AuditHistory interface {
	Save(url string, entry HistoryEntry) error
	// Load returns the stored entries for a URL, oldest first.
	// A URL with no history returns (nil, nil).
	Load(url string) ([]HistoryEntry, error)
}

// PageCache stores fetched bodies between requests for the same URL.
// Load returns (nil, nil) when the URL is missing or stale.
type PageCache interface {
	Load(url string) ([]byte, error)
	Save(url string, body []byte) error
}
