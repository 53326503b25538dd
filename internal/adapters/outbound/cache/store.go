package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const cacheDir = ".sitescore/cache"

// Store is a file-based implementation of domain.PageCache. Each URL's
// body lives in its own JSON file and expires after the TTL, so a
// long-running process rereads a page at most once per window.
type Store struct {
	root string
	ttl  time.Duration
}

// New creates a page cache rooted at dir with the given time-to-live.
func New(dir string, ttl time.Duration) *Store {
	return &Store{root: dir, ttl: ttl}
}

type entry struct {
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"fetched_at"`
	Body      []byte    `json:"body"`
}

// Load reads a cached body from disk. Returns (nil, nil) when the URL
// was never cached or its entry has expired; expired entries are
// removed on the way out.
func (s *Store) Load(url string) ([]byte, error) {
	fp := s.path(url)
	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	if time.Since(e.FetchedAt) > s.ttl {
		_ = os.Remove(fp)
		return nil, nil
	}
	return e.Body, nil
}

// Save writes a fetched body to disk, creating directories as needed.
func (s *Store) Save(url string, body []byte) error {
	fp := s.path(url)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(entry{URL: url, FetchedAt: time.Now().UTC(), Body: body})
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

// path keys the file by a hash of the URL so any URL maps to a safe
// file name.
func (s *Store) path(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(s.root, cacheDir, hex.EncodeToString(sum[:8])+".json")
}
