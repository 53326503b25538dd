package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sitescore/sitescore/internal/domain"
)

const (
	historyDir = ".sitescore/history"
	// maxEntries bounds each URL's file so repeated audits of a
	// long-lived site do not grow it without limit.
	maxEntries = 20
)

// FileHistory implements domain.AuditHistory with one JSON file per
// audited URL.
type FileHistory struct {
	root string
}

// New creates a FileHistory rooted at dir, usually the working
// directory.
func New(dir string) *FileHistory {
	return &FileHistory{root: dir}
}

func (h *FileHistory) Save(url string, entry domain.HistoryEntry) error {
	entries, err := h.Load(url)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	fp := h.path(url)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(url string) ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(h.path(url))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// path keys the file by a hash of the URL so any URL maps to a safe
// file name.
func (h *FileHistory) path(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(h.root, historyDir, hex.EncodeToString(sum[:8])+".json")
}
