// Package jsonfile persists popwire state as JSON files.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hay-kot/popwire/internal/core/journal"
)

// journalFile is the root JSON structure stored on disk.
type journalFile struct {
	Entries []journal.Entry `json:"entries"`
}

// JournalStore implements journal.Store using a JSON file for persistence.
type JournalStore struct {
	path       string
	maxEntries int
	mu         sync.RWMutex
}

// NewJournalStore creates a new JSON file journal at the given path.
// maxEntries limits stored entries (0 means unlimited).
func NewJournalStore(path string, maxEntries int) *JournalStore {
	return &JournalStore{path: path, maxEntries: maxEntries}
}

// List returns all entries, newest first.
func (s *JournalStore) List(ctx context.Context) ([]journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.load()
	if err != nil {
		return nil, err
	}

	return f.Entries, nil
}

// Get returns an entry by popup ID. Returns ErrNotFound if not found.
func (s *JournalStore) Get(ctx context.Context, id string) (journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.load()
	if err != nil {
		return journal.Entry{}, err
	}

	for _, entry := range f.Entries {
		if entry.ID == id {
			return entry, nil
		}
	}

	return journal.Entry{}, journal.ErrNotFound
}

// Save adds an entry, pruning old entries to stay within maxEntries.
func (s *JournalStore) Save(ctx context.Context, entry journal.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}

	f.Entries = append([]journal.Entry{entry}, f.Entries...)

	if s.maxEntries > 0 && len(f.Entries) > s.maxEntries {
		f.Entries = f.Entries[:s.maxEntries]
	}

	return s.save(f)
}

// Clear removes all entries.
func (s *JournalStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(journalFile{Entries: []journal.Entry{}})
}

// LastFailed returns the most recent failed entry. Returns ErrNotFound if none.
func (s *JournalStore) LastFailed(ctx context.Context) (journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.load()
	if err != nil {
		return journal.Entry{}, err
	}

	for _, entry := range f.Entries {
		if entry.Failed() {
			return entry, nil
		}
	}

	return journal.Entry{}, journal.ErrNotFound
}

// load reads the journal from disk. A missing or empty file is an empty
// journal.
func (s *JournalStore) load() (journalFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return journalFile{}, nil
		}
		return journalFile{}, fmt.Errorf("read journal: %w", err)
	}

	if len(data) == 0 {
		return journalFile{}, nil
	}

	var f journalFile
	if err := json.Unmarshal(data, &f); err != nil {
		return journalFile{}, fmt.Errorf("journal corrupted (run 'popwire journal --clear' to reset): %w", err)
	}

	return f, nil
}

// save writes the journal to disk atomically.
func (s *JournalStore) save(f journalFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write journal temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename journal: %w", err)
	}

	return nil
}
