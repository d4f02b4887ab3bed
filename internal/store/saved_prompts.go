// Package store persists the user's saved prompts as a single JSON document,
// rewritten in full on every mutation. The collection is small and
// user-curated, so a full rewrite keeps the on-disk form an exact snapshot of
// memory.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"lumina/internal/models"
)

// SavedPromptStore owns the ordered saved-prompt collection, newest first.
type SavedPromptStore struct {
	path string

	mu      sync.Mutex
	entries []models.SavedPrompt
}

// Open loads the collection at path. A missing or unparseable file starts an
// empty collection; a broken file is replaced on the next successful write.
func Open(path string) *SavedPromptStore {
	s := &SavedPromptStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s
	}
	if err != nil {
		log.Printf("saved prompts: reading %s: %v", path, err)
		return s
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		log.Printf("saved prompts: %s is malformed, starting empty: %v", path, err)
		s.entries = nil
	}
	return s
}

// Path returns the location of the persisted collection.
func (s *SavedPromptStore) Path() string {
	return s.path
}

// List returns a copy of the collection, newest first.
func (s *SavedPromptStore) List() []models.SavedPrompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SavedPrompt, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get looks up an entry by id.
func (s *SavedPromptStore) Get(id string) (models.SavedPrompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.SavedPrompt{}, false
}

// Insert assigns the entry a fresh id and timestamp, prepends it and rewrites
// the collection. The entry stays in memory even when the write fails; the
// returned error is diagnostic only.
func (s *SavedPromptStore) Insert(entry models.SavedPrompt) (models.SavedPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UnixMilli()
	s.entries = append([]models.SavedPrompt{entry}, s.entries...)

	return entry, s.write()
}

// Delete removes the entry with the given id and rewrites the collection.
// Unknown ids are a no-op.
func (s *SavedPromptStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.write()
		}
	}
	return nil
}

func (s *SavedPromptStore) write() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal saved prompts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
