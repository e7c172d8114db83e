package favorites

import (
	"context"
	"encoding/json"
	"log"
	"slices"
	"sync"
	"time"

	"glassquiz/internal/storage"
)

// Key is the single storage key holding the serialized id list.
const Key = "glassquiz_favorites"

const storageTimeout = 2 * time.Second

// Store is the mistakes collection: an ordered list of question ids kept as
// one JSON array. Storage failures are logged and read as an empty list.
type Store struct {
	kv     storage.KV
	logger *log.Logger
	mu     sync.Mutex
}

func New(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{kv: kv, logger: logger}
}

func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) Contains(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.loadLocked(), questionID)
}

func (s *Store) Add(questionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.loadLocked()
	if slices.Contains(ids, questionID) {
		return
	}
	s.saveLocked(append(ids, questionID))
}

func (s *Store) Remove(questionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.loadLocked()
	kept := slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == questionID })
	if len(kept) == len(ids) {
		return
	}
	s.saveLocked(kept)
}

// Toggle flips membership and returns the new state.
func (s *Store) Toggle(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.loadLocked()
	if idx := slices.Index(ids, questionID); idx >= 0 {
		s.saveLocked(slices.Delete(ids, idx, idx+1))
		return false
	}
	s.saveLocked(append(ids, questionID))
	return true
}

func (s *Store) loadLocked() []string {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		s.logger.Printf("warning: read favorites: %v", err)
		return []string{}
	}
	if !ok || raw == "" {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Printf("warning: favorites payload is corrupt, treating it as empty: %v", err)
		return []string{}
	}
	if ids == nil {
		ids = []string{}
	}
	return ids
}

func (s *Store) saveLocked(ids []string) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if ids == nil {
		ids = []string{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		s.logger.Printf("warning: encode favorites: %v", err)
		return
	}
	if err := s.kv.Set(ctx, Key, string(payload)); err != nil {
		s.logger.Printf("warning: write favorites: %v", err)
	}
}
