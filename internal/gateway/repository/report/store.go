// Package report persists generated ESG analysis texts so they can be
// downloaded after the triggering request has finished.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Store persists analysis reports keyed by report ID.
type Store interface {
	Put(ctx context.Context, reportID string, content []byte) error
	Get(ctx context.Context, reportID string) ([]byte, error)
}

var ErrNotFound = errors.New("report not found")

// MemoryStore is the in-process fallback used when no object store is
// configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Put(_ context.Context, reportID string, content []byte) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return fmt.Errorf("report id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[reportID] = append([]byte(nil), content...)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, reportID string) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return nil, fmt.Errorf("report id is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[reportID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), raw...), nil
}
