package inmemstorage

import (
	"context"
	"sync"

	"github.com/Perlera89/campus/storage"
)

// Storage keeps partitions in memory. Used in TEST mode and by tests simulating
// reloads: the partitions survive store re-creation but not process restarts.
type Storage struct {
	mu         sync.RWMutex
	partitions map[string][]byte
}

var _ storage.Storage = (*Storage)(nil)

func Open() *Storage {
	return &Storage{partitions: make(map[string][]byte)}
}

func (s *Storage) Get(_ context.Context, partition string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.partitions[partition]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, nil
}

func (s *Storage) Put(_ context.Context, partition string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.partitions[partition] = cp
	return nil
}

func (s *Storage) Delete(_ context.Context, partition string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.partitions, partition)
	return nil
}
