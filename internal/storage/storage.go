package storage

import (
	"sync"

	"github.com/kayworks/etdxgen/internal/models"
)

type BatchStore struct {
	batches map[string]*models.Batch
	mu      sync.RWMutex
}

func New() *BatchStore {
	return &BatchStore{
		batches: make(map[string]*models.Batch),
	}
}

func (s *BatchStore) Get(batchID string) (*models.Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	batch, exists := s.batches[batchID]
	return batch, exists
}

func (s *BatchStore) Set(batchID string, batch *models.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[batchID] = batch
}

// Update applies fn to the stored batch while holding the write lock, so
// concurrent mutations of one batch cannot interleave. It reports whether
// the batch exists.
func (s *BatchStore) Update(batchID string, fn func(*models.Batch)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch, exists := s.batches[batchID]
	if !exists {
		return false
	}
	fn(batch)
	return true
}

func (s *BatchStore) GetAll() map[string]*models.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.Batch, len(s.batches))
	for k, v := range s.batches {
		result[k] = v
	}
	return result
}

func (s *BatchStore) Delete(batchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, batchID)
}
