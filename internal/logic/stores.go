package logic

import (
	"sync"

	"gridfilter/internal/domain"
)

// RecordStore provides read access to the loaded records
type RecordStore interface {
	All() []domain.Record
	Len() int
}

// MemoryRecordStore is an in-memory, ordered implementation of RecordStore
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records []domain.Record
}

// NewMemoryRecordStore creates a store holding a copy of records
func NewMemoryRecordStore(records []domain.Record) *MemoryRecordStore {
	s := &MemoryRecordStore{}
	s.Replace(records)
	return s
}

// All returns a copy of every record in load order
func (s *MemoryRecordStore) All() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Record, len(s.records))
	copy(result, s.records)
	return result
}

// Len returns the number of records
func (s *MemoryRecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Replace swaps the whole record list
func (s *MemoryRecordStore) Replace(records []domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]domain.Record, len(records))
	copy(s.records, records)
}
