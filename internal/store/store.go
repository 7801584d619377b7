package store

import (
	"errors"
	"sync"

	"nurse-agenda/internal/model"
)

var (
	ErrNotFound    = errors.New("appointment not found")
	ErrDuplicateID = errors.New("appointment id already in use")
)

// Store is the in-memory event store. It exclusively owns the appointment
// collection; readers get copies. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items []model.Appointment
	index map[int64]int
	last  int64
}

func New() *Store {
	return &Store{index: make(map[int64]int)}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// nextID must be called with mu held.
func (s *Store) nextID() int64 {
	s.last++
	return s.last
}

// reindex must be called with mu held.
func (s *Store) reindex(from int) {
	for i := from; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
}
