package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"nurse-agenda/internal/model"
)

// Add commits a new appointment. A zero id is replaced by a freshly minted
// one; ids only grow, so two rapid creations never collide. A caller-supplied
// id is kept unless it is already taken.
func (s *Store) Add(_ context.Context, a model.Appointment) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == 0 {
		a.ID = s.nextID()
	} else {
		if _, ok := s.index[a.ID]; ok {
			return model.Appointment{}, fmt.Errorf("add %d: %w", a.ID, ErrDuplicateID)
		}
		if a.ID > s.last {
			s.last = a.ID
		}
	}

	s.index[a.ID] = len(s.items)
	s.items = append(s.items, a)
	return a, nil
}

// Update replaces the appointment with the same id.
func (s *Store) Update(_ context.Context, a model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[a.ID]
	if !ok {
		return fmt.Errorf("update %d: %w", a.ID, ErrNotFound)
	}
	s.items[i] = a
	return nil
}

// Remove deletes by id. A second call for the same id reports ErrNotFound
// and changes nothing.
func (s *Store) Remove(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	s.reindex(i)
	return nil
}

func (s *Store) Get(_ context.Context, id int64) (model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return model.Appointment{}, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return s.items[i], nil
}

// List returns a snapshot in insertion order. Callers that need
// chronological order sort it themselves, or use Between.
func (s *Store) List(_ context.Context) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Appointment(nil), s.items...)
}

// Between returns appointments overlapping [from, to), ordered by start.
// A zero bound is open.
func (s *Store) Between(_ context.Context, from, to time.Time) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Appointment
	for _, a := range s.items {
		if !to.IsZero() && !a.Start.Before(to) {
			continue
		}
		if !from.IsZero() && !a.End.After(from) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
