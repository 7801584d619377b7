package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nurse-agenda/internal/change"
	"nurse-agenda/internal/model"
)

type State string

const (
	StateCommitted State = "committed"
	StatePending   State = "pending"
	StateDiscarded State = "discarded"
)

// Proposal is the outcome of an edit. A pending proposal carries the token
// to confirm or cancel it and the fields that changed; Appointment is the
// normalized edit, or the stored original once discarded.
type Proposal struct {
	State       State
	Token       string
	Changes     []string
	Appointment model.Appointment
}

type pendingEdit struct {
	original model.Appointment
	edited   model.Appointment
}

// ProposeEdit validates an edit of appointment id. Edits touching a
// significant field wait for Confirm; anything else is committed at once.
// A newer proposal for the same appointment replaces an older pending one.
func (s *Scheduler) ProposeEdit(ctx context.Context, id int64, d model.Draft) (Proposal, error) {
	original, err := s.store.Get(ctx, id)
	if err != nil {
		return Proposal{}, err
	}

	d.ID = id
	res := s.Validate(d, true)
	if !res.OK() {
		s.log.Debug().Int64("id", id).Err(res.Err()).Msg("edit rejected")
		return Proposal{}, res.Err()
	}
	edited := res.Appointment

	changed := change.Changes(&original, edited)
	if len(changed) == 0 {
		if err := s.store.Update(ctx, edited); err != nil {
			return Proposal{}, fmt.Errorf("edit %d: %w", id, err)
		}
		s.mu.Lock()
		s.dropPendingLocked(id)
		s.mu.Unlock()
		s.log.Info().Int64("id", id).Msg("appointment updated")
		return Proposal{State: StateCommitted, Appointment: edited}, nil
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.dropPendingLocked(id)
	s.pending[token] = pendingEdit{original: original, edited: edited}
	s.mu.Unlock()

	s.log.Debug().Int64("id", id).Strs("changes", changed).Msg("edit awaiting confirmation")
	return Proposal{State: StatePending, Token: token, Changes: changed, Appointment: edited}, nil
}

// Confirm commits a pending edit.
func (s *Scheduler) Confirm(ctx context.Context, token string) (Proposal, error) {
	p, err := s.takePending(token)
	if err != nil {
		return Proposal{}, err
	}
	if err := s.store.Update(ctx, p.edited); err != nil {
		return Proposal{}, fmt.Errorf("confirm %d: %w", p.edited.ID, err)
	}
	s.log.Info().Int64("id", p.edited.ID).Msg("appointment updated")
	return Proposal{
		State:       StateCommitted,
		Changes:     change.Changes(&p.original, p.edited),
		Appointment: p.edited,
	}, nil
}

// Cancel discards a pending edit and hands back the stored values. The
// store is not touched.
func (s *Scheduler) Cancel(ctx context.Context, token string) (Proposal, error) {
	p, err := s.takePending(token)
	if err != nil {
		return Proposal{}, err
	}
	original, err := s.store.Get(ctx, p.original.ID)
	if err != nil {
		original = p.original
	}
	s.log.Debug().Int64("id", original.ID).Msg("edit discarded")
	return Proposal{State: StateDiscarded, Appointment: original}, nil
}

// Move reschedules an appointment to newStart keeping its length. It goes
// through ProposeEdit, so a real move always waits for confirmation.
func (s *Scheduler) Move(ctx context.Context, id int64, newStart time.Time) (Proposal, error) {
	original, err := s.store.Get(ctx, id)
	if err != nil {
		return Proposal{}, err
	}
	newStart = newStart.In(time.Local).Truncate(time.Second)

	d := model.DraftOf(original)
	d.Start = model.FormatLocal(newStart)
	d.End = model.FormatLocal(newStart.Add(original.Duration()))
	return s.ProposeEdit(ctx, id, d)
}

// Pending reports the number of edits awaiting a decision.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Scheduler) takePending(token string) (pendingEdit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[token]
	if !ok {
		return pendingEdit{}, fmt.Errorf("token %q: %w", token, ErrUnknownEdit)
	}
	delete(s.pending, token)
	return p, nil
}

// dropPendingLocked must be called with mu held.
func (s *Scheduler) dropPendingLocked(id int64) {
	for tok, p := range s.pending {
		if p.original.ID == id {
			delete(s.pending, tok)
		}
	}
}
