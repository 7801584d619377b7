package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"nurse-agenda/internal/model"
	"nurse-agenda/internal/slot"
	"nurse-agenda/internal/store"
	"nurse-agenda/internal/validate"
)

var (
	ErrIneligibleDate  = errors.New("date not open for booking")
	ErrUnavailableTime = errors.New("time not offered")
	ErrUnknownEdit     = errors.New("no pending edit for token")
)

// Catalog is the reference data the scheduler reads.
type Catalog interface {
	validate.Catalog
	ListNurses() []model.Nurse
	ListServices() []model.Service
}

// Scheduler drives the appointment lifecycle over an injected store.
type Scheduler struct {
	store   *store.Store
	catalog Catalog
	hours   slot.Hours
	now     func() time.Time
	log     zerolog.Logger

	mu      sync.Mutex
	pending map[string]pendingEdit
}

type Option func(*Scheduler)

func WithHours(h slot.Hours) Option {
	return func(s *Scheduler) { s.hours = h }
}

// WithClock replaces time.Now, which is used for "today" in date eligibility.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

func New(st *store.Store, c Catalog, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:   st,
		catalog: c,
		hours:   slot.DefaultHours(),
		now:     time.Now,
		log:     zerolog.Nop(),
		pending: make(map[string]pendingEdit),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Scheduler) Catalog() Catalog { return s.catalog }

func (s *Scheduler) Hours() slot.Hours { return s.hours }

// Today is the scheduler's current calendar day in time.Local.
func (s *Scheduler) Today() time.Time {
	return model.DateOnly(s.now().In(time.Local))
}

// Validate runs the validator against the scheduler's catalog.
func (s *Scheduler) Validate(d model.Draft, editing bool) validate.Result {
	return validate.Validate(d, s.catalog, editing)
}

// AvailableTimes lists bookable start times on date. Ineligible dates have
// none.
func (s *Scheduler) AvailableTimes(date time.Time) []slot.Clock {
	if !slot.IsEligibleDate(date, s.now()) {
		return nil
	}
	return s.hours.StartTimes()
}

// Create validates a new appointment and commits it. Creation never needs
// confirmation.
func (s *Scheduler) Create(ctx context.Context, d model.Draft) (model.Appointment, error) {
	res := s.Validate(d, false)
	if !res.OK() {
		s.log.Debug().Err(res.Err()).Msg("create rejected")
		return model.Appointment{}, res.Err()
	}

	a, err := s.store.Add(ctx, res.Appointment)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("create: %w", err)
	}
	s.log.Info().
		Int64("id", a.ID).
		Str("nurse", a.NurseName).
		Str("service", a.ServiceName).
		Time("start", a.Start).
		Msg("appointment created")
	return a, nil
}

// BookingRequest is the restrictive creation form: a date picker limited to
// eligible days and a time picker limited to offered start times. The end
// is always derived from the service.
type BookingRequest struct {
	NurseID   string
	ServiceID string
	Color     string
	Date      string // 2006-01-02
	Time      string // 15:04
	Notes     string
}

func (s *Scheduler) Book(ctx context.Context, r BookingRequest) (model.Appointment, error) {
	date, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(r.Date), time.Local)
	if err != nil {
		return model.Appointment{}, rejected(validate.FieldDates, "invalid", validate.ErrMalformedValue)
	}
	if !slot.IsEligibleDate(date, s.now()) {
		return model.Appointment{}, fmt.Errorf("book %s: %w", r.Date, ErrIneligibleDate)
	}

	clock, err := slot.ParseClock(r.Time)
	if err != nil {
		return model.Appointment{}, rejected(validate.FieldDates, "invalid", validate.ErrMalformedValue)
	}
	if !s.hours.Offers(clock) {
		return model.Appointment{}, fmt.Errorf("book %s %s: %w", r.Date, clock, ErrUnavailableTime)
	}

	svc, ok := s.catalog.FindServiceByID(r.ServiceID)
	if !ok {
		return model.Appointment{}, rejected(validate.FieldService, "not found", validate.ErrReferenceNotFound)
	}

	start := clock.On(date)
	return s.Create(ctx, model.Draft{
		NurseID:     r.NurseID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Title:       svc.Name,
		Color:       r.Color,
		Start:       model.FormatLocal(start),
		End:         model.FormatLocal(slot.DeriveEndTime(start, svc)),
		Notes:       r.Notes,
	})
}

func (s *Scheduler) Get(ctx context.Context, id int64) (model.Appointment, error) {
	return s.store.Get(ctx, id)
}

func (s *Scheduler) List(ctx context.Context) []model.Appointment {
	return s.store.List(ctx)
}

// Between returns appointments overlapping [from, to) in start order.
func (s *Scheduler) Between(ctx context.Context, from, to time.Time) []model.Appointment {
	return s.store.Between(ctx, from, to)
}

// Delete removes the appointment and drops any edit waiting on it.
func (s *Scheduler) Delete(ctx context.Context, id int64) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.dropPendingLocked(id)
	s.mu.Unlock()
	s.log.Info().Int64("id", id).Msg("appointment deleted")
	return nil
}

func rejected(field, msg string, err error) error {
	return &validate.RejectedError{Errors: []validate.FieldError{{Field: field, Message: msg, Err: err}}}
}
