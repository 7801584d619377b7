package booking

import (
	"context"
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"nurse-agenda/internal/catalog"
	"nurse-agenda/internal/model"
	"nurse-agenda/internal/slot"
	"nurse-agenda/internal/store"
	"nurse-agenda/internal/validate"
)

// Wednesday.
var wednesday = time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)

func newTestScheduler(t *testing.T) (*Scheduler, *store.Store) {
	t.Helper()
	st := store.New()
	return New(st, catalog.Default(), WithClock(func() time.Time { return wednesday })), st
}

func prenatal(start string, end string) model.Draft {
	return model.Draft{
		NurseID:     "maria",
		ServiceName: "Consulta Pré-natal",
		Start:       start,
		End:         end,
		Color:       "green",
	}
}

func mustCreate(t *testing.T, s *Scheduler, d model.Draft) model.Appointment {
	t.Helper()
	a, err := s.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return a
}

func TestCreate(t *testing.T) {
	s, st := newTestScheduler(t)

	a := mustCreate(t, s, prenatal("2025-03-10T09:00:00", "2025-03-10T10:00:00"))
	if a.ID == 0 {
		t.Fatal("no id minted")
	}
	if a.Title != "Consulta Pré-natal" || a.Owner.ID != "maria" || a.Color != model.ColorGreen {
		t.Errorf("unexpected appointment %+v", a)
	}
	if st.Len() != 1 {
		t.Errorf("expected 1 stored, got %d", st.Len())
	}
}

func TestCreateIgnoresDraftID(t *testing.T) {
	s, _ := newTestScheduler(t)
	d := prenatal("2025-03-10T09:00:00", "2025-03-10T10:00:00")
	d.ID = 42
	first := mustCreate(t, s, d)
	second := mustCreate(t, s, d)
	if first.ID == second.ID {
		t.Errorf("creation reused id %d", first.ID)
	}
}

func TestCreateRejected(t *testing.T) {
	s, st := newTestScheduler(t)

	_, err := s.Create(context.Background(), prenatal("2025-03-10T09:00:00", "2025-03-10T09:45:00"))
	var rej *validate.RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if !errors.Is(err, validate.ErrInvalidTemporalRange) {
		t.Errorf("expected duration error, got %v", err)
	}
	if st.Len() != 0 {
		t.Error("rejected draft was stored")
	}
}

func TestBook(t *testing.T) {
	s, _ := newTestScheduler(t)

	a, err := s.Book(context.Background(), BookingRequest{
		NurseID:   "ana",
		ServiceID: "amamentacao",
		Date:      "2025-03-13",
		Time:      "14:30",
		Notes:     "  primeira visita ",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	wantStart := time.Date(2025, 3, 13, 14, 30, 0, 0, time.Local)
	if !a.Start.Equal(wantStart) || !a.End.Equal(wantStart.Add(45*time.Minute)) {
		t.Errorf("got %v-%v", a.Start, a.End)
	}
	if a.Notes != "primeira visita" || a.Color != model.DefaultColor {
		t.Errorf("unexpected normalization %+v", a)
	}
}

func TestBookRestrictions(t *testing.T) {
	tests := []struct {
		name string
		req  BookingRequest
		want error
	}{
		{"saturday", BookingRequest{NurseID: "maria", ServiceID: "pre-natal", Date: "2025-03-15", Time: "09:00"}, ErrIneligibleDate},
		{"yesterday", BookingRequest{NurseID: "maria", ServiceID: "pre-natal", Date: "2025-03-11", Time: "09:00"}, ErrIneligibleDate},
		{"before opening", BookingRequest{NurseID: "maria", ServiceID: "pre-natal", Date: "2025-03-13", Time: "07:30"}, ErrUnavailableTime},
		{"closing hour", BookingRequest{NurseID: "maria", ServiceID: "pre-natal", Date: "2025-03-13", Time: "18:00"}, ErrUnavailableTime},
		{"off step", BookingRequest{NurseID: "maria", ServiceID: "pre-natal", Date: "2025-03-13", Time: "09:15"}, ErrUnavailableTime},
		{"bad date", BookingRequest{NurseID: "maria", ServiceID: "pre-natal", Date: "13/03/2025", Time: "09:00"}, validate.ErrMalformedValue},
		{"unknown service", BookingRequest{NurseID: "maria", ServiceID: "raio-x", Date: "2025-03-13", Time: "09:00"}, validate.ErrReferenceNotFound},
		{"unknown nurse", BookingRequest{NurseID: "joana", ServiceID: "pre-natal", Date: "2025-03-13", Time: "09:00"}, validate.ErrReferenceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st := newTestScheduler(t)
			_, err := s.Book(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if st.Len() != 0 {
				t.Error("restricted booking was stored")
			}
		})
	}
}

func TestAvailableTimes(t *testing.T) {
	s, _ := newTestScheduler(t)

	if got := s.AvailableTimes(time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)); got != nil {
		t.Errorf("saturday should offer nothing, got %v", got)
	}
	got := s.AvailableTimes(time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local))
	if len(got) != 20 || got[0] != (slot.Clock{Hour: 8}) {
		t.Errorf("unexpected times %v", got)
	}
}

func TestApplyServiceSelection(t *testing.T) {
	svc, _ := catalog.Default().FindServiceByID("pos-parto")
	def := Defaults{NurseID: "maria", NurseName: "Maria Silva"}

	in := model.Draft{Start: "2025-03-10T09:00:00", Title: "anything"}
	got := ApplyServiceSelection(in, svc, def)

	want := model.Draft{
		NurseID:     "maria",
		NurseName:   "Maria Silva",
		ServiceID:   "pos-parto",
		ServiceName: "Consulta Pós-parto",
		Title:       "Consulta Pós-parto",
		Start:       "2025-03-10T09:00:00",
		End:         "2025-03-10T10:00:00",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
	if in.ServiceID != "" {
		t.Error("input draft was modified")
	}
}

func TestApplyServiceSelectionKeepsNurseAndUnreadableStart(t *testing.T) {
	svc, _ := catalog.Default().FindServiceByID("amamentacao")
	in := model.Draft{NurseID: "ana", Start: "", End: "2025-03-10T11:00:00"}
	got := ApplyServiceSelection(in, svc, Defaults{NurseID: "maria"})
	if got.NurseID != "ana" {
		t.Errorf("nurse overwritten: %q", got.NurseID)
	}
	if got.End != "2025-03-10T11:00:00" {
		t.Errorf("end changed without a start: %q", got.End)
	}
}

func TestDefaultsFor(t *testing.T) {
	if got := DefaultsFor(catalog.Default()); got.NurseID != "maria" || got.NurseName != "Maria Silva" {
		t.Errorf("unexpected defaults %+v", got)
	}
}

func TestDelete(t *testing.T) {
	s, _ := newTestScheduler(t)
	ctx := context.Background()
	a := mustCreate(t, s, prenatal("2025-03-10T09:00:00", "2025-03-10T10:00:00"))

	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestAgenda(t *testing.T) {
	s, _ := newTestScheduler(t)
	ctx := context.Background()

	d1 := prenatal("2025-03-11T09:00:00", "2025-03-11T10:00:00")
	d1.Color = "red"
	d2 := prenatal("2025-03-10T14:00:00", "2025-03-10T15:00:00")
	d2.Color = "green"
	d3 := prenatal("2025-03-10T09:00:00", "2025-03-10T10:00:00")
	d3.Color = "red"
	a1 := mustCreate(t, s, d1)
	a2 := mustCreate(t, s, d2)
	a3 := mustCreate(t, s, d3)

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 7)

	byDate := s.Agenda(ctx, from, to, GroupByDate)
	if len(byDate) != 2 || byDate[0].Key != "2025-03-10" || byDate[1].Key != "2025-03-11" {
		t.Fatalf("unexpected date groups %+v", byDate)
	}
	if got := byDate[0].Appointments; len(got) != 2 || got[0].ID != a3.ID || got[1].ID != a2.ID {
		t.Errorf("day not in start order: %+v", got)
	}

	byColor := s.Agenda(ctx, from, to, GroupByColor)
	if len(byColor) != 2 || byColor[0].Key != "green" || byColor[1].Key != "red" {
		t.Fatalf("unexpected color groups %+v", byColor)
	}
	if got := byColor[1].Appointments; len(got) != 2 || got[0].ID != a3.ID || got[1].ID != a1.ID {
		t.Errorf("color group not in start order: %+v", got)
	}
}

func TestParseGroupBy(t *testing.T) {
	for in, want := range map[string]GroupBy{"": GroupByDate, "date": GroupByDate, " Color ": GroupByColor} {
		got, err := ParseGroupBy(in)
		if err != nil || got != want {
			t.Errorf("ParseGroupBy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseGroupBy("nurse"); err == nil {
		t.Error("expected error for unknown grouping")
	}
}

func TestSeed(t *testing.T) {
	s, st := newTestScheduler(t)
	ctx := context.Background()

	got, err := s.Seed(ctx, 25, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(got) != 25 || st.Len() != 25 {
		t.Fatalf("expected 25 seeded, got %d (stored %d)", len(got), st.Len())
	}

	hours := slot.DefaultHours()
	for _, a := range got {
		if !slot.IsEligibleDate(a.Start, wednesday) {
			t.Errorf("seeded on ineligible day %v", a.Start)
		}
		if !hours.Offers(slot.Clock{Hour: a.Start.Hour(), Minute: a.Start.Minute()}) {
			t.Errorf("seeded at unoffered time %v", a.Start)
		}
		svc, ok := catalog.Default().FindServiceByName(a.ServiceName)
		if !ok || a.Duration() != svc.Duration() {
			t.Errorf("seeded duration mismatch %+v", a)
		}
	}
}

func TestSeedNothing(t *testing.T) {
	s, st := newTestScheduler(t)
	if got, err := s.Seed(context.Background(), 0, rand.New(rand.NewPCG(1, 2))); err != nil || got != nil {
		t.Errorf("expected no-op, got %v, %v", got, err)
	}
	if st.Len() != 0 {
		t.Error("seed 0 stored appointments")
	}
}

