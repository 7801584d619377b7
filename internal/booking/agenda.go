package booking

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"nurse-agenda/internal/model"
	"nurse-agenda/internal/slot"
)

type GroupBy string

const (
	GroupByDate  GroupBy = "date"
	GroupByColor GroupBy = "color"
)

func ParseGroupBy(s string) (GroupBy, error) {
	switch g := GroupBy(strings.ToLower(strings.TrimSpace(s))); g {
	case "", GroupByDate:
		return GroupByDate, nil
	case GroupByColor:
		return GroupByColor, nil
	default:
		return "", fmt.Errorf("group_by %q: want date or color", s)
	}
}

// Group is one section of the agenda view.
type Group struct {
	Key          string
	Appointments []model.Appointment
}

// Agenda lists appointments overlapping [from, to) in sections. Date
// sections are chronological; color sections follow the palette order.
// Inside a section appointments are in start order. Empty sections are
// omitted.
func (s *Scheduler) Agenda(ctx context.Context, from, to time.Time, by GroupBy) []Group {
	items := s.store.Between(ctx, from, to)

	var keys []string
	buckets := make(map[string][]model.Appointment)
	add := func(k string, a model.Appointment) {
		if _, ok := buckets[k]; !ok && by == GroupByDate {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], a)
	}

	for _, a := range items {
		switch by {
		case GroupByColor:
			add(string(a.Color), a)
		default:
			add(a.Start.Format(model.DateLayout), a)
		}
	}

	if by == GroupByColor {
		for _, c := range model.Colors() {
			if _, ok := buckets[string(c)]; ok {
				keys = append(keys, string(c))
			}
		}
	}

	out := make([]Group, 0, len(keys))
	for _, k := range keys {
		out = append(out, Group{Key: k, Appointments: buckets[k]})
	}
	return out
}

// SeedWindowDays bounds how far ahead Seed places appointments.
const SeedWindowDays = 30

// Seed commits n demo appointments on eligible days within the next
// SeedWindowDays, at offered start times, with random nurse, service and
// color. Every one goes through Create.
func (s *Scheduler) Seed(ctx context.Context, n int, rng *rand.Rand) ([]model.Appointment, error) {
	nurses := s.catalog.ListNurses()
	services := s.catalog.ListServices()
	times := s.hours.StartTimes()
	if n <= 0 || len(nurses) == 0 || len(services) == 0 || len(times) == 0 {
		return nil, nil
	}

	today := s.Today()
	var days []time.Time
	for i := 0; i < SeedWindowDays; i++ {
		d := today.AddDate(0, 0, i)
		if slot.IsEligibleDate(d, today) {
			days = append(days, d)
		}
	}

	colors := model.Colors()
	out := make([]model.Appointment, 0, n)
	for i := 0; i < n; i++ {
		nurse := nurses[rng.IntN(len(nurses))]
		svc := services[rng.IntN(len(services))]
		start := times[rng.IntN(len(times))].On(days[rng.IntN(len(days))])

		a, err := s.Create(ctx, model.Draft{
			NurseID:   nurse.ID,
			ServiceID: svc.ID,
			Color:     string(colors[rng.IntN(len(colors))]),
			Start:     model.FormatLocal(start),
			End:       model.FormatLocal(slot.DeriveEndTime(start, svc)),
		})
		if err != nil {
			return out, fmt.Errorf("seed %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
