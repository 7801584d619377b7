package slot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nurse-agenda/internal/model"
)

const (
	DefaultOpenHour    = 8
	DefaultCloseHour   = 18
	DefaultStepMinutes = 30
)

// Clock is a time of day.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On places the clock on the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, date.Location())
}

func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Clock{}, fmt.Errorf("time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return Clock{}, fmt.Errorf("time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return Clock{}, fmt.Errorf("time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("time %q: out of range", s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Hours is the booking window: start times run over [Open, Close) in Step
// increments.
type Hours struct {
	Open  int
	Close int
	Step  int
}

func DefaultHours() Hours {
	return Hours{Open: DefaultOpenHour, Close: DefaultCloseHour, Step: DefaultStepMinutes}
}

func (h Hours) StartTimes() []Clock {
	return AvailableStartTimes(h.Open, h.Close, h.Step)
}

// Offers reports whether c is one of the window's start times.
func (h Hours) Offers(c Clock) bool {
	for _, v := range h.StartTimes() {
		if v == c {
			return true
		}
	}
	return false
}

// AvailableStartTimes lists start times in [openHour, closeHour), ascending.
// An empty list is returned for a nonsensical window.
func AvailableStartTimes(openHour, closeHour, stepMinutes int) []Clock {
	if stepMinutes <= 0 || openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return nil
	}
	out := make([]Clock, 0, (closeHour-openHour)*60/stepMinutes)
	for m := openHour * 60; m < closeHour*60; m += stepMinutes {
		out = append(out, Clock{Hour: m / 60, Minute: m % 60})
	}
	return out
}

func DeriveEndTime(start time.Time, s model.Service) time.Time {
	return start.Add(s.Duration())
}

// IsEligibleDate is the creation-path date filter: no past days, no
// weekends. Only the calendar day matters.
func IsEligibleDate(date, today time.Time) bool {
	d := model.DateOnly(date)
	t := model.DateOnly(today.In(date.Location()))
	if d.Before(t) {
		return false
	}
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}
