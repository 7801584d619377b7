package slot

import (
	"testing"
	"time"

	"nurse-agenda/internal/model"
)

func TestAvailableStartTimesDefault(t *testing.T) {
	got := AvailableStartTimes(DefaultOpenHour, DefaultCloseHour, DefaultStepMinutes)
	if len(got) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(got))
	}
	if got[0].String() != "08:00" {
		t.Errorf("first slot: got %s", got[0])
	}
	if got[len(got)-1].String() != "17:30" {
		t.Errorf("last slot: got %s", got[len(got)-1])
	}
	for i := 1; i < len(got); i++ {
		prev := got[i-1].Hour*60 + got[i-1].Minute
		cur := got[i].Hour*60 + got[i].Minute
		if cur <= prev {
			t.Fatalf("slots not strictly ascending at %d: %s then %s", i, got[i-1], got[i])
		}
	}
}

func TestAvailableStartTimesOddStep(t *testing.T) {
	got := AvailableStartTimes(9, 10, 25)
	want := []string{"09:00", "09:25", "09:50"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAvailableStartTimesInvalid(t *testing.T) {
	tests := []struct {
		name              string
		open, close, step int
	}{
		{"zero step", 8, 18, 0},
		{"reversed", 18, 8, 30},
		{"empty", 8, 8, 30},
		{"past midnight", 8, 25, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvailableStartTimes(tt.open, tt.close, tt.step); len(got) != 0 {
				t.Errorf("expected no slots, got %v", got)
			}
		})
	}
}

func TestDeriveEndTime(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	for _, minutes := range []int{1, 30, 45, 60, 90, 600} {
		svc := model.Service{Name: "x", DurationMinutes: minutes}
		got := DeriveEndTime(start, svc)
		if got.Sub(start) != time.Duration(minutes)*time.Minute {
			t.Errorf("duration %d: got end %v", minutes, got)
		}
	}

	svc := model.Service{Name: "Consulta Pré-natal", DurationMinutes: 60}
	if got := model.FormatLocal(DeriveEndTime(start, svc)); got != "2025-03-10T10:00:00" {
		t.Errorf("scenario A end: got %s", got)
	}
}

func TestIsEligibleDate(t *testing.T) {
	today := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today earlier hour", time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC), true},
		{"tomorrow", time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Date(2025, 3, 11, 23, 59, 0, 0, time.UTC), false},
		{"saturday", time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), false},
		{"sunday", time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC), false},
		{"next monday", time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEligibleDate(tt.date, today); got != tt.want {
				t.Errorf("IsEligibleDate(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (Clock{Hour: 9, Minute: 30}) {
		t.Errorf("got %+v", c)
	}
	for _, bad := range []string{"", "930", "24:00", "09:60", "aa:bb"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q): expected error", bad)
		}
	}
}

func TestHoursOffers(t *testing.T) {
	h := DefaultHours()
	if !h.Offers(Clock{Hour: 17, Minute: 30}) {
		t.Error("expected 17:30 to be offered")
	}
	if h.Offers(Clock{Hour: 18, Minute: 0}) {
		t.Error("closing hour must be exclusive")
	}
	if h.Offers(Clock{Hour: 9, Minute: 15}) {
		t.Error("off-step time must not be offered")
	}
}

func TestClockOn(t *testing.T) {
	date := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	got := Clock{Hour: 9, Minute: 0}.On(date)
	if !got.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}
}
