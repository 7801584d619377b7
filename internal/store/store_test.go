package store

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"nurse-agenda/internal/model"
)

func sample(hour int) model.Appointment {
	start := time.Date(2025, 3, 10, hour, 0, 0, 0, time.Local)
	return model.Appointment{
		Title:       "Consulta Pré-natal",
		NurseName:   "Maria Silva",
		ServiceName: "Consulta Pré-natal",
		Start:       start,
		End:         start.Add(time.Hour),
		Color:       model.ColorBlue,
		Notes:       "",
		Owner:       model.Owner{ID: "maria", Name: "Maria Silva"},
	}
}

func TestAddMintsUniqueIDs(t *testing.T) {
	st := New()
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		a, err := st.Add(ctx, sample(9))
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if a.ID == 0 {
			t.Fatal("zero id minted")
		}
		if seen[a.ID] {
			t.Fatalf("duplicate id %d", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestAddConcurrent(t *testing.T) {
	st := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := st.Add(ctx, sample(10))
			if err != nil {
				t.Error(err)
				return
			}
			ids <- a.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if st.Len() != 100 {
		t.Errorf("expected 100 appointments, got %d", st.Len())
	}
}

func TestAddThenList(t *testing.T) {
	st := New()
	ctx := context.Background()

	x := sample(9)
	x.Notes = "primeira consulta"
	got, err := st.Add(ctx, x)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	list := st.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(list))
	}
	want := x
	want.ID = got.ID
	if !reflect.DeepEqual(list[0], want) {
		t.Errorf("listed %+v, want %+v", list[0], want)
	}
}

func TestCallerSuppliedID(t *testing.T) {
	st := New()
	ctx := context.Background()

	a := sample(9)
	a.ID = 1000
	if _, err := st.Add(ctx, a); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := st.Add(ctx, a); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}

	next, err := st.Add(ctx, sample(11))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if next.ID <= 1000 {
		t.Errorf("minted id %d should follow the highest known id", next.ID)
	}
}

func TestUpdate(t *testing.T) {
	st := New()
	ctx := context.Background()

	a, _ := st.Add(ctx, sample(9))
	b, _ := st.Add(ctx, sample(11))

	mod := a
	mod.Notes = "remarcada"
	mod.Color = model.ColorOrange
	mod.Start = mod.Start.Add(time.Hour)
	mod.End = mod.End.Add(time.Hour)
	if err := st.Update(ctx, mod); err != nil {
		t.Fatalf("update: %v", err)
	}

	list := st.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2, got %d", len(list))
	}
	if !reflect.DeepEqual(list[0], mod) {
		t.Errorf("update not reflected: %+v", list[0])
	}
	if !reflect.DeepEqual(list[1], b) {
		t.Errorf("unrelated appointment changed: %+v", list[1])
	}
}

func TestUpdateMissing(t *testing.T) {
	st := New()
	a := sample(9)
	a.ID = 99
	if err := st.Update(context.Background(), a); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if st.Len() != 0 {
		t.Error("failed update must not insert")
	}
}

func TestRemoveTwice(t *testing.T) {
	st := New()
	ctx := context.Background()

	a, _ := st.Add(ctx, sample(9))
	b, _ := st.Add(ctx, sample(10))
	c, _ := st.Add(ctx, sample(11))

	if err := st.Remove(ctx, b.ID); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if err := st.Remove(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove: expected ErrNotFound, got %v", err)
	}

	list := st.List(ctx)
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != c.ID {
		t.Fatalf("unexpected list after remove: %+v", list)
	}
	if _, err := st.Get(ctx, c.ID); err != nil {
		t.Errorf("index broken after remove: %v", err)
	}
}

func TestListIsASnapshot(t *testing.T) {
	st := New()
	ctx := context.Background()
	a, _ := st.Add(ctx, sample(9))

	list := st.List(ctx)
	list[0].Notes = "mutated"

	got, _ := st.Get(ctx, a.ID)
	if got.Notes == "mutated" {
		t.Error("List exposed internal state")
	}
}

func TestBetween(t *testing.T) {
	st := New()
	ctx := context.Background()

	late, _ := st.Add(ctx, sample(15))
	early, _ := st.Add(ctx, sample(8))
	mid, _ := st.Add(ctx, sample(11))

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	all := st.Between(ctx, day, day.AddDate(0, 0, 1))
	if len(all) != 3 || all[0].ID != early.ID || all[1].ID != mid.ID || all[2].ID != late.ID {
		t.Fatalf("expected chronological order, got %+v", all)
	}

	// [09:00, 12:00) overlaps 08:00-09:00? no; 11:00-12:00 yes.
	got := st.Between(ctx, day.Add(9*time.Hour), day.Add(12*time.Hour))
	if len(got) != 1 || got[0].ID != mid.ID {
		t.Errorf("unexpected window result %+v", got)
	}

	if got := st.Between(ctx, time.Time{}, time.Time{}); len(got) != 3 {
		t.Errorf("open bounds should return everything, got %d", len(got))
	}
}
