package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"nurse-agenda/internal/booking"
	"nurse-agenda/internal/catalog"
	"nurse-agenda/internal/middleware"
	"nurse-agenda/internal/model"
	"nurse-agenda/internal/store"
)

func newTestServer(t *testing.T, grpcWeb http.Handler) *echo.Echo {
	t.Helper()
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
	s := booking.New(store.New(), catalog.Default(), booking.WithClock(func() time.Time { return now }))

	for _, d := range []model.Draft{
		{NurseID: "maria", ServiceName: "Consulta Pré-natal", Color: "green", Start: "2025-03-13T14:00:00", End: "2025-03-13T15:00:00"},
		{NurseID: "ana", ServiceName: "Saúde da Mulher", Color: "blue", Start: "2025-03-13T09:00:00", End: "2025-03-13T09:45:00"},
		{NurseID: "juliana", ServiceName: "Consultoria em Amamentação", Color: "green", Start: "2025-03-17T10:00:00", End: "2025-03-17T10:45:00"},
		{NurseID: "maria", ServiceName: "Consulta Pós-parto", Color: "red", Start: "2025-03-25T08:00:00", End: "2025-03-25T09:00:00"},
	} {
		if _, err := s.Create(context.Background(), d); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return New(s, grpcWeb, zerolog.Nop())
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type agendaBody struct {
	From    string      `json:"from"`
	To      string      `json:"to"`
	GroupBy string      `json:"group_by"`
	Groups  []groupJSON `json:"groups"`
}

func decodeAgenda(t *testing.T, rec *httptest.ResponseRecorder) agendaBody {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var body agendaBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, nil)
	rec := get(e, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"appointments":4`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("request id header missing")
	}
}

func TestAgendaByDate(t *testing.T) {
	e := newTestServer(t, nil)
	body := decodeAgenda(t, get(e, "/api/agenda"))

	if body.From != "2025-03-12" || body.To != "2025-03-18" || body.GroupBy != "date" {
		t.Errorf("unexpected window %+v", body)
	}
	if len(body.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(body.Groups))
	}
	first := body.Groups[0]
	if first.Key != "2025-03-13" || len(first.Appointments) != 2 {
		t.Fatalf("unexpected first group %+v", first)
	}
	if first.Appointments[0].Start != "2025-03-13T09:00:00" || first.Appointments[0].Owner.ID != "ana" {
		t.Errorf("group not in start order: %+v", first.Appointments)
	}
	if body.Groups[1].Key != "2025-03-17" {
		t.Errorf("second group = %s", body.Groups[1].Key)
	}
}

func TestAgendaByColor(t *testing.T) {
	e := newTestServer(t, nil)
	body := decodeAgenda(t, get(e, "/api/agenda?from=2025-03-01&to=2025-03-31&group_by=color"))

	var keys []string
	for _, g := range body.Groups {
		keys = append(keys, g.Key)
	}
	if strings.Join(keys, ",") != "blue,green,red" {
		t.Errorf("keys = %v", keys)
	}
}

func TestAgendaBadQuery(t *testing.T) {
	e := newTestServer(t, nil)
	for _, target := range []string{
		"/api/agenda?group_by=nurse",
		"/api/agenda?from=12/03/2025",
		"/api/agenda?from=2025-03-20&to=2025-03-10",
	} {
		if rec := get(e, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestCalendar(t *testing.T) {
	e := newTestServer(t, nil)

	rec := get(e, "/calendar.ics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content type %q", ct)
	}
	if n := strings.Count(rec.Body.String(), "BEGIN:VEVENT"); n != 4 {
		t.Errorf("expected 4 events, got %d", n)
	}

	rec = get(e, "/calendar.ics?from=2025-03-13&to=2025-03-13")
	if n := strings.Count(rec.Body.String(), "BEGIN:VEVENT"); n != 2 {
		t.Errorf("expected 2 events in range, got %d", n)
	}
}

func TestGrpcWebMount(t *testing.T) {
	var hit string
	bridge := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	e := newTestServer(t, bridge)

	req := httptest.NewRequest(http.MethodPost, "/agenda.v1.AgendaService/ListNurses", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if hit != "/agenda.v1.AgendaService/ListNurses" {
		t.Errorf("bridge not reached, hit=%q", hit)
	}

	if rec := get(newTestServer(t, nil), "/agenda.v1.AgendaService/ListNurses"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 without bridge, got %d", rec.Code)
	}
}
