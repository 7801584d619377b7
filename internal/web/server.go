// Package web serves the browser-facing HTTP surface: health, the JSON
// agenda view, the iCalendar feed and the gRPC-Web mount.
package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"nurse-agenda/internal/booking"
	pb "nurse-agenda/internal/bookingpb"
	"nurse-agenda/internal/ics"
	"nurse-agenda/internal/middleware"
	"nurse-agenda/internal/model"
)

const defaultSpanDays = 7

type Server struct {
	sched *booking.Scheduler
	log   zerolog.Logger
}

// New builds the echo instance. grpcWeb may be nil, in which case the
// AgendaService routes are not mounted.
func New(sched *booking.Scheduler, grpcWeb http.Handler, log zerolog.Logger) *echo.Echo {
	s := &Server{sched: sched, log: log}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(log))

	e.GET("/health", s.health)
	e.GET("/api/agenda", s.agenda)
	e.GET("/calendar.ics", s.calendar)

	if grpcWeb != nil {
		e.Any("/"+pb.ServiceName+"/*", echo.WrapHandler(grpcWeb))
	}
	return e
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":       "ok",
		"appointments": len(s.sched.List(c.Request().Context())),
		"pending":      s.sched.Pending(),
	})
}

type ownerJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PicturePath *string `json:"picture_path,omitempty"`
}

type appointmentJSON struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	NurseName   string    `json:"nurse_name"`
	ServiceName string    `json:"service_name"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Color       string    `json:"color"`
	Notes       string    `json:"notes,omitempty"`
	Owner       ownerJSON `json:"owner"`
}

type groupJSON struct {
	Key          string            `json:"key"`
	Appointments []appointmentJSON `json:"appointments"`
}

func toJSON(a model.Appointment) appointmentJSON {
	return appointmentJSON{
		ID:          a.ID,
		Title:       a.Title,
		NurseName:   a.NurseName,
		ServiceName: a.ServiceName,
		Start:       model.FormatLocal(a.Start),
		End:         model.FormatLocal(a.End),
		Color:       string(a.Color),
		Notes:       a.Notes,
		Owner:       ownerJSON{ID: a.Owner.ID, Name: a.Owner.Name, PicturePath: a.Owner.PicturePath},
	}
}

// dateRange reads from/to as calendar dates. to is inclusive; the returned
// end is midnight after it. Without from the range starts today, without to
// it spans defaultSpanDays.
func (s *Server) dateRange(c echo.Context) (time.Time, time.Time, error) {
	from := s.sched.Today()
	if v := c.QueryParam("from"); v != "" {
		d, err := time.ParseInLocation(model.DateLayout, v, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "from: want YYYY-MM-DD")
		}
		from = d
	}
	to := from.AddDate(0, 0, defaultSpanDays)
	if v := c.QueryParam("to"); v != "" {
		d, err := time.ParseInLocation(model.DateLayout, v, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "to: want YYYY-MM-DD")
		}
		to = d.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "to must not be before from")
	}
	return from, to, nil
}

// agenda handles GET /api/agenda.
func (s *Server) agenda(c echo.Context) error {
	by, err := booking.ParseGroupBy(c.QueryParam("group_by"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	from, to, err := s.dateRange(c)
	if err != nil {
		return err
	}

	groups := s.sched.Agenda(c.Request().Context(), from, to, by)
	out := make([]groupJSON, 0, len(groups))
	for _, g := range groups {
		items := make([]appointmentJSON, 0, len(g.Appointments))
		for _, a := range g.Appointments {
			items = append(items, toJSON(a))
		}
		out = append(out, groupJSON{Key: g.Key, Appointments: items})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"from":     from.Format(model.DateLayout),
		"to":       to.AddDate(0, 0, -1).Format(model.DateLayout),
		"group_by": string(by),
		"groups":   out,
	})
}

// calendar handles GET /calendar.ics. Without a range every appointment is
// exported.
func (s *Server) calendar(c echo.Context) error {
	ctx := c.Request().Context()
	var apts []model.Appointment
	if c.QueryParam("from") == "" && c.QueryParam("to") == "" {
		apts = s.sched.Between(ctx, time.Time{}, time.Time{})
	} else {
		from, to, err := s.dateRange(c)
		if err != nil {
			return err
		}
		apts = s.sched.Between(ctx, from, to)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/calendar; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="agenda.ics"`)
	res.WriteHeader(http.StatusOK)
	return ics.Export(res, apts, time.Now())
}
