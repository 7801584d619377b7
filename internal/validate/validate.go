package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nurse-agenda/internal/model"
)

var (
	ErrReferenceNotFound    = errors.New("reference not found")
	ErrInvalidTemporalRange = errors.New("invalid temporal range")
	ErrMalformedValue       = errors.New("malformed value")
)

// Field names used as keys for form messages.
const (
	FieldNurse    = "nurse"
	FieldService  = "service"
	FieldDates    = "dates"
	FieldDuration = "duration"
)

type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

func (e FieldError) Unwrap() error { return e.Err }

// RejectedError carries every field error of a rejected draft.
type RejectedError struct {
	Errors []FieldError
}

func (e *RejectedError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Error()
	}
	return "draft rejected: " + strings.Join(parts, "; ")
}

func (e *RejectedError) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe
	}
	return out
}

// Catalog is what the validator needs from reference data.
type Catalog interface {
	FindNurseByID(id string) (model.Nurse, bool)
	FindNurseByName(name string) (model.Nurse, bool)
	FindServiceByID(id string) (model.Service, bool)
	FindServiceByName(name string) (model.Service, bool)
}

// Result is either an accepted, normalized appointment or a list of field
// errors.
type Result struct {
	Appointment model.Appointment
	Errors      []FieldError
}

func (r Result) OK() bool { return len(r.Errors) == 0 }

func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &RejectedError{Errors: r.Errors}
}

// Has reports whether a field error was raised for field.
func (r Result) Has(field string) bool {
	for _, fe := range r.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Validate runs every check against d and collects all failures. Timestamps
// are read in time.Local. When editing, the draft id is kept; when creating
// it is cleared so the store mints one. Validate never touches the store.
func Validate(d model.Draft, c Catalog, editing bool) Result {
	var errs []FieldError

	nurse, nurseOK := lookupNurse(c, d)
	if !nurseOK {
		errs = append(errs, FieldError{Field: FieldNurse, Message: "not found", Err: ErrReferenceNotFound})
	}

	svc, svcOK := lookupService(c, d)
	if !svcOK {
		errs = append(errs, FieldError{Field: FieldService, Message: "not found", Err: ErrReferenceNotFound})
	}

	start, startErr := model.ParseLocal(d.Start, time.Local)
	end, endErr := model.ParseLocal(d.End, time.Local)
	datesOK := startErr == nil && endErr == nil
	if !datesOK {
		errs = append(errs, FieldError{Field: FieldDates, Message: "invalid", Err: ErrMalformedValue})
	}

	// Checks run on the parsed values; sub-second parts count toward the
	// duration and are only dropped from the normalized appointment.
	if datesOK {
		if !start.Before(end) {
			errs = append(errs, FieldError{Field: FieldDates, Message: "start must precede end", Err: ErrInvalidTemporalRange})
		}
		if svcOK && end.Sub(start) != svc.Duration() {
			errs = append(errs, FieldError{
				Field:   FieldDuration,
				Message: fmt.Sprintf("must equal %d minutes for %s", svc.DurationMinutes, svc.Name),
				Err:     ErrInvalidTemporalRange,
			})
		}
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	start = start.Truncate(time.Second)
	end = end.Truncate(time.Second)

	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = svc.Name
	}
	a := model.Appointment{
		Title:       title,
		NurseName:   nurse.Name,
		ServiceName: svc.Name,
		Start:       start,
		End:         end,
		Color:       model.ParseColor(d.Color),
		Notes:       strings.TrimSpace(d.Notes),
		Owner:       model.OwnerOf(nurse),
	}
	if editing {
		a.ID = d.ID
	}
	return Result{Appointment: a}
}

func lookupNurse(c Catalog, d model.Draft) (model.Nurse, bool) {
	if strings.TrimSpace(d.NurseID) != "" {
		return c.FindNurseByID(d.NurseID)
	}
	if strings.TrimSpace(d.NurseName) != "" {
		return c.FindNurseByName(d.NurseName)
	}
	return model.Nurse{}, false
}

func lookupService(c Catalog, d model.Draft) (model.Service, bool) {
	if strings.TrimSpace(d.ServiceID) != "" {
		return c.FindServiceByID(d.ServiceID)
	}
	if strings.TrimSpace(d.ServiceName) != "" {
		return c.FindServiceByName(d.ServiceName)
	}
	return model.Service{}, false
}
