package model

import "time"

type Nurse struct {
	ID          string
	Name        string
	PicturePath *string
}

type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
}

// Duration is the authoritative length of any appointment for this service.
func (s Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Owner is the nurse snapshot stored on a committed appointment.
type Owner struct {
	ID          string
	Name        string
	PicturePath *string
}

func OwnerOf(n Nurse) Owner {
	return Owner{ID: n.ID, Name: n.Name, PicturePath: n.PicturePath}
}

type Appointment struct {
	ID          int64
	Title       string
	NurseName   string
	ServiceName string
	Start       time.Time
	End         time.Time
	Color       Color
	Notes       string
	Owner       Owner
}

func (a Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// Draft holds form values as typed, before validation. Start and End are
// local timestamps in Layout (a trailing seconds field is optional).
type Draft struct {
	ID          int64
	NurseID     string
	NurseName   string
	ServiceID   string
	ServiceName string
	Title       string
	Color       string
	Start       string
	End         string
	Notes       string
}

// DraftOf turns a stored appointment back into form values, as the edit
// dialog does when it opens.
func DraftOf(a Appointment) Draft {
	return Draft{
		ID:          a.ID,
		NurseID:     a.Owner.ID,
		NurseName:   a.NurseName,
		ServiceName: a.ServiceName,
		Title:       a.Title,
		Color:       string(a.Color),
		Start:       FormatLocal(a.Start),
		End:         FormatLocal(a.End),
		Notes:       a.Notes,
	}
}
