package bookingpb

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Empty struct{}

func (*Empty) AppendWire(b []byte) []byte { return b }

func (*Empty) ConsumeWire(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) (int, bool) { return 0, false })
}

type Nurse struct {
	Id          string
	Name        string
	PicturePath string
}

func (m *Nurse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.PicturePath)
	return b
}

func (m *Nurse) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeString(typ, v, &m.Id)
		case 2:
			return consumeString(typ, v, &m.Name)
		case 3:
			return consumeString(typ, v, &m.PicturePath)
		}
		return 0, false
	})
}

type Service struct {
	Id              string
	Name            string
	Description     string
	DurationMinutes int32
}

func (m *Service) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Description)
	b = appendVarint(b, 4, uint64(m.DurationMinutes))
	return b
}

func (m *Service) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeString(typ, v, &m.Id)
		case 2:
			return consumeString(typ, v, &m.Name)
		case 3:
			return consumeString(typ, v, &m.Description)
		case 4:
			return consumeInt32(typ, v, &m.DurationMinutes)
		}
		return 0, false
	})
}

// Appointment timestamps travel as local wall-clock strings
// ("2006-01-02T15:04:05").
type Appointment struct {
	Id          int64
	Title       string
	NurseName   string
	ServiceName string
	Start       string
	End         string
	Color       string
	Notes       string
	Owner       *Nurse
}

func (m *Appointment) AppendWire(b []byte) []byte {
	b = appendVarint(b, 1, uint64(m.Id))
	b = appendString(b, 2, m.Title)
	b = appendString(b, 3, m.NurseName)
	b = appendString(b, 4, m.ServiceName)
	b = appendString(b, 5, m.Start)
	b = appendString(b, 6, m.End)
	b = appendString(b, 7, m.Color)
	b = appendString(b, 8, m.Notes)
	if m.Owner != nil {
		b = appendMessage(b, 9, m.Owner)
	}
	return b
}

func (m *Appointment) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeInt64(typ, v, &m.Id)
		case 2:
			return consumeString(typ, v, &m.Title)
		case 3:
			return consumeString(typ, v, &m.NurseName)
		case 4:
			return consumeString(typ, v, &m.ServiceName)
		case 5:
			return consumeString(typ, v, &m.Start)
		case 6:
			return consumeString(typ, v, &m.End)
		case 7:
			return consumeString(typ, v, &m.Color)
		case 8:
			return consumeString(typ, v, &m.Notes)
		case 9:
			m.Owner = &Nurse{}
			return consumeMessage(typ, v, m.Owner)
		}
		return 0, false
	})
}

// Draft carries form values as typed.
type Draft struct {
	NurseId     string
	NurseName   string
	ServiceId   string
	ServiceName string
	Title       string
	Color       string
	Start       string
	End         string
	Notes       string
}

func (m *Draft) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.NurseId)
	b = appendString(b, 2, m.NurseName)
	b = appendString(b, 3, m.ServiceId)
	b = appendString(b, 4, m.ServiceName)
	b = appendString(b, 5, m.Title)
	b = appendString(b, 6, m.Color)
	b = appendString(b, 7, m.Start)
	b = appendString(b, 8, m.End)
	b = appendString(b, 9, m.Notes)
	return b
}

func (m *Draft) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeString(typ, v, &m.NurseId)
		case 2:
			return consumeString(typ, v, &m.NurseName)
		case 3:
			return consumeString(typ, v, &m.ServiceId)
		case 4:
			return consumeString(typ, v, &m.ServiceName)
		case 5:
			return consumeString(typ, v, &m.Title)
		case 6:
			return consumeString(typ, v, &m.Color)
		case 7:
			return consumeString(typ, v, &m.Start)
		case 8:
			return consumeString(typ, v, &m.End)
		case 9:
			return consumeString(typ, v, &m.Notes)
		}
		return 0, false
	})
}

type FieldError struct {
	Field   string
	Message string
}

func (m *FieldError) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Field)
	b = appendString(b, 2, m.Message)
	return b
}

func (m *FieldError) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeString(typ, v, &m.Field)
		case 2:
			return consumeString(typ, v, &m.Message)
		}
		return 0, false
	})
}

type ListNursesResponse struct {
	Nurses []*Nurse
}

func (m *ListNursesResponse) AppendWire(b []byte) []byte {
	for _, n := range m.Nurses {
		b = appendMessage(b, 1, n)
	}
	return b
}

func (m *ListNursesResponse) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		if num == 1 {
			n := &Nurse{}
			m.Nurses = append(m.Nurses, n)
			return consumeMessage(typ, v, n)
		}
		return 0, false
	})
}

type ListServicesResponse struct {
	Services []*Service
}

func (m *ListServicesResponse) AppendWire(b []byte) []byte {
	for _, s := range m.Services {
		b = appendMessage(b, 1, s)
	}
	return b
}

func (m *ListServicesResponse) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		if num == 1 {
			s := &Service{}
			m.Services = append(m.Services, s)
			return consumeMessage(typ, v, s)
		}
		return 0, false
	})
}

type AvailableTimesRequest struct {
	Date string // 2006-01-02
}

func (m *AvailableTimesRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.Date)
}

func (m *AvailableTimesRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		if num == 1 {
			return consumeString(typ, v, &m.Date)
		}
		return 0, false
	})
}

type AvailableTimesResponse struct {
	Eligible bool
	Times    []string // 15:04
}

func (m *AvailableTimesResponse) AppendWire(b []byte) []byte {
	b = appendBool(b, 1, m.Eligible)
	for _, t := range m.Times {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, t)
	}
	return b
}

func (m *AvailableTimesResponse) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeBool(typ, v, &m.Eligible)
		case 2:
			var s string
			n, ok := consumeString(typ, v, &s)
			if ok && n >= 0 {
				m.Times = append(m.Times, s)
			}
			return n, ok
		}
		return 0, false
	})
}

type ValidateDraftRequest struct {
	Id      int64
	Editing bool
	Draft   *Draft
}

func (m *ValidateDraftRequest) AppendWire(b []byte) []byte {
	b = appendVarint(b, 1, uint64(m.Id))
	b = appendBool(b, 2, m.Editing)
	if m.Draft != nil {
		b = appendMessage(b, 3, m.Draft)
	}
	return b
}

func (m *ValidateDraftRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeInt64(typ, v, &m.Id)
		case 2:
			return consumeBool(typ, v, &m.Editing)
		case 3:
			m.Draft = &Draft{}
			return consumeMessage(typ, v, m.Draft)
		}
		return 0, false
	})
}

// ValidateDraftResponse holds either the normalized appointment or the
// field errors.
type ValidateDraftResponse struct {
	Appointment *Appointment
	Errors      []*FieldError
}

func (m *ValidateDraftResponse) AppendWire(b []byte) []byte {
	if m.Appointment != nil {
		b = appendMessage(b, 1, m.Appointment)
	}
	for _, e := range m.Errors {
		b = appendMessage(b, 2, e)
	}
	return b
}

func (m *ValidateDraftResponse) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			m.Appointment = &Appointment{}
			return consumeMessage(typ, v, m.Appointment)
		case 2:
			e := &FieldError{}
			m.Errors = append(m.Errors, e)
			return consumeMessage(typ, v, e)
		}
		return 0, false
	})
}

type CreateAppointmentRequest struct {
	Draft *Draft
}

func (m *CreateAppointmentRequest) AppendWire(b []byte) []byte {
	if m.Draft != nil {
		b = appendMessage(b, 1, m.Draft)
	}
	return b
}

func (m *CreateAppointmentRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		if num == 1 {
			m.Draft = &Draft{}
			return consumeMessage(typ, v, m.Draft)
		}
		return 0, false
	})
}

type BookAppointmentRequest struct {
	NurseId   string
	ServiceId string
	Color     string
	Date      string // 2006-01-02
	Time      string // 15:04
	Notes     string
}

func (m *BookAppointmentRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.NurseId)
	b = appendString(b, 2, m.ServiceId)
	b = appendString(b, 3, m.Color)
	b = appendString(b, 4, m.Date)
	b = appendString(b, 5, m.Time)
	b = appendString(b, 6, m.Notes)
	return b
}

func (m *BookAppointmentRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeString(typ, v, &m.NurseId)
		case 2:
			return consumeString(typ, v, &m.ServiceId)
		case 3:
			return consumeString(typ, v, &m.Color)
		case 4:
			return consumeString(typ, v, &m.Date)
		case 5:
			return consumeString(typ, v, &m.Time)
		case 6:
			return consumeString(typ, v, &m.Notes)
		}
		return 0, false
	})
}

type AppointmentResponse struct {
	Appointment *Appointment
}

func (m *AppointmentResponse) AppendWire(b []byte) []byte {
	if m.Appointment != nil {
		b = appendMessage(b, 1, m.Appointment)
	}
	return b
}

func (m *AppointmentResponse) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		if num == 1 {
			m.Appointment = &Appointment{}
			return consumeMessage(typ, v, m.Appointment)
		}
		return 0, false
	})
}

// AppointmentIdRequest addresses one appointment (Get, Delete).
type AppointmentIdRequest struct {
	Id int64
}

func (m *AppointmentIdRequest) AppendWire(b []byte) []byte {
	return appendVarint(b, 1, uint64(m.Id))
}

func (m *AppointmentIdRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		if num == 1 {
			return consumeInt64(typ, v, &m.Id)
		}
		return 0, false
	})
}

type ListAppointmentsRequest struct {
	RangeStart *timestamppb.Timestamp
	RangeEnd   *timestamppb.Timestamp
}

func (m *ListAppointmentsRequest) AppendWire(b []byte) []byte {
	b = appendTimestamp(b, 1, m.RangeStart)
	b = appendTimestamp(b, 2, m.RangeEnd)
	return b
}

func (m *ListAppointmentsRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeTimestamp(typ, v, &m.RangeStart)
		case 2:
			return consumeTimestamp(typ, v, &m.RangeEnd)
		}
		return 0, false
	})
}

type ListAppointmentsResponse struct {
	Appointments []*Appointment
}

func (m *ListAppointmentsResponse) AppendWire(b []byte) []byte {
	for _, a := range m.Appointments {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *ListAppointmentsResponse) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		if num == 1 {
			a := &Appointment{}
			m.Appointments = append(m.Appointments, a)
			return consumeMessage(typ, v, a)
		}
		return 0, false
	})
}

type UpdateAppointmentRequest struct {
	Id    int64
	Draft *Draft
}

func (m *UpdateAppointmentRequest) AppendWire(b []byte) []byte {
	b = appendVarint(b, 1, uint64(m.Id))
	if m.Draft != nil {
		b = appendMessage(b, 2, m.Draft)
	}
	return b
}

func (m *UpdateAppointmentRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeInt64(typ, v, &m.Id)
		case 2:
			m.Draft = &Draft{}
			return consumeMessage(typ, v, m.Draft)
		}
		return 0, false
	})
}

type MoveAppointmentRequest struct {
	Id    int64
	Start string
}

func (m *MoveAppointmentRequest) AppendWire(b []byte) []byte {
	b = appendVarint(b, 1, uint64(m.Id))
	b = appendString(b, 2, m.Start)
	return b
}

func (m *MoveAppointmentRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeInt64(typ, v, &m.Id)
		case 2:
			return consumeString(typ, v, &m.Start)
		}
		return 0, false
	})
}

// EditTokenRequest confirms or cancels a pending edit.
type EditTokenRequest struct {
	Token string
}

func (m *EditTokenRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.Token)
}

func (m *EditTokenRequest) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		if num == 1 {
			return consumeString(typ, v, &m.Token)
		}
		return 0, false
	})
}

// EditResponse reports where an edit landed: "committed", "pending" (with
// a token and the changed fields) or "discarded".
type EditResponse struct {
	State       string
	Token       string
	Changes     []string
	Appointment *Appointment
}

func (m *EditResponse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.State)
	b = appendString(b, 2, m.Token)
	for _, c := range m.Changes {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, c)
	}
	if m.Appointment != nil {
		b = appendMessage(b, 4, m.Appointment)
	}
	return b
}

func (m *EditResponse) ConsumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeString(typ, v, &m.State)
		case 2:
			return consumeString(typ, v, &m.Token)
		case 3:
			var s string
			n, ok := consumeString(typ, v, &s)
			if ok && n >= 0 {
				m.Changes = append(m.Changes, s)
			}
			return n, ok
		case 4:
			m.Appointment = &Appointment{}
			return consumeMessage(typ, v, m.Appointment)
		}
		return 0, false
	})
}
