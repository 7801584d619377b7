package handler

import (
	"nurse-agenda/internal/booking"
	pb "nurse-agenda/internal/bookingpb"
	"nurse-agenda/internal/model"
	"nurse-agenda/internal/validate"
)

func toProto(a model.Appointment) *pb.Appointment {
	p := &pb.Appointment{
		Id:          a.ID,
		Title:       a.Title,
		NurseName:   a.NurseName,
		ServiceName: a.ServiceName,
		Start:       model.FormatLocal(a.Start),
		End:         model.FormatLocal(a.End),
		Color:       string(a.Color),
		Notes:       a.Notes,
		Owner:       &pb.Nurse{Id: a.Owner.ID, Name: a.Owner.Name},
	}
	if a.Owner.PicturePath != nil {
		p.Owner.PicturePath = *a.Owner.PicturePath
	}
	return p
}

func nurseProto(n model.Nurse) *pb.Nurse {
	p := &pb.Nurse{Id: n.ID, Name: n.Name}
	if n.PicturePath != nil {
		p.PicturePath = *n.PicturePath
	}
	return p
}

func serviceProto(s model.Service) *pb.Service {
	return &pb.Service{
		Id:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: int32(s.DurationMinutes),
	}
}

func draftFromProto(d *pb.Draft) model.Draft {
	if d == nil {
		return model.Draft{}
	}
	return model.Draft{
		NurseID:     d.NurseId,
		NurseName:   d.NurseName,
		ServiceID:   d.ServiceId,
		ServiceName: d.ServiceName,
		Title:       d.Title,
		Color:       d.Color,
		Start:       d.Start,
		End:         d.End,
		Notes:       d.Notes,
	}
}

func fieldErrorsProto(fes []validate.FieldError) []*pb.FieldError {
	out := make([]*pb.FieldError, len(fes))
	for i, fe := range fes {
		out[i] = &pb.FieldError{Field: fe.Field, Message: fe.Message}
	}
	return out
}

func editProto(p booking.Proposal) *pb.EditResponse {
	return &pb.EditResponse{
		State:       string(p.State),
		Token:       p.Token,
		Changes:     p.Changes,
		Appointment: toProto(p.Appointment),
	}
}
