package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nurse-agenda/internal/booking"
	pb "nurse-agenda/internal/bookingpb"
	"nurse-agenda/internal/model"
)

func (h *Handler) CreateAppointment(ctx context.Context, req *pb.CreateAppointmentRequest) (*pb.AppointmentResponse, error) {
	a, err := h.sched.Create(ctx, draftFromProto(req.Draft))
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.AppointmentResponse{Appointment: toProto(a)}, nil
}

func (h *Handler) BookAppointment(ctx context.Context, req *pb.BookAppointmentRequest) (*pb.AppointmentResponse, error) {
	a, err := h.sched.Book(ctx, booking.BookingRequest{
		NurseID:   req.NurseId,
		ServiceID: req.ServiceId,
		Color:     req.Color,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.AppointmentResponse{Appointment: toProto(a)}, nil
}

func (h *Handler) GetAppointment(ctx context.Context, req *pb.AppointmentIdRequest) (*pb.AppointmentResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	a, err := h.sched.Get(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.AppointmentResponse{Appointment: toProto(a)}, nil
}

// ListAppointments returns everything in start order, or only what overlaps
// the requested range when one is given.
func (h *Handler) ListAppointments(ctx context.Context, req *pb.ListAppointmentsRequest) (*pb.ListAppointmentsResponse, error) {
	from := pb.AsTime(req.RangeStart)
	to := pb.AsTime(req.RangeEnd)
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, status.Error(codes.InvalidArgument, "range_start must precede range_end")
	}

	apts := h.sched.Between(ctx, from, to)
	out := make([]*pb.Appointment, len(apts))
	for i := range apts {
		out[i] = toProto(apts[i])
	}
	return &pb.ListAppointmentsResponse{Appointments: out}, nil
}

func (h *Handler) UpdateAppointment(ctx context.Context, req *pb.UpdateAppointmentRequest) (*pb.EditResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	p, err := h.sched.ProposeEdit(ctx, req.Id, draftFromProto(req.Draft))
	if err != nil {
		return nil, h.toStatus(err)
	}
	return editProto(p), nil
}

func (h *Handler) ConfirmEdit(ctx context.Context, req *pb.EditTokenRequest) (*pb.EditResponse, error) {
	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "token required")
	}
	p, err := h.sched.Confirm(ctx, req.Token)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return editProto(p), nil
}

func (h *Handler) CancelEdit(ctx context.Context, req *pb.EditTokenRequest) (*pb.EditResponse, error) {
	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "token required")
	}
	p, err := h.sched.Cancel(ctx, req.Token)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return editProto(p), nil
}

func (h *Handler) MoveAppointment(ctx context.Context, req *pb.MoveAppointmentRequest) (*pb.EditResponse, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	start, err := model.ParseLocal(req.Start, time.Local)
	if err != nil {
		return nil, malformedDates()
	}
	p, err := h.sched.Move(ctx, req.Id, start)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return editProto(p), nil
}

func (h *Handler) DeleteAppointment(ctx context.Context, req *pb.AppointmentIdRequest) (*pb.Empty, error) {
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := h.sched.Delete(ctx, req.Id); err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.Empty{}, nil
}
