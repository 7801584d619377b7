package handler

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "nurse-agenda/internal/bookingpb"
	"nurse-agenda/internal/model"
	"nurse-agenda/internal/slot"
)

func (h *Handler) ListNurses(context.Context, *pb.Empty) (*pb.ListNursesResponse, error) {
	nurses := h.sched.Catalog().ListNurses()
	out := make([]*pb.Nurse, len(nurses))
	for i, n := range nurses {
		out[i] = nurseProto(n)
	}
	return &pb.ListNursesResponse{Nurses: out}, nil
}

func (h *Handler) ListServices(context.Context, *pb.Empty) (*pb.ListServicesResponse, error) {
	services := h.sched.Catalog().ListServices()
	out := make([]*pb.Service, len(services))
	for i, s := range services {
		out[i] = serviceProto(s)
	}
	return &pb.ListServicesResponse{Services: out}, nil
}

func (h *Handler) AvailableTimes(_ context.Context, req *pb.AvailableTimesRequest) (*pb.AvailableTimesResponse, error) {
	date, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(req.Date), time.Local)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}

	times := h.sched.AvailableTimes(date)
	resp := &pb.AvailableTimesResponse{
		Eligible: slot.IsEligibleDate(date, h.sched.Today()),
		Times:    make([]string, len(times)),
	}
	for i, c := range times {
		resp.Times[i] = c.String()
	}
	return resp, nil
}

// ValidateDraft reports field errors in the response rather than as a
// status, so forms can render them inline.
func (h *Handler) ValidateDraft(_ context.Context, req *pb.ValidateDraftRequest) (*pb.ValidateDraftResponse, error) {
	d := draftFromProto(req.Draft)
	d.ID = req.Id

	res := h.sched.Validate(d, req.Editing)
	if !res.OK() {
		return &pb.ValidateDraftResponse{Errors: fieldErrorsProto(res.Errors)}, nil
	}
	return &pb.ValidateDraftResponse{Appointment: toProto(res.Appointment)}, nil
}
