package handler

import (
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nurse-agenda/internal/booking"
	pb "nurse-agenda/internal/bookingpb"
	"nurse-agenda/internal/store"
	"nurse-agenda/internal/validate"
)

type Handler struct {
	pb.UnimplementedAgendaServiceServer
	sched *booking.Scheduler
	log   zerolog.Logger
}

func New(s *booking.Scheduler, log zerolog.Logger) *Handler {
	return &Handler{sched: s, log: log}
}

// toStatus maps domain errors onto gRPC codes. Rejected drafts carry one
// field violation per field error.
func (h *Handler) toStatus(err error) error {
	var rej *validate.RejectedError
	switch {
	case errors.As(err, &rej):
		return invalid(rej.Errors...)
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, "appointment not found")
	case errors.Is(err, store.ErrDuplicateID):
		return status.Error(codes.AlreadyExists, "appointment already exists")
	case errors.Is(err, booking.ErrIneligibleDate), errors.Is(err, booking.ErrUnavailableTime):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, booking.ErrUnknownEdit):
		return status.Error(codes.NotFound, "no pending edit for token")
	default:
		h.log.Error().Err(err).Msg("unexpected error")
		return status.Error(codes.Internal, "internal error")
	}
}

func invalid(fes ...validate.FieldError) error {
	rej := &validate.RejectedError{Errors: fes}
	st := status.New(codes.InvalidArgument, rej.Error())
	br := &errdetails.BadRequest{}
	for _, fe := range fes {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       fe.Field,
			Description: fe.Message,
		})
	}
	if withDetails, err := st.WithDetails(br); err == nil {
		return withDetails.Err()
	}
	return st.Err()
}

func malformedDates() error {
	return invalid(validate.FieldError{Field: validate.FieldDates, Message: "invalid", Err: validate.ErrMalformedValue})
}
