package bookingpb

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "agenda.v1.AgendaService"

// FullMethod returns the gRPC path of method, e.g. /agenda.v1.AgendaService/ListNurses.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// Codec encodes Message values in protobuf wire format. Servers install it
// with grpc.ForceServerCodec; the client below forces it per call.
type Codec struct{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("bookingpb: cannot marshal %T", v)
	}
	return m.AppendWire(nil), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("bookingpb: cannot unmarshal into %T", v)
	}
	return m.ConsumeWire(data)
}

type AgendaServiceServer interface {
	ListNurses(context.Context, *Empty) (*ListNursesResponse, error)
	ListServices(context.Context, *Empty) (*ListServicesResponse, error)
	AvailableTimes(context.Context, *AvailableTimesRequest) (*AvailableTimesResponse, error)
	ValidateDraft(context.Context, *ValidateDraftRequest) (*ValidateDraftResponse, error)
	CreateAppointment(context.Context, *CreateAppointmentRequest) (*AppointmentResponse, error)
	BookAppointment(context.Context, *BookAppointmentRequest) (*AppointmentResponse, error)
	GetAppointment(context.Context, *AppointmentIdRequest) (*AppointmentResponse, error)
	ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error)
	UpdateAppointment(context.Context, *UpdateAppointmentRequest) (*EditResponse, error)
	ConfirmEdit(context.Context, *EditTokenRequest) (*EditResponse, error)
	CancelEdit(context.Context, *EditTokenRequest) (*EditResponse, error)
	MoveAppointment(context.Context, *MoveAppointmentRequest) (*EditResponse, error)
	DeleteAppointment(context.Context, *AppointmentIdRequest) (*Empty, error)
}

// UnimplementedAgendaServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedAgendaServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedAgendaServiceServer) ListNurses(context.Context, *Empty) (*ListNursesResponse, error) {
	return nil, unimplemented("ListNurses")
}
func (UnimplementedAgendaServiceServer) ListServices(context.Context, *Empty) (*ListServicesResponse, error) {
	return nil, unimplemented("ListServices")
}
func (UnimplementedAgendaServiceServer) AvailableTimes(context.Context, *AvailableTimesRequest) (*AvailableTimesResponse, error) {
	return nil, unimplemented("AvailableTimes")
}
func (UnimplementedAgendaServiceServer) ValidateDraft(context.Context, *ValidateDraftRequest) (*ValidateDraftResponse, error) {
	return nil, unimplemented("ValidateDraft")
}
func (UnimplementedAgendaServiceServer) CreateAppointment(context.Context, *CreateAppointmentRequest) (*AppointmentResponse, error) {
	return nil, unimplemented("CreateAppointment")
}
func (UnimplementedAgendaServiceServer) BookAppointment(context.Context, *BookAppointmentRequest) (*AppointmentResponse, error) {
	return nil, unimplemented("BookAppointment")
}
func (UnimplementedAgendaServiceServer) GetAppointment(context.Context, *AppointmentIdRequest) (*AppointmentResponse, error) {
	return nil, unimplemented("GetAppointment")
}
func (UnimplementedAgendaServiceServer) ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	return nil, unimplemented("ListAppointments")
}
func (UnimplementedAgendaServiceServer) UpdateAppointment(context.Context, *UpdateAppointmentRequest) (*EditResponse, error) {
	return nil, unimplemented("UpdateAppointment")
}
func (UnimplementedAgendaServiceServer) ConfirmEdit(context.Context, *EditTokenRequest) (*EditResponse, error) {
	return nil, unimplemented("ConfirmEdit")
}
func (UnimplementedAgendaServiceServer) CancelEdit(context.Context, *EditTokenRequest) (*EditResponse, error) {
	return nil, unimplemented("CancelEdit")
}
func (UnimplementedAgendaServiceServer) MoveAppointment(context.Context, *MoveAppointmentRequest) (*EditResponse, error) {
	return nil, unimplemented("MoveAppointment")
}
func (UnimplementedAgendaServiceServer) DeleteAppointment(context.Context, *AppointmentIdRequest) (*Empty, error) {
	return nil, unimplemented("DeleteAppointment")
}

// unary builds the method descriptor for one RPC, decoding into a fresh
// request and routing through the server's interceptor chain.
func unary[Req, Resp any, PReq interface {
	*Req
	Message
}](method string, call func(AgendaServiceServer, context.Context, PReq) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(AgendaServiceServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(PReq))
			})
		},
	}
}

var AgendaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AgendaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListNurses", AgendaServiceServer.ListNurses),
		unary("ListServices", AgendaServiceServer.ListServices),
		unary("AvailableTimes", AgendaServiceServer.AvailableTimes),
		unary("ValidateDraft", AgendaServiceServer.ValidateDraft),
		unary("CreateAppointment", AgendaServiceServer.CreateAppointment),
		unary("BookAppointment", AgendaServiceServer.BookAppointment),
		unary("GetAppointment", AgendaServiceServer.GetAppointment),
		unary("ListAppointments", AgendaServiceServer.ListAppointments),
		unary("UpdateAppointment", AgendaServiceServer.UpdateAppointment),
		unary("ConfirmEdit", AgendaServiceServer.ConfirmEdit),
		unary("CancelEdit", AgendaServiceServer.CancelEdit),
		unary("MoveAppointment", AgendaServiceServer.MoveAppointment),
		unary("DeleteAppointment", AgendaServiceServer.DeleteAppointment),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agenda/v1/agenda.proto",
}

func RegisterAgendaServiceServer(s grpc.ServiceRegistrar, srv AgendaServiceServer) {
	s.RegisterService(&AgendaService_ServiceDesc, srv)
}

type AgendaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAgendaServiceClient(cc grpc.ClientConnInterface) *AgendaServiceClient {
	return &AgendaServiceClient{cc: cc}
}

func invoke[Resp any, PResp interface {
	*Resp
	Message
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (PResp, error) {
	out := PResp(new(Resp))
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AgendaServiceClient) ListNurses(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListNursesResponse, error) {
	return invoke[ListNursesResponse](ctx, c.cc, "ListNurses", in, opts)
}

func (c *AgendaServiceClient) ListServices(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListServicesResponse, error) {
	return invoke[ListServicesResponse](ctx, c.cc, "ListServices", in, opts)
}

func (c *AgendaServiceClient) AvailableTimes(ctx context.Context, in *AvailableTimesRequest, opts ...grpc.CallOption) (*AvailableTimesResponse, error) {
	return invoke[AvailableTimesResponse](ctx, c.cc, "AvailableTimes", in, opts)
}

func (c *AgendaServiceClient) ValidateDraft(ctx context.Context, in *ValidateDraftRequest, opts ...grpc.CallOption) (*ValidateDraftResponse, error) {
	return invoke[ValidateDraftResponse](ctx, c.cc, "ValidateDraft", in, opts)
}

func (c *AgendaServiceClient) CreateAppointment(ctx context.Context, in *CreateAppointmentRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, "CreateAppointment", in, opts)
}

func (c *AgendaServiceClient) BookAppointment(ctx context.Context, in *BookAppointmentRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, "BookAppointment", in, opts)
}

func (c *AgendaServiceClient) GetAppointment(ctx context.Context, in *AppointmentIdRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, "GetAppointment", in, opts)
}

func (c *AgendaServiceClient) ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, "ListAppointments", in, opts)
}

func (c *AgendaServiceClient) UpdateAppointment(ctx context.Context, in *UpdateAppointmentRequest, opts ...grpc.CallOption) (*EditResponse, error) {
	return invoke[EditResponse](ctx, c.cc, "UpdateAppointment", in, opts)
}

func (c *AgendaServiceClient) ConfirmEdit(ctx context.Context, in *EditTokenRequest, opts ...grpc.CallOption) (*EditResponse, error) {
	return invoke[EditResponse](ctx, c.cc, "ConfirmEdit", in, opts)
}

func (c *AgendaServiceClient) CancelEdit(ctx context.Context, in *EditTokenRequest, opts ...grpc.CallOption) (*EditResponse, error) {
	return invoke[EditResponse](ctx, c.cc, "CancelEdit", in, opts)
}

func (c *AgendaServiceClient) MoveAppointment(ctx context.Context, in *MoveAppointmentRequest, opts ...grpc.CallOption) (*EditResponse, error) {
	return invoke[EditResponse](ctx, c.cc, "MoveAppointment", in, opts)
}

func (c *AgendaServiceClient) DeleteAppointment(ctx context.Context, in *AppointmentIdRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeleteAppointment", in, opts)
}
