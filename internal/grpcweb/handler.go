package grpcweb

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// ForwardedForKey carries the browser's address to the server, which only
// sees the bridge's own connection.
const ForwardedForKey = "x-forwarded-for"

const (
	frameData    = 0x00
	frameTrailer = 0x80
)

// Bridge translates gRPC-Web (browser HTTP/1.1) → native gRPC.
type Bridge struct {
	conn    *grpc.ClientConn
	origins []string
	dial    []grpc.DialOption
	log     zerolog.Logger
}

type Option func(*Bridge)

// WithOrigins restricts CORS to the listed origins. By default any origin
// is reflected.
func WithOrigins(origins ...string) Option {
	return func(b *Bridge) { b.origins = origins }
}

func WithLogger(l zerolog.Logger) Option {
	return func(b *Bridge) { b.log = l }
}

func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(b *Bridge) { b.dial = append(b.dial, opts...) }
}

// New connects to the gRPC server at addr (e.g. "localhost:50051").
func New(addr string, opts ...Option) (*Bridge, error) {
	b := &Bridge{log: zerolog.Nop()}
	for _, o := range opts {
		o(b)
	}
	dial := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, b.dial...)
	conn, err := grpc.NewClient(addr, dial...)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	b.conn = conn
	return b, nil
}

func (b *Bridge) Close() error { return b.conn.Close() }

func (b *Bridge) allowOrigin(origin string) string {
	if len(b.origins) == 0 || slices.Contains(b.origins, "*") {
		if origin == "" {
			return "*"
		}
		return origin
	}
	if slices.Contains(b.origins, origin) {
		return origin
	}
	return ""
}

// Handler returns an http.Handler that translates gRPC-Web → gRPC.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := b.allowOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, X-Grpc-Web, X-User-Agent, x-grpc-web")
			w.Header().Set("Access-Control-Expose-Headers",
				"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin, grpc-status, grpc-message")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ct := r.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "application/grpc-web") {
			http.Error(w, "not grpc-web", http.StatusUnsupportedMediaType)
			return
		}

		b.log.Debug().Str("method", r.URL.Path).Msg("grpc-web")
		b.forward(w, r)
	})
}

func (b *Bridge) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, codes.Internal, "read body failed")
		return
	}
	if len(body) < 5 {
		writeError(w, codes.InvalidArgument, "body too short")
		return
	}

	// grpc-web frame: 1-byte flag + 4-byte big-endian length + protobuf
	msgLen := binary.BigEndian.Uint32(body[1:5])
	if int(msgLen)+5 > len(body) {
		writeError(w, codes.InvalidArgument, "incomplete frame")
		return
	}
	payload := body[5 : 5+msgLen]

	ctx := r.Context()
	if host := remoteHost(r.RemoteAddr); host != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, ForwardedForKey, host)
	}

	// pass-through bytes; the server decodes them
	resp := &rawMsg{}
	err = b.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st, _ := status.FromError(err)
		b.log.Debug().Str("method", r.URL.Path).Str("code", st.Code().String()).Msg("grpc-web error")
		writeStatus(w, st)
		return
	}

	writeSuccess(w, resp.data)
}

// rawMsg wraps raw protobuf bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal. It shares the
// "proto" content subtype with the server codec.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	return v.(*rawMsg).data, nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	m := v.(*rawMsg)
	m.data = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string { return "proto" }

func frame(flag byte, data []byte) []byte {
	f := make([]byte, 5+len(data))
	f[0] = flag
	binary.BigEndian.PutUint32(f[1:5], uint32(len(data)))
	copy(f[5:], data)
	return f
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	writeStatus(w, status.New(code, msg))
}

// writeStatus ends the response with a trailer frame. Status details travel
// as grpc-status-details-bin, unpadded base64 of the google.rpc.Status.
func writeStatus(w http.ResponseWriter, st *status.Status) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)

	var trailer strings.Builder
	fmt.Fprintf(&trailer, "grpc-status:%d\r\n", st.Code())
	if msg := st.Message(); msg != "" {
		fmt.Fprintf(&trailer, "grpc-message:%s\r\n", encodeMessage(msg))
	}
	if len(st.Details()) > 0 {
		if bin, err := proto.Marshal(st.Proto()); err == nil {
			fmt.Fprintf(&trailer, "grpc-status-details-bin:%s\r\n", base64.RawStdEncoding.EncodeToString(bin))
		}
	}
	w.Write(frame(frameTrailer, []byte(trailer.String())))
}

// encodeMessage percent-encodes grpc-message: bytes outside printable ASCII
// and '%' itself.
func encodeMessage(msg string) string {
	var b strings.Builder
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c >= ' ' && c <= '~' && c != '%' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	w.Write(frame(frameData, data))
	w.Write(frame(frameTrailer, []byte("grpc-status:0\r\n")))
}
