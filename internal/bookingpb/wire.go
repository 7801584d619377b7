// Package bookingpb holds the agenda.v1 wire messages, encoded by hand with
// protowire, and the gRPC plumbing that carries them.
package bookingpb

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Message is a protobuf message that encodes itself.
type Message interface {
	AppendWire(b []byte) []byte
	ConsumeWire(b []byte) error
}

// Marshal encodes m.
func Marshal(m Message) []byte {
	return m.AppendWire(nil)
}

// consumeFields walks every field in b. field returns the bytes it consumed
// and false for fields it does not know, which are skipped.
func consumeFields(b []byte, field func(num protowire.Number, typ protowire.Type, v []byte) (int, bool)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		m, ok := field(num, typ, b)
		if !ok {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendVarint(b, num, protowire.EncodeBool(v))
}

func appendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.AppendWire(nil))
}

func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) []byte {
	if ts == nil {
		return b
	}
	var inner []byte
	inner = appendVarint(inner, 1, uint64(ts.Seconds))
	inner = appendVarint(inner, 2, uint64(ts.Nanos))
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, bool) {
	if typ != protowire.BytesType {
		return 0, false
	}
	v, n := protowire.ConsumeString(b)
	if n >= 0 {
		*dst = v
	}
	return n, true
}

func consumeVarint(typ protowire.Type, b []byte, dst *uint64) (int, bool) {
	if typ != protowire.VarintType {
		return 0, false
	}
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = v
	}
	return n, true
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) (int, bool) {
	var v uint64
	n, ok := consumeVarint(typ, b, &v)
	if ok && n >= 0 {
		*dst = int64(v)
	}
	return n, ok
}

func consumeInt32(typ protowire.Type, b []byte, dst *int32) (int, bool) {
	var v uint64
	n, ok := consumeVarint(typ, b, &v)
	if ok && n >= 0 {
		*dst = int32(v)
	}
	return n, ok
}

func consumeBool(typ protowire.Type, b []byte, dst *bool) (int, bool) {
	var v uint64
	n, ok := consumeVarint(typ, b, &v)
	if ok && n >= 0 {
		*dst = protowire.DecodeBool(v)
	}
	return n, ok
}

// consumeMessage decodes an embedded message into m.
func consumeMessage(typ protowire.Type, b []byte, m Message) (int, bool) {
	if typ != protowire.BytesType {
		return 0, false
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, true
	}
	if err := m.ConsumeWire(v); err != nil {
		return -1, true
	}
	return n, true
}

func consumeTimestamp(typ protowire.Type, b []byte, dst **timestamppb.Timestamp) (int, bool) {
	if typ != protowire.BytesType {
		return 0, false
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, true
	}
	*dst = parseTimestamp(v)
	return n, true
}

func parseTimestamp(b []byte) *timestamppb.Timestamp {
	ts := &timestamppb.Timestamp{}
	_ = consumeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, bool) {
		switch num {
		case 1:
			return consumeInt64(typ, v, &ts.Seconds)
		case 2:
			return consumeInt32(typ, v, &ts.Nanos)
		}
		return 0, false
	})
	return ts
}

// Timestamp converts t for range fields; the zero time maps to nil.
func Timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// AsTime is the inverse of Timestamp, in time.Local.
func AsTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime().In(time.Local)
}
