package model

import (
	"errors"
	"strings"
	"time"
)

// Layout is the ISO local timestamp used on the wire and in exports:
// seconds precision, no zone offset.
const Layout = "2006-01-02T15:04:05"

const DateLayout = "2006-01-02"

var ErrEmptyTimestamp = errors.New("empty timestamp")

// ParseLocal reads a local wall-clock timestamp. It accepts Layout, Layout
// without seconds, and RFC 3339 (converted into loc). Fractional seconds are
// kept. A nil loc means time.Local.
func ParseLocal(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyTimestamp
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(Layout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

func FormatLocal(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}

// DateOnly drops the time of day, keeping the location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
