package domain

import (
	"fmt"
	"time"
)

// Date is a point-in-time field on a persisted record. At rest it is an
// ISO-8601 string; the custom decoder repairs the type loss inherent to
// JSON round-tripping and tolerates the date-only form found in older
// and foreign exports.
type Date struct {
	time.Time
}

// NewDate wraps a time value as a Date.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parses an ISO-8601 timestamp or a bare YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{Time: t}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Date{Time: t}, nil
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// MarshalJSON encodes the date as an RFC 3339 string, matching the
// encoding of a plain time.Time so the persisted byte format is stable.
func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}

// UnmarshalJSON accepts null, an RFC 3339 timestamp (with or without
// fractional seconds), or a bare YYYY-MM-DD date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}
